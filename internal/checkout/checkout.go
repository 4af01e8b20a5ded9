// Package checkout builds the order hand-off for the external chat service.
// There is no payment processing; checkout is a prefilled message link the
// view opens fire-and-forget.
package checkout

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"lobitos-storefront/internal/domain"
)

// DefaultPhone is the storefront's order line.
const DefaultPhone = "51994992633"

const greeting = "Hola Lobitos Ponchos, deseo pedir:"

// Order is the prepared hand-off payload.
type Order struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Build formats the cart into the chat order summary: one line per item with
// quantity and line total, then the grand total, URL-encoded into a wa.me
// link.
func Build(items []domain.CartItem, total float64, phone string) Order {
	if phone == "" {
		phone = DefaultPhone
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s (x%d) - $%s", item.Name, item.Quantity, formatAmount(item.LineTotal())))
	}

	message := greeting + "\n\n" + strings.Join(lines, "\n") + "\n\n" + "Total: $" + formatAmount(total)

	return Order{
		Message: message,
		URL:     "https://wa.me/" + phone + "?text=" + encodeComponent(message),
	}
}

// formatAmount renders an amount without trailing zeros (129 not 129.00).
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// encodeComponent percent-encodes like encodeURIComponent: spaces become
// %20, never +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
