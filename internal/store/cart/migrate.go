package cart

import (
	"encoding/json"

	"github.com/spf13/cast"

	"lobitos-storefront/internal/domain"
)

// decodeRecord turns one stored cart record into a CartItem. Records already
// carrying an images array decode strictly; records from before the images
// migration carry a single scalar "image" and are rebuilt field by field from
// the loose shape. Everything else is dropped.
func decodeRecord(raw json.RawMessage) (domain.CartItem, bool) {
	var loose map[string]interface{}
	if err := json.Unmarshal(raw, &loose); err != nil {
		return domain.CartItem{}, false
	}

	if hasImageList(loose["images"]) {
		var item domain.CartItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return domain.CartItem{}, false
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		return item, true
	}

	legacy := cast.ToString(loose["image"])
	if legacy == "" {
		return domain.CartItem{}, false
	}
	return migrateLegacy(loose, legacy), true
}

// hasImageList reports whether the value is a non-empty JSON array.
func hasImageList(v interface{}) bool {
	list, ok := v.([]interface{})
	return ok && len(list) > 0
}

// migrateLegacy rebuilds a pre-images record, wrapping the lone image into a
// one-element list. Fields are coerced individually since old records were
// written by looser code.
func migrateLegacy(loose map[string]interface{}, image string) domain.CartItem {
	quantity := cast.ToInt(loose["quantity"])
	if quantity < 1 {
		quantity = 1
	}

	desc := cast.ToStringMapString(loose["description"])

	var details *domain.LocalizedList
	if d, ok := loose["details"].(map[string]interface{}); ok {
		details = &domain.LocalizedList{
			EN: cast.ToStringSlice(d["en"]),
			ES: cast.ToStringSlice(d["es"]),
		}
	}

	return domain.CartItem{
		Product: domain.Product{
			ID:   cast.ToString(loose["id"]),
			Name: cast.ToString(loose["name"]),
			Description: domain.Localized{
				EN: desc["en"],
				ES: desc["es"],
			},
			Price:    cast.ToFloat64(loose["price"]),
			Images:   []string{image},
			Category: domain.Category(cast.ToString(loose["category"])),
			Details:  details,
			Measures: cast.ToStringMapString(loose["measures"]),
		},
		Quantity: quantity,
	}
}
