package domain

// CartItem is a product selected for purchase. A cart holds at most one
// CartItem per product id; quantity is always >= 1 while the item exists.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is the price contribution of this item.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
