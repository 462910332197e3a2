package models

// CartItem is a product snapshot plus a quantity. The flattened JSON
// shape is compatible with the cart array the web client stores under
// the same key, so both clients can restore each other's carts.
type CartItem struct {
	Product
	Quantity int `json:"cantidad"`
}

func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
