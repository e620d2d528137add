package models

import (
	"github.com/shopspring/decimal"
)

// CartItem is a priced line in a cart preview. Derived, never persisted.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the priced view of a client-supplied product identifier list.
// It is recomputed on every request and never persisted.
type Cart struct {
	CartItems   []CartItem      `json:"cartItems"`
	SubTotal    decimal.Decimal `json:"subTotal"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}
