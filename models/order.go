package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingFee is the flat delivery fee applied to every cart and order.
var ShippingFee = decimal.NewFromInt(5)

// PaymentMethods maps the accepted payment method keys to their display names.
var PaymentMethods = map[string]string{
	"Cash":        "Cash on delivery",
	"Paypal":      "Paypal",
	"Credit card": "Credit Card",
}

// PaymentStatuses lists the payment status vocabulary. The first entry is
// the status assigned at order creation.
var PaymentStatuses = []string{"Pending", "Accepted", "Cancelled"}

// OrderStatuses lists the order status vocabulary. The first entry is the
// status assigned at order creation.
var OrderStatuses = []string{"Created", "Accepted", "Cancelled", "Shipped", "Delivered", "Returned"}

// ValidPaymentMethod reports whether method is an accepted payment method key.
func ValidPaymentMethod(method string) bool {
	_, ok := PaymentMethods[method]
	return ok
}

// ValidPaymentStatus reports whether status belongs to PaymentStatuses.
func ValidPaymentStatus(status string) bool {
	return containsString(PaymentStatuses, status)
}

// ValidOrderStatus reports whether status belongs to OrderStatuses.
func ValidOrderStatus(status string) bool {
	return containsString(OrderStatuses, status)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Order model. Items are written together with the order in one transaction
// and are never structurally mutated afterwards; only the two status fields
// change over the order's lifetime.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"userId"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	ShippingFee     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"shippingFee"`
	ShippingAddress string          `gorm:"size:100;not null" json:"shippingAddress"`
	PaymentMethod   string          `gorm:"size:100;not null" json:"paymentMethod"`
	PaymentStatus   string          `gorm:"size:100;not null" json:"paymentStatus"`
	OrderStatus     string          `gorm:"size:100;not null" json:"orderStatus"`

	User       User        `json:"user"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
}

// OrderItem model. UnitPrice is a snapshot of the product price taken at
// order creation; later catalog changes must not alter it.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"orderId"`
	ProductID uint            `gorm:"not null" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"unitPrice"`

	Product Product `json:"product"`
}
