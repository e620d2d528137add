package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product model
type Product struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:100;not null" json:"name"`
	Brand         string          `gorm:"size:100;not null" json:"brand"`
	Category      string          `gorm:"size:100;not null" json:"category"`
	Price         decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Description   string          `gorm:"size:4000" json:"description"`
	ImageFileName string          `gorm:"size:100" json:"imageFileName"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

// Categories is the closed set of product categories accepted on create/update.
var Categories = []string{"Phones", "Computers", "Accessories", "Printers", "Cameras", "Other"}

// ValidCategory reports whether category belongs to the fixed category list.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
