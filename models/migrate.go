package models

import (
	"gorm.io/gorm"
)

// Migrate runs auto migration for all store tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&PasswordReset{},
		&Product{},
		&Subject{},
		&Contact{},
		&Order{},
		&OrderItem{},
	)
}
