package models

import (
	"time"
)

// Subject is a contact message subject maintained in the store.
type Subject struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

// Contact is a message submitted through the contact form.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"firstName"`
	LastName  string    `gorm:"size:100;not null" json:"lastName"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Phone     string    `gorm:"size:100" json:"phone"`
	SubjectID uint      `gorm:"not null" json:"subjectId"`
	Message   string    `gorm:"size:4000;not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Subject Subject `json:"subject"`
}
