package models

import "time"

// Message is a buyer inquiry tied to one listing. Rows are written once
// and never mutated; deleting a listing cascades to its messages.
type Message struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ListingID   string    `json:"listing_id" gorm:"type:varchar(36);not null;index" validate:"required"`
	SenderEmail string    `json:"sender_email" gorm:"not null" validate:"required"`
	Message     string    `json:"message" gorm:"not null" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`

	Listing *Listing `json:"-" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}
