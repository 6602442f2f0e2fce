package models

import "time"

// DefaultCategory is substituted whenever a listing is submitted or
// compared without an explicit category.
const DefaultCategory = "Others"

// Categories is the fixed set a listing may belong to.
var Categories = []string{
	"Vehicles",
	"Property Rentals",
	"Apparel",
	"Electronics",
	"Entertainment",
	"Family",
	"Garden & Outdoor",
	"Hobbies",
	"Home Goods",
	"Musical Instruments",
	"Others",
}

// Conditions is the fixed set of item conditions; empty string means
// the seller did not specify one.
var Conditions = []string{"new", "like-new", "good", "fair"}

// Listing represents a for-sale item record.
type Listing struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string    `json:"title" gorm:"not null" validate:"required"`
	Description string    `json:"description" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null" validate:"gte=0"`
	Email       string    `json:"email" gorm:"not null" validate:"required,contact_email"`
	Category    string    `json:"category" gorm:"not null"`
	Condition   string    `json:"condition"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListingSubmission is the payload accepted by the submission workflow.
// Price is a pointer so that an absent price can be told apart from a
// listing that is free.
type ListingSubmission struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Email       string   `json:"email" validate:"required,contact_email"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	Location    string   `json:"location"`
	ImageURL    string   `json:"image_url"`
}
