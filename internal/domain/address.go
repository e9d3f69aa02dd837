package domain

import "time"

// Address is a user's shipping or billing address. Shipping and billing
// records live in separate tables but share this shape.
type Address struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Street      string    `json:"street"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postalCode"`
	Country     string    `json:"country"`
	State       *string   `json:"state,omitempty"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
