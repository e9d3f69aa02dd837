package domain

import "time"

// Order is the local system of record for a purchase intent. AmountCents is
// fixed at creation time and never recomputed; IsPaid flips exactly once,
// driven by a verified gateway webhook.
type Order struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	ConfigurationID   string    `json:"configurationId"`
	ShippingAddressID *string   `json:"shippingAddressId,omitempty"`
	AmountCents       int64     `json:"amountCents"`
	IsPaid            bool      `json:"isPaid"`
	CreatedAt         time.Time `json:"createdAt"`
}
