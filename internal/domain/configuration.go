package domain

import "time"

// Configuration is a saved phone-case design: the option set chosen in the
// configure step. Immutable once an order prices against it.
type Configuration struct {
	ID              string    `json:"id"`
	Model           string    `json:"model"`
	Color           string    `json:"color"`
	Material        string    `json:"material"`
	Finish          string    `json:"finish"`
	CroppedImageURL *string   `json:"croppedImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
