package domain

import "time"

// Subscription is a newsletter signup. Emails are unique across the book.
type Subscription struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
