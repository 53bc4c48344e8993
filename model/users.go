package model

import "time"

// Identity is the verified caller resolved from a bearer token.
type Identity struct {
	UserID    string    `json:"id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"-"`
}
