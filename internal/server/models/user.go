// Package models defines the persistent records of the income tracker.
package models

import "time"

// User is an account identity. The password hash lives alongside the record
// but is never serialized to clients.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
