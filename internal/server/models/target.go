package models

import "time"

// MonthlyTarget is the single income goal of a user. At most one row exists
// per user; setting a new value overwrites it in place, keeping the id.
type MonthlyTarget struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	MonthlyTarget float64   `json:"monthly_target"`
	UpdatedAt     time.Time `json:"updated_at"`
}
