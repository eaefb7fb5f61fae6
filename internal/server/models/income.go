package models

import "time"

// IncomeEntry is a single recorded income, owned by exactly one user.
// Month and Year are derived from Date at creation time and always equal the
// numeric components of the ISO date string.
type IncomeEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Amount    float64   `json:"amount"`
	Source    string    `json:"source"`
	Month     int       `json:"month"` // 1-12
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}
