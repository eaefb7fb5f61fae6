package models

// MonthlySummary aggregates a user's income for one calendar month against
// the stored monthly target.
type MonthlySummary struct {
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	MonthName    string  `json:"month_name"`
	Total        float64 `json:"total"`
	Target       float64 `json:"target"`
	Remaining    float64 `json:"remaining"`
	EntriesCount int     `json:"entries_count"`
}
