package models

import "time"

// Budget caps spending for one category in one calendar month. Spent and
// Remaining are derived at read time from the matching expense transactions,
// never stored.
type Budget struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	CategoryID   int64     `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Amount       float64   `json:"budgetAmount"`
	Month        Month     `json:"month"`
	CreatedAt    time.Time `json:"createdAt"`
	Spent        float64   `json:"spent"`
	Remaining    float64   `json:"remaining"`
}
