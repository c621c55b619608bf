package models

import "time"

// Transaction is a single dated monetary movement. CategoryName is joined in
// from the owning category for display; it is not stored on the row.
type Transaction struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"userId"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       float64         `json:"amount"`
	Type         TransactionType `json:"type"`
	Note         *string         `json:"note"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"createdAt"`
}
