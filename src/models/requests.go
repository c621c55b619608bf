package models

import "time"

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Type        string  `json:"type"`
}

// Update requests use pointer fields throughout: a nil field was absent from
// the payload and leaves the stored value untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
}

type CreateTransactionRequest struct {
	CategoryID int64      `json:"categoryId"`
	Amount     float64    `json:"amount"`
	Type       string     `json:"type"`
	Note       *string    `json:"note"`
	Date       *time.Time `json:"date"`
}

type UpdateTransactionRequest struct {
	CategoryID *int64   `json:"categoryId"`
	Amount     *float64 `json:"amount"`
	Type       *string  `json:"type"`
	Note       *string  `json:"note"`
}

type CreateBudgetRequest struct {
	CategoryID   int64   `json:"categoryId"`
	BudgetAmount float64 `json:"budgetAmount"`
	Month        *Month  `json:"month"`
}

type UpdateBudgetRequest struct {
	BudgetAmount *float64 `json:"budgetAmount"`
}
