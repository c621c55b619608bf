package models

// Dashboard aggregates a user's financial activity on demand. MonthlyData
// maps "YYYY-MM" keys to the income sum for each of the trailing 12 months;
// only income is aggregated per month, which mirrors the frontend contract.
type Dashboard struct {
	TotalIncome      float64            `json:"totalIncome"`
	TotalExpense     float64            `json:"totalExpense"`
	NetBalance       float64            `json:"netBalance"`
	CategoryExpenses map[string]float64 `json:"categoryExpenses"`
	MonthlyData      map[string]float64 `json:"monthlyData"`
	TransactionCount int                `json:"transactionCount"`
}
