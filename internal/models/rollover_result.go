package models

// RolloverResult summarises one run of the month rollover generator
type RolloverResult struct {
	Message                string `json:"message"`
	Period                 Period `json:"period"`
	UsersProcessed         int    `json:"users_processed"`
	BudgetsCreated         int    `json:"budgets_created"`
	CategoryBudgetsCreated int    `json:"category_budgets_created"`
}
