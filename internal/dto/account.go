package dto

// CreateAccountRequest adds an account to the chart.
type CreateAccountRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Nature      string `json:"nature" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description string `json:"description"`
}

// UpdateAccountRequest updates mutable account fields. Nil means unchanged.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
