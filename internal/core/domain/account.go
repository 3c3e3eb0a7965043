package domain

// AccountNature defines the fundamental accounting nature of an account.
type AccountNature string

const (
	Asset     AccountNature = "ASSET"
	Liability AccountNature = "LIABILITY"
	Equity    AccountNature = "EQUITY"
	Revenue   AccountNature = "REVENUE"
	Expense   AccountNature = "EXPENSE"
)

// Account represents one account of the chart of accounts. The code is the
// unique key; journal lines reference accounts by code.
type Account struct {
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Nature      AccountNature `json:"nature"`
	Description string        `json:"description"`
	IsActive    bool          `json:"isActive"`
	AuditFields
}

// DebitIncreases reports whether a debit grows the balance of an account of
// this nature. Asset and Expense accounts grow on the debit side; Liability,
// Equity and Revenue accounts grow on the credit side.
func (n AccountNature) DebitIncreases() bool {
	return n == Asset || n == Expense
}

// Valid reports whether the nature is one of the five closed values.
func (n AccountNature) Valid() bool {
	switch n {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}
