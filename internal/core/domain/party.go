package domain

import "github.com/shopspring/decimal"

// PartyRole distinguishes clients from suppliers.
type PartyRole string

const (
	RoleClient   PartyRole = "CLIENT"
	RoleSupplier PartyRole = "SUPPLIER"
)

// ThirdParty is a client or supplier with an open balance. For clients a
// positive balance is owed to the business; for suppliers a positive balance
// is owed by the business.
type ThirdParty struct {
	PartyID string          `json:"partyID"`
	Name    string          `json:"name"`
	Role    PartyRole       `json:"role"`
	Phone   string          `json:"phone"`
	Balance decimal.Decimal `json:"balance"`
	AuditFields
}
