package domain

// Default chart of accounts. Journal emission in the services layer posts
// against these codes; the account store seeds them on first run and the
// business may add further accounts alongside.
const (
	AccountCash             = "100" // physical cash on hand (per-service attribution via ServiceID)
	AccountDigital          = "105" // digital/mobile-money float (per-service attribution via ServiceID)
	AccountInventory        = "130"
	AccountReceivables      = "140" // client receivables
	AccountFixedAssets      = "150"
	AccountPayables         = "200" // supplier payables
	AccountTaxPayable       = "210"
	AccountCapital          = "300"
	AccountRetainedEarnings = "310"
	AccountSalesRevenue     = "400" // goods
	AccountServiceRevenue   = "410" // proprietary payment-service revenue
	AccountFeeRevenue       = "420" // brokered fees and commissions
	AccountCOGS             = "500"
	AccountGeneralExpense   = "510"
)

// DefaultChart returns the seed chart of accounts.
func DefaultChart() []Account {
	mk := func(code, name string, nature AccountNature) Account {
		return Account{Code: code, Name: name, Nature: nature, IsActive: true}
	}
	return []Account{
		mk(AccountCash, "Cash on hand", Asset),
		mk(AccountDigital, "Digital wallet float", Asset),
		mk(AccountInventory, "Inventory", Asset),
		mk(AccountReceivables, "Client receivables", Asset),
		mk(AccountFixedAssets, "Fixed assets", Asset),
		mk(AccountPayables, "Supplier payables", Liability),
		mk(AccountTaxPayable, "Taxes payable", Liability),
		mk(AccountCapital, "Owner capital", Equity),
		mk(AccountRetainedEarnings, "Retained earnings", Equity),
		mk(AccountSalesRevenue, "Sales revenue", Revenue),
		mk(AccountServiceRevenue, "Service revenue", Revenue),
		mk(AccountFeeRevenue, "Fee and commission revenue", Revenue),
		mk(AccountCOGS, "Cost of goods sold", Expense),
		mk(AccountGeneralExpense, "General expenses", Expense),
	}
}
