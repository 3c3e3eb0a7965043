package accounting

import (
	"fmt"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedBalance applies the sign convention for presenting a "positive"
// balance: Asset/Expense accounts grow on the debit side, Liability/Equity/
// Revenue accounts grow on the credit side.
func SignedBalance(nature domain.AccountNature, debit, credit decimal.Decimal) decimal.Decimal {
	if nature.DebitIncreases() {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// SumSides totals the debit and credit columns of a batch of lines.
func SumSides(lines []domain.JournalLine) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits, credits
}

// ValidateLine checks the single-line shape: required fields present and
// exactly one of debit/credit set to a positive amount.
func ValidateLine(l domain.JournalLine) error {
	if l.Date.IsZero() {
		return fmt.Errorf("line date is required")
	}
	if l.Kind == "" {
		return fmt.Errorf("line transaction kind is required")
	}
	if l.AccountCode == "" || l.AccountName == "" {
		return fmt.Errorf("line account code and name are required")
	}
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return fmt.Errorf("line amounts must be non-negative for account %s", l.AccountCode)
	}
	debitSet := l.Debit.IsPositive()
	creditSet := l.Credit.IsPositive()
	if debitSet == creditSet { // both or neither
		return fmt.Errorf("line must have exactly one of debit/credit positive for account %s", l.AccountCode)
	}
	return nil
}
