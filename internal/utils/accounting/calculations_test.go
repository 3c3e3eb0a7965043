package accounting_test

import (
	"testing"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSignedBalance(t *testing.T) {
	debit := decimal.NewFromInt(300)
	credit := decimal.NewFromInt(100)

	tests := []struct {
		nature domain.AccountNature
		want   int64
	}{
		{domain.Asset, 200},
		{domain.Expense, 200},
		{domain.Liability, -200},
		{domain.Equity, -200},
		{domain.Revenue, -200},
	}
	for _, tc := range tests {
		got := accounting.SignedBalance(tc.nature, debit, credit)
		assert.True(t, got.Equal(decimal.NewFromInt(tc.want)), "nature %s: got %s", tc.nature, got)
	}
}

func TestSumSides(t *testing.T) {
	lines := []domain.JournalLine{
		{Debit: decimal.NewFromInt(100)},
		{Credit: decimal.NewFromInt(60)},
		{Credit: decimal.NewFromInt(40)},
	}
	debits, credits := accounting.SumSides(lines)
	assert.True(t, debits.Equal(decimal.NewFromInt(100)))
	assert.True(t, credits.Equal(decimal.NewFromInt(100)))
}

func TestValidateLine(t *testing.T) {
	valid := domain.JournalLine{
		Date:        time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Kind:        domain.KindSale,
		AccountCode: "100",
		AccountName: "Cash on hand",
		Debit:       decimal.NewFromInt(50),
	}
	assert.NoError(t, accounting.ValidateLine(valid))

	bothSides := valid
	bothSides.Credit = decimal.NewFromInt(50)
	assert.Error(t, accounting.ValidateLine(bothSides))

	neitherSide := valid
	neitherSide.Debit = decimal.Zero
	assert.Error(t, accounting.ValidateLine(neitherSide))

	negative := valid
	negative.Debit = decimal.NewFromInt(-50)
	assert.Error(t, accounting.ValidateLine(negative))

	noDate := valid
	noDate.Date = time.Time{}
	assert.Error(t, accounting.ValidateLine(noDate))

	noKind := valid
	noKind.Kind = ""
	assert.Error(t, accounting.ValidateLine(noKind))

	noAccount := valid
	noAccount.AccountCode = ""
	assert.Error(t, accounting.ValidateLine(noAccount))
}
