package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	stack *testStack
	ctx   context.Context
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.stack = newTestStack(suite.T(), services.PolicyBlock)
	suite.ctx = context.Background()
}

func (suite *LedgerServiceTestSuite) record(on time.Time, kind domain.TransactionKind, debitCode, debitName, creditCode, creditName, amount string) {
	_, err := suite.stack.journal.Record(suite.ctx, dto.RecordTransactionRequest{Lines: []dto.JournalLineInput{
		{Date: on, Kind: string(kind), AccountCode: debitCode, AccountName: debitName, Debit: dec(amount)},
		{Date: on, Kind: string(kind), AccountCode: creditCode, AccountName: creditName, Credit: dec(amount)},
	}})
	suite.Require().NoError(err)
}

func (suite *LedgerServiceTestSuite) TestTrialBalance_DebitsEqualCredits() {
	suite.record(date(2026, time.January, 5), domain.KindCapital, domain.AccountCash, "Cash on hand", domain.AccountCapital, "Owner capital", "5000")
	suite.record(date(2026, time.January, 8), domain.KindPurchase, domain.AccountInventory, "Inventory", domain.AccountCash, "Cash on hand", "1200")
	suite.record(date(2026, time.January, 12), domain.KindExpense, domain.AccountGeneralExpense, "General expenses", domain.AccountCash, "Cash on hand", "300")

	rows, err := suite.stack.ledger.TrialBalance(suite.ctx, time.Time{}, date(2026, time.February, 1))
	suite.Require().NoError(err)
	suite.Require().NotEmpty(rows)

	debits, credits := decimal.Zero, decimal.Zero
	for _, row := range rows {
		debits = debits.Add(row.Debit)
		credits = credits.Add(row.Credit)
	}
	suite.True(debits.Equal(credits), "trial balance identity broken: %s vs %s", debits, credits)

	// Sorted by account code.
	for i := 1; i < len(rows); i++ {
		suite.Less(rows[i-1].AccountCode, rows[i].AccountCode)
	}
}

func (suite *LedgerServiceTestSuite) TestTrialBalance_RepeatedDerivationIsStable() {
	suite.record(date(2026, time.January, 5), domain.KindCapital, domain.AccountCash, "Cash on hand", domain.AccountCapital, "Owner capital", "5000")
	suite.record(date(2026, time.January, 8), domain.KindPurchase, domain.AccountInventory, "Inventory", domain.AccountCash, "Cash on hand", "1200")
	suite.record(date(2026, time.January, 12), domain.KindExpense, domain.AccountGeneralExpense, "General expenses", domain.AccountCash, "Cash on hand", "300")

	from, to := time.Time{}, date(2026, time.February, 1)
	first, err := suite.stack.ledger.TrialBalance(suite.ctx, from, to)
	suite.Require().NoError(err)
	second, err := suite.stack.ledger.TrialBalance(suite.ctx, from, to)
	suite.Require().NoError(err)

	// Derivation is a pure function of the journal: no intervening writes,
	// identical rows.
	suite.Require().Len(second, len(first))
	for i := range first {
		suite.Equal(first[i].AccountCode, second[i].AccountCode)
		suite.Equal(first[i].AccountName, second[i].AccountName)
		suite.True(first[i].Debit.Equal(second[i].Debit), "debit drifted for %s", first[i].AccountCode)
		suite.True(first[i].Credit.Equal(second[i].Credit), "credit drifted for %s", first[i].AccountCode)
	}
}

func (suite *LedgerServiceTestSuite) TestTrialBalance_HonorsDateRange() {
	suite.record(date(2026, time.January, 5), domain.KindCapital, domain.AccountCash, "Cash on hand", domain.AccountCapital, "Owner capital", "5000")
	suite.record(date(2026, time.March, 5), domain.KindExpense, domain.AccountGeneralExpense, "General expenses", domain.AccountCash, "Cash on hand", "300")

	rows, err := suite.stack.ledger.TrialBalance(suite.ctx, date(2026, time.February, 1), date(2026, time.April, 1))
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal(domain.AccountCash, rows[0].AccountCode)
	requireDec(suite.T(), "300", rows[0].Credit)
	requireDec(suite.T(), "0", rows[0].Debit)
}

func (suite *LedgerServiceTestSuite) TestAccountBalance_SignConvention() {
	suite.record(date(2026, time.January, 5), domain.KindCapital, domain.AccountCash, "Cash on hand", domain.AccountCapital, "Owner capital", "5000")
	suite.record(date(2026, time.January, 8), domain.KindExpense, domain.AccountGeneralExpense, "General expenses", domain.AccountCash, "Cash on hand", "300")

	asOf := date(2026, time.February, 1)

	cash, err := suite.stack.ledger.AccountBalance(suite.ctx, domain.AccountCash, asOf)
	suite.Require().NoError(err)
	requireDec(suite.T(), "4700", cash) // asset: debit-positive

	capital, err := suite.stack.ledger.AccountBalance(suite.ctx, domain.AccountCapital, asOf)
	suite.Require().NoError(err)
	requireDec(suite.T(), "5000", capital) // equity: credit-positive

	expense, err := suite.stack.ledger.AccountBalance(suite.ctx, domain.AccountGeneralExpense, asOf)
	suite.Require().NoError(err)
	requireDec(suite.T(), "300", expense)
}

func (suite *LedgerServiceTestSuite) TestAccountBalance_UnknownAccount() {
	_, err := suite.stack.ledger.AccountBalance(suite.ctx, "999", time.Now().UTC())
	suite.ErrorIs(err, services.ErrAccountNotFound)
}

func (suite *LedgerServiceTestSuite) TestEntries_FilterAndOrder() {
	suite.record(date(2026, time.January, 10), domain.KindExpense, domain.AccountGeneralExpense, "General expenses", domain.AccountCash, "Cash on hand", "100")
	suite.record(date(2026, time.January, 3), domain.KindCapital, domain.AccountCash, "Cash on hand", domain.AccountCapital, "Owner capital", "1000")

	all, err := suite.stack.ledger.Entries(suite.ctx, time.Time{}, date(2026, time.February, 1), domain.LineFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(all, 4)
	for i := 1; i < len(all); i++ {
		suite.False(all[i].Date.Before(all[i-1].Date), "entries out of date order")
	}

	expenses, err := suite.stack.ledger.Entries(suite.ctx, time.Time{}, date(2026, time.February, 1), domain.LineFilter{Kind: domain.KindExpense})
	suite.Require().NoError(err)
	suite.Len(expenses, 2)

	cashOnly, err := suite.stack.ledger.Entries(suite.ctx, time.Time{}, date(2026, time.February, 1), domain.LineFilter{AccountCode: domain.AccountCash})
	suite.Require().NoError(err)
	suite.Len(cashOnly, 2)
}

func (suite *LedgerServiceTestSuite) TestServicePools_AttributionOnly() {
	on := date(2026, time.January, 5)
	suite.stack.seedServicePools(suite.T(), "moncash", "1000", "500", on)

	// Unattributed cash movement must not leak into the service pools.
	suite.record(date(2026, time.January, 6), domain.KindExpense, domain.AccountGeneralExpense, "General expenses", domain.AccountCash, "Cash on hand", "400")

	pools, err := suite.stack.ledger.ServicePools(suite.ctx, "moncash")
	suite.Require().NoError(err)
	suite.Equal("moncash", pools.ServiceID)
	requireDec(suite.T(), "1000", pools.Cash)
	requireDec(suite.T(), "500", pools.Digital)

	other, err := suite.stack.ledger.ServicePools(suite.ctx, "natcash")
	suite.Require().NoError(err)
	requireDec(suite.T(), "0", other.Cash)
	requireDec(suite.T(), "0", other.Digital)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
