package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	stack *testStack
	ctx   context.Context
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.stack = newTestStack(suite.T(), services.PolicyBlock)
	suite.ctx = context.Background()
}

func (suite *JournalServiceTestSuite) expenseLines(amount string) []dto.JournalLineInput {
	on := date(2026, time.March, 10)
	return []dto.JournalLineInput{
		{Date: on, Kind: string(domain.KindExpense), AccountCode: domain.AccountGeneralExpense, AccountName: "General expenses", Debit: dec(amount)},
		{Date: on, Kind: string(domain.KindExpense), AccountCode: domain.AccountCash, AccountName: "Cash on hand", Credit: dec(amount)},
	}
}

func (suite *JournalServiceTestSuite) TestRecord_Success() {
	txnID, err := suite.stack.journal.Record(suite.ctx, dto.RecordTransactionRequest{Lines: suite.expenseLines("75")})

	suite.Require().NoError(err)
	suite.NotEmpty(txnID)

	lines, err := suite.stack.journal.Transaction(suite.ctx, txnID)
	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)
	for _, l := range lines {
		suite.Equal(txnID, l.TransactionID)
		suite.NotEmpty(l.LineID)
		suite.False(l.CreatedAt.IsZero())
	}
}

func (suite *JournalServiceTestSuite) TestRecord_UnbalancedLeavesJournalUntouched() {
	lines := suite.expenseLines("75")
	lines[1].Credit = dec("74")

	_, err := suite.stack.journal.Record(suite.ctx, dto.RecordTransactionRequest{Lines: lines})
	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUnbalancedTransaction)

	entries, err := suite.stack.ledger.Entries(suite.ctx, time.Time{}, time.Now().UTC().Add(time.Hour), domain.LineFilter{})
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *JournalServiceTestSuite) TestRecord_EmptyBatch() {
	_, err := suite.stack.journal.Record(suite.ctx, dto.RecordTransactionRequest{})
	suite.ErrorIs(err, services.ErrEmptyTransaction)
}

func (suite *JournalServiceTestSuite) TestRecord_BothSidesOnOneLine() {
	lines := suite.expenseLines("75")
	lines[0].Credit = dec("75") // debit and credit both set

	_, err := suite.stack.journal.Record(suite.ctx, dto.RecordTransactionRequest{Lines: lines})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestRecord_NeitherSideOnOneLine() {
	on := date(2026, time.March, 10)
	lines := []dto.JournalLineInput{
		{Date: on, Kind: string(domain.KindExpense), AccountCode: domain.AccountGeneralExpense, AccountName: "General expenses"},
		{Date: on, Kind: string(domain.KindExpense), AccountCode: domain.AccountCash, AccountName: "Cash on hand"},
	}
	_, err := suite.stack.journal.Record(suite.ctx, dto.RecordTransactionRequest{Lines: lines})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestRecord_UnknownAccount() {
	lines := suite.expenseLines("75")
	lines[0].AccountCode = "999"

	_, err := suite.stack.journal.Record(suite.ctx, dto.RecordTransactionRequest{Lines: lines})
	suite.ErrorIs(err, services.ErrAccountNotFound)
}

func (suite *JournalServiceTestSuite) TestRecord_InactiveAccount() {
	suite.Require().NoError(suite.stack.accounts.DeactivateAccount(suite.ctx, domain.AccountGeneralExpense))

	_, err := suite.stack.journal.Record(suite.ctx, dto.RecordTransactionRequest{Lines: suite.expenseLines("75")})
	suite.ErrorIs(err, services.ErrAccountInactive)
}

func (suite *JournalServiceTestSuite) TestReverse_SwapsSidesAndKeepsOriginal() {
	txnID, err := suite.stack.journal.Record(suite.ctx, dto.RecordTransactionRequest{Lines: suite.expenseLines("120")})
	suite.Require().NoError(err)

	reversalID, err := suite.stack.journal.Reverse(suite.ctx, txnID)
	suite.Require().NoError(err)
	suite.NotEqual(txnID, reversalID)

	original, err := suite.stack.journal.Transaction(suite.ctx, txnID)
	suite.Require().NoError(err)
	suite.Len(original, 2)

	reversal, err := suite.stack.journal.Transaction(suite.ctx, reversalID)
	suite.Require().NoError(err)
	suite.Require().Len(reversal, 2)
	for _, l := range reversal {
		suite.Equal(domain.KindReversal, l.Kind)
	}

	// The pair nets to zero on every touched account.
	balance, err := suite.stack.ledger.AccountBalance(suite.ctx, domain.AccountGeneralExpense, time.Now().UTC().Add(time.Hour))
	suite.Require().NoError(err)
	requireDec(suite.T(), "0", balance)
}

func (suite *JournalServiceTestSuite) TestReverse_NotFound() {
	_, err := suite.stack.journal.Reverse(suite.ctx, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestTransaction_NotFound() {
	_, err := suite.stack.journal.Transaction(suite.ctx, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestRecord_NotifiesSubscribers() {
	ch, cancel := suite.stack.broadcaster.Subscribe()
	defer cancel()

	_, err := suite.stack.journal.Record(suite.ctx, dto.RecordTransactionRequest{Lines: suite.expenseLines("10")})
	suite.Require().NoError(err)

	select {
	case <-ch:
	default:
		suite.Fail("expected a ledger-changed signal after a successful write")
	}
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
