package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/stretchr/testify/suite"
)

type ServiceBalanceTestSuite struct {
	suite.Suite
	stack *testStack
	ctx   context.Context
}

func (suite *ServiceBalanceTestSuite) SetupTest() {
	suite.stack = newTestStack(suite.T(), services.PolicyBlock)
	suite.ctx = context.Background()
}

func (suite *ServiceBalanceTestSuite) seedStandardPools(serviceID string) {
	suite.stack.seedServicePools(suite.T(), serviceID, "1000", "500", date(2026, time.January, 2))
}

func (suite *ServiceBalanceTestSuite) TestDeposit_PoolTransition() {
	suite.seedStandardPools("moncash")

	op, err := suite.stack.balance.RecordOperation(suite.ctx, dto.RecordOperationRequest{
		Kind:      string(domain.OpDeposit),
		ServiceID: "moncash",
		Date:      date(2026, time.January, 10),
		Principal: dec("200"),
		Fees:      dec("10"),
		Commission: dec("5"),
	})

	suite.Require().NoError(err)
	requireDec(suite.T(), "1000", op.CashBefore)
	requireDec(suite.T(), "500", op.DigitalBefore)
	requireDec(suite.T(), "1210", op.CashAfter)
	// Commission lands in the digital float alongside the principal move:
	// 500 - 200 + 5.
	requireDec(suite.T(), "305", op.DigitalAfter)

	// The journal-derived pools agree with the snapshots.
	pools, err := suite.stack.ledger.ServicePools(suite.ctx, "moncash")
	suite.Require().NoError(err)
	requireDec(suite.T(), "1210", pools.Cash)
	requireDec(suite.T(), "305", pools.Digital)

	// The emitted legs carry the pool deltas and the take, and balance:
	// 210 debit = 195 + 15 credit.
	lines, err := suite.stack.journal.Transaction(suite.ctx, op.TransactionID)
	suite.Require().NoError(err)
	suite.Require().Len(lines, 3)
	requireDec(suite.T(), "210", findLineByAccount(lines, domain.AccountCash).Debit)
	requireDec(suite.T(), "195", findLineByAccount(lines, domain.AccountDigital).Credit)
	requireDec(suite.T(), "15", findLineByAccount(lines, domain.AccountFeeRevenue).Credit)
}

func (suite *ServiceBalanceTestSuite) TestWithdrawal_PoolTransition() {
	suite.seedStandardPools("moncash")

	op, err := suite.stack.balance.RecordOperation(suite.ctx, dto.RecordOperationRequest{
		Kind:      string(domain.OpWithdrawal),
		ServiceID: "moncash",
		Date:      date(2026, time.January, 10),
		Principal: dec("200"),
		Fees:      dec("10"),
		Commission: dec("5"),
	})

	suite.Require().NoError(err)
	requireDec(suite.T(), "800", op.CashAfter)
	requireDec(suite.T(), "715", op.DigitalAfter)

	pools, err := suite.stack.ledger.ServicePools(suite.ctx, "moncash")
	suite.Require().NoError(err)
	requireDec(suite.T(), "800", pools.Cash)
	requireDec(suite.T(), "715", pools.Digital)
}

func (suite *ServiceBalanceTestSuite) TestBrokeredTake_CreditsFeeRevenue() {
	suite.seedStandardPools("moncash")

	op, err := suite.stack.balance.RecordOperation(suite.ctx, dto.RecordOperationRequest{
		Kind:      string(domain.OpDeposit),
		ServiceID: "moncash",
		Date:      date(2026, time.January, 10),
		Principal: dec("200"),
		Fees:      dec("10"),
		Commission: dec("5"),
	})
	suite.Require().NoError(err)

	lines, err := suite.stack.journal.Transaction(suite.ctx, op.TransactionID)
	suite.Require().NoError(err)

	revenue := findLineByAccount(lines, domain.AccountFeeRevenue)
	suite.Require().NotNil(revenue, "brokered take must land on fee revenue")
	requireDec(suite.T(), "15", revenue.Credit)
	suite.Nil(findLineByAccount(lines, domain.AccountServiceRevenue))
}

func (suite *ServiceBalanceTestSuite) TestProprietaryTake_CreditsServiceRevenue() {
	suite.seedStandardPools("tchotcho")

	_, err := suite.stack.balance.ConfigureService(suite.ctx, dto.ConfigureServiceRequest{
		ServiceID:    "tchotcho",
		Label:        "TchoTcho Mobile",
		IsOwnService: true,
	})
	suite.Require().NoError(err)

	op, err := suite.stack.balance.RecordOperation(suite.ctx, dto.RecordOperationRequest{
		Kind:      string(domain.OpDeposit),
		ServiceID: "tchotcho",
		Date:      date(2026, time.January, 10),
		Principal: dec("200"),
		Fees:      dec("10"),
		Commission: dec("5"),
	})
	suite.Require().NoError(err)

	lines, err := suite.stack.journal.Transaction(suite.ctx, op.TransactionID)
	suite.Require().NoError(err)

	revenue := findLineByAccount(lines, domain.AccountServiceRevenue)
	suite.Require().NotNil(revenue, "proprietary take must land on service revenue")
	requireDec(suite.T(), "15", revenue.Credit)
	suite.Nil(findLineByAccount(lines, domain.AccountFeeRevenue))
}

func (suite *ServiceBalanceTestSuite) TestInsufficientFunds_BlockPolicy() {
	suite.seedStandardPools("moncash")

	_, err := suite.stack.balance.RecordOperation(suite.ctx, dto.RecordOperationRequest{
		Kind:      string(domain.OpWithdrawal),
		ServiceID: "moncash",
		Date:      date(2026, time.January, 10),
		Principal: dec("1500"), // cash pool holds 1000
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInsufficientBalance)

	// No pool state moved.
	pools, err := suite.stack.ledger.ServicePools(suite.ctx, "moncash")
	suite.Require().NoError(err)
	requireDec(suite.T(), "1000", pools.Cash)
	requireDec(suite.T(), "500", pools.Digital)

	ops, err := suite.stack.balance.ListOperations(suite.ctx, "moncash", time.Time{}, date(2026, time.February, 1))
	suite.Require().NoError(err)
	suite.Empty(ops)
}

func (suite *ServiceBalanceTestSuite) TestInsufficientFunds_WarnPolicyRecords() {
	warnStack := newTestStack(suite.T(), services.PolicyWarn)
	warnStack.seedServicePools(suite.T(), "moncash", "1000", "500", date(2026, time.January, 2))

	op, err := warnStack.balance.RecordOperation(suite.ctx, dto.RecordOperationRequest{
		Kind:      string(domain.OpWithdrawal),
		ServiceID: "moncash",
		Date:      date(2026, time.January, 10),
		Principal: dec("1500"),
	})
	suite.Require().NoError(err)
	requireDec(suite.T(), "-500", op.CashAfter)
	requireDec(suite.T(), "2000", op.DigitalAfter)

	pools, err := warnStack.ledger.ServicePools(suite.ctx, "moncash")
	suite.Require().NoError(err)
	requireDec(suite.T(), "-500", pools.Cash)
}

func (suite *ServiceBalanceTestSuite) TestRecordOperation_Validation() {
	_, err := suite.stack.balance.RecordOperation(suite.ctx, dto.RecordOperationRequest{
		Kind:      "LOAN",
		ServiceID: "moncash",
		Date:      date(2026, time.January, 10),
		Principal: dec("100"),
	})
	suite.ErrorIs(err, services.ErrUnknownOperationKind)

	_, err = suite.stack.balance.RecordOperation(suite.ctx, dto.RecordOperationRequest{
		Kind:      string(domain.OpDeposit),
		ServiceID: "moncash",
		Date:      date(2026, time.January, 10),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ServiceBalanceTestSuite) TestOperationNumbers_Monotonic() {
	suite.seedStandardPools("moncash")

	var last int64
	for i := 0; i < 3; i++ {
		op, err := suite.stack.balance.RecordOperation(suite.ctx, dto.RecordOperationRequest{
			Kind:      string(domain.OpDeposit),
			ServiceID: "moncash",
			Date:      date(2026, time.January, 10+i),
			Principal: dec("50"),
		})
		suite.Require().NoError(err)
		suite.Greater(op.Number, last)
		last = op.Number
	}
}

func (suite *ServiceBalanceTestSuite) TestRecordTransfer_DefaultsFromSettings() {
	suite.stack.seedServicePools(suite.T(), "wu", "5000", "3000", date(2026, time.January, 2))

	transfer, err := suite.stack.balance.RecordTransfer(suite.ctx, dto.RecordTransferRequest{
		ServiceID:    "wu",
		Date:         date(2026, time.January, 15),
		Amount:       dec("800"),
		SenderName:   "Jean Baptiste",
		ReceiverName: "Marie Joseph",
	})
	suite.Require().NoError(err)
	requireDec(suite.T(), "50", transfer.Fees) // settings default
	requireDec(suite.T(), "1", transfer.ExchangeRate)
	suite.NotEmpty(transfer.OperationID)

	// Transfer runs the deposit-shaped transition.
	pools, err := suite.stack.ledger.ServicePools(suite.ctx, "wu")
	suite.Require().NoError(err)
	requireDec(suite.T(), "5850", pools.Cash)
	requireDec(suite.T(), "2200", pools.Digital)

	transfers, err := suite.stack.balance.ListTransfers(suite.ctx, time.Time{}, date(2026, time.February, 1))
	suite.Require().NoError(err)
	suite.Len(transfers, 1)
}

func (suite *ServiceBalanceTestSuite) TestCheckReconciliation_Agreement() {
	suite.seedStandardPools("moncash")

	_, err := suite.stack.balance.RecordOperation(suite.ctx, dto.RecordOperationRequest{
		Kind:      string(domain.OpDeposit),
		ServiceID: "moncash",
		Date:      date(2026, time.January, 10),
		Principal: dec("200"),
		Fees:      dec("10"),
	})
	suite.Require().NoError(err)

	report, err := suite.stack.balance.CheckReconciliation(suite.ctx, "moncash")
	suite.Require().NoError(err)
	suite.True(report.InAgreement)
	requireDec(suite.T(), "0", report.CashDelta)
	requireDec(suite.T(), "0", report.DigitalDelta)
}

func (suite *ServiceBalanceTestSuite) TestCheckReconciliation_NoOperations() {
	suite.seedStandardPools("moncash")

	report, err := suite.stack.balance.CheckReconciliation(suite.ctx, "moncash")
	suite.Require().NoError(err)
	suite.True(report.InAgreement)
	suite.Empty(report.OperationID)
	requireDec(suite.T(), "1000", report.SnapshotCash)
	requireDec(suite.T(), "1000", report.DerivedCash)
}

func (suite *ServiceBalanceTestSuite) TestCheckReconciliation_DetectsDrift() {
	suite.seedStandardPools("moncash")

	_, err := suite.stack.balance.RecordOperation(suite.ctx, dto.RecordOperationRequest{
		Kind:      string(domain.OpDeposit),
		ServiceID: "moncash",
		Date:      date(2026, time.January, 10),
		Principal: dec("200"),
	})
	suite.Require().NoError(err)

	// A manual adjustment moves the journal after the snapshot was taken.
	_, err = suite.stack.journal.Record(suite.ctx, dto.RecordTransactionRequest{Lines: []dto.JournalLineInput{
		{Date: date(2026, time.January, 11), Kind: string(domain.KindAdjustment), ServiceID: "moncash", AccountCode: domain.AccountCash, AccountName: "Cash on hand", Credit: dec("30")},
		{Date: date(2026, time.January, 11), Kind: string(domain.KindAdjustment), AccountCode: domain.AccountGeneralExpense, AccountName: "General expenses", Debit: dec("30")},
	}})
	suite.Require().NoError(err)

	report, err := suite.stack.balance.CheckReconciliation(suite.ctx, "moncash")
	suite.Require().NoError(err)
	suite.False(report.InAgreement)
	requireDec(suite.T(), "30", report.CashDelta) // snapshot ahead of journal by the adjustment
}

func (suite *ServiceBalanceTestSuite) TestGetServiceConfig_DefaultsToBrokered() {
	cfg, err := suite.stack.balance.GetServiceConfig(suite.ctx, "unseen")
	suite.Require().NoError(err)
	suite.False(cfg.IsOwnService)
	suite.Equal("unseen", cfg.Label)
}

func (suite *ServiceBalanceTestSuite) TestConfigureService_LabelDefaultsToID() {
	cfg, err := suite.stack.balance.ConfigureService(suite.ctx, dto.ConfigureServiceRequest{ServiceID: "moncash"})
	suite.Require().NoError(err)
	suite.Equal("moncash", cfg.Label)

	listed, err := suite.stack.balance.ListServiceConfigs(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(listed, 1)
}

func findLineByAccount(lines []domain.JournalLine, code string) *domain.JournalLine {
	for i := range lines {
		if lines[i].AccountCode == code {
			return &lines[i]
		}
	}
	return nil
}

func TestServiceBalanceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceBalanceTestSuite))
}
