package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/notify"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testStack wires the full service layer over a fresh in-memory store, with
// the default chart of accounts and a settings record seeded. The store is
// the same backend main falls back to without a database, so the services
// run against real repositories instead of per-method mocks.
type testStack struct {
	store       *memory.Store
	repos       portsrepo.RepositoryProvider
	broadcaster *notify.Broadcaster

	journal   portssvc.JournalSvc
	ledger    portssvc.LedgerSvc
	balance   portssvc.ServiceBalanceSvc
	sales     portssvc.SalesSvc
	reporting portssvc.ReportingSvc
	accounts  portssvc.AccountSvc
	assets    portssvc.AssetSvc
	settings  portssvc.SettingsSvc
}

func newTestStack(t *testing.T, policy services.FundsPolicy) *testStack {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)

	now := time.Now().UTC()
	for _, account := range domain.DefaultChart() {
		account.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
		require.NoError(t, store.SaveAccount(ctx, account))
	}
	require.NoError(t, store.SaveSettings(ctx, domain.Settings{
		CurrencySymbol:       "HTG",
		DefaultExchangeRate:  dec("1"),
		DefaultTransferFee:   dec("50"),
		SalesTaxRate:         dec("0.10"),
		IncomeTaxRate:        dec("0.30"),
		FiscalYearStartMonth: 10,
		AuditFields:          domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}))

	broadcaster := notify.New()
	journal := services.NewJournalService(repos.JournalRepo, repos.AccountRepo, broadcaster)
	ledger := services.NewLedgerService(repos.JournalRepo, repos.AccountRepo)

	return &testStack{
		store:       store,
		repos:       repos,
		broadcaster: broadcaster,
		journal:     journal,
		ledger:      ledger,
		balance: services.NewServiceBalanceService(
			journal, ledger,
			repos.OperationRepo, repos.ServiceConfigRepo, repos.TransferRepo, repos.SettingsRepo,
			policy,
		),
		sales:     services.NewSalesService(journal, repos.ProductRepo, repos.SaleRepo, repos.PartyRepo, repos.SettingsRepo),
		reporting: services.NewReportingService(ledger, repos.AccountRepo, repos.FixedAssetRepo, repos.SettingsRepo),
		accounts:  services.NewAccountService(repos.AccountRepo),
		assets:    services.NewAssetService(journal, repos.FixedAssetRepo),
		settings:  services.NewSettingsService(repos.SettingsRepo),
	}
}

// seedServicePools journals a capital injection attributed to one payment
// service so its cash/digital pools start at known levels.
func (ts *testStack) seedServicePools(t *testing.T, serviceID string, cash, digital string, on time.Time) {
	t.Helper()
	lines := []dto.JournalLineInput{
		{Date: on, Kind: string(domain.KindCapital), ServiceID: serviceID, AccountCode: domain.AccountCash, AccountName: "Cash on hand", Debit: dec(cash)},
		{Date: on, Kind: string(domain.KindCapital), ServiceID: serviceID, AccountCode: domain.AccountDigital, AccountName: "Digital wallet float", Debit: dec(digital)},
		{Date: on, Kind: string(domain.KindCapital), AccountCode: domain.AccountCapital, AccountName: "Owner capital", Credit: dec(cash).Add(dec(digital))},
	}
	_, err := ts.journal.Record(context.Background(), dto.RecordTransactionRequest{Lines: lines})
	require.NoError(t, err)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// requireDec fails with both values rendered when the decimals differ;
// decimal.Decimal cannot be compared with plain Equal assertions.
func requireDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	require.True(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}
