package services

import (
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/platform/config"
)

// NewServiceContainer wires the business services over a repository backend.
// The journal service is created first since every other recording path
// funnels through it.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.Notifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, notifier)
	container.Ledger = NewLedgerService(repos.JournalRepo, repos.AccountRepo)
	container.ServiceBalance = NewServiceBalanceService(
		container.Journal,
		container.Ledger,
		repos.OperationRepo,
		repos.ServiceConfigRepo,
		repos.TransferRepo,
		repos.SettingsRepo,
		FundsPolicy(cfg.InsufficientFundsPolicy),
	)
	container.Reporting = NewReportingService(container.Ledger, repos.AccountRepo, repos.FixedAssetRepo, repos.SettingsRepo)
	container.Sales = NewSalesService(container.Journal, repos.ProductRepo, repos.SaleRepo, repos.PartyRepo, repos.SettingsRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Assets = NewAssetService(container.Journal, repos.FixedAssetRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo)

	return container
}
