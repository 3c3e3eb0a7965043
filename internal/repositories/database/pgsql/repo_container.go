package pgsql

import (
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalRepo:       newPgxJournalRepository(dbPool),
		AccountRepo:       newPgxAccountRepository(dbPool),
		OperationRepo:     newPgxOperationRepository(dbPool),
		ServiceConfigRepo: newPgxServiceConfigRepository(dbPool),
		PartyRepo:         newPgxPartyRepository(dbPool),
		ProductRepo:       newPgxProductRepository(dbPool),
		SaleRepo:          newPgxSaleRepository(dbPool),
		TransferRepo:      newPgxTransferRepository(dbPool),
		FixedAssetRepo:    newPgxFixedAssetRepository(dbPool),
		SettingsRepo:      newPgxSettingsRepository(dbPool),
	}
}
