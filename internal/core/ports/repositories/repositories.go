package repositories

// RepositoryProvider bundles all repository implementations for a backend.
type RepositoryProvider struct {
	JournalRepo       JournalRepository
	AccountRepo       AccountRepository
	OperationRepo     OperationRepository
	ServiceConfigRepo ServiceConfigRepository
	PartyRepo         PartyRepository
	ProductRepo       ProductRepository
	SaleRepo          SaleRepository
	TransferRepo      TransferRepository
	FixedAssetRepo    FixedAssetRepository
	SettingsRepo      SettingsRepository
}
