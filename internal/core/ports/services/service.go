package services

// ServiceContainer bundles all business services for handler wiring.
type ServiceContainer struct {
	Journal        JournalSvc
	Ledger         LedgerSvc
	ServiceBalance ServiceBalanceSvc
	Reporting      ReportingSvc
	Sales          SalesSvc
	Account        AccountSvc
	Assets         AssetSvc
	Settings       SettingsSvc
}
