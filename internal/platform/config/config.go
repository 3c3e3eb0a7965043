package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Seed values for the settings record on first boot.
	CurrencySymbol       string
	DefaultExchangeRate  decimal.Decimal
	DefaultTransferFee   decimal.Decimal
	SalesTaxRate         decimal.Decimal
	IncomeTaxRate        decimal.Decimal
	FiscalYearStartMonth int

	// InsufficientFundsPolicy is "block" or "warn".
	InsufficientFundsPolicy string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("CURRENCY_SYMBOL", "HTG")
	viper.SetDefault("DEFAULT_EXCHANGE_RATE", "1")
	viper.SetDefault("DEFAULT_TRANSFER_FEE", "0")
	viper.SetDefault("SALES_TAX_RATE", "0.10")
	viper.SetDefault("INCOME_TAX_RATE", "0.30")
	viper.SetDefault("FISCAL_YEAR_START_MONTH", 10)
	viper.SetDefault("INSUFFICIENT_FUNDS_POLICY", "block")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Falling back to the in-memory store.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.CurrencySymbol = viper.GetString("CURRENCY_SYMBOL")
	cfg.DefaultExchangeRate = mustDecimal("DEFAULT_EXCHANGE_RATE", "1")
	cfg.DefaultTransferFee = mustDecimal("DEFAULT_TRANSFER_FEE", "0")
	cfg.SalesTaxRate = mustDecimal("SALES_TAX_RATE", "0.10")
	cfg.IncomeTaxRate = mustDecimal("INCOME_TAX_RATE", "0.30")

	cfg.FiscalYearStartMonth = viper.GetInt("FISCAL_YEAR_START_MONTH")
	if cfg.FiscalYearStartMonth < 1 || cfg.FiscalYearStartMonth > 12 {
		log.Printf("Warning: Invalid FISCAL_YEAR_START_MONTH (%d). Defaulting to 10.\n", cfg.FiscalYearStartMonth)
		cfg.FiscalYearStartMonth = 10
	}

	cfg.InsufficientFundsPolicy = viper.GetString("INSUFFICIENT_FUNDS_POLICY")
	if cfg.InsufficientFundsPolicy != "block" && cfg.InsufficientFundsPolicy != "warn" {
		log.Printf("Warning: Invalid INSUFFICIENT_FUNDS_POLICY (%q). Defaulting to block.\n", cfg.InsufficientFundsPolicy)
		cfg.InsufficientFundsPolicy = "block"
	}

	return cfg, nil
}

// mustDecimal parses a decimal setting, falling back to the given default on
// malformed input.
func mustDecimal(key, fallback string) decimal.Decimal {
	raw := viper.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s (%q). Defaulting to %s.\n", key, raw, fallback)
		d, _ = decimal.NewFromString(fallback)
	}
	return d
}
