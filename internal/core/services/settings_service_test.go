package services_test

import (
	"context"
	"testing"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	stack *testStack
	ctx   context.Context
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.stack = newTestStack(suite.T(), services.PolicyBlock)
	suite.ctx = context.Background()
}

func (suite *SettingsServiceTestSuite) TestGetSettings() {
	settings, err := suite.stack.settings.GetSettings(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("HTG", settings.CurrencySymbol)
	requireDec(suite.T(), "0.10", settings.SalesTaxRate)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_ReplacesRecord() {
	before, err := suite.stack.settings.GetSettings(suite.ctx)
	suite.Require().NoError(err)

	updated, err := suite.stack.settings.UpdateSettings(suite.ctx, dto.UpdateSettingsRequest{
		CurrencySymbol:       "USD",
		DefaultExchangeRate:  dec("132.5"),
		DefaultTransferFee:   dec("75"),
		SalesTaxRate:         dec("0.12"),
		IncomeTaxRate:        dec("0.30"),
		FiscalYearStartMonth: 1,
	})
	suite.Require().NoError(err)
	suite.Equal("USD", updated.CurrencySymbol)
	requireDec(suite.T(), "0.12", updated.SalesTaxRate)
	suite.Equal(before.CreatedAt, updated.CreatedAt) // creation time survives the replace

	reloaded, err := suite.stack.settings.GetSettings(suite.ctx)
	suite.Require().NoError(err)
	requireDec(suite.T(), "132.5", reloaded.DefaultExchangeRate)
	suite.Equal(1, reloaded.FiscalYearStartMonth)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
