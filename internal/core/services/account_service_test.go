package services_test

import (
	"context"
	"testing"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	stack *testStack
	ctx   context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.stack = newTestStack(suite.T(), services.PolicyBlock)
	suite.ctx = context.Background()
}

func (suite *AccountServiceTestSuite) TestCreateAccount() {
	account, err := suite.stack.accounts.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Code:   "520",
		Name:   "Rent expense",
		Nature: "EXPENSE",
	})
	suite.Require().NoError(err)
	suite.Equal("520", account.Code)
	suite.Equal(domain.Expense, account.Nature)
	suite.True(account.IsActive)

	fetched, err := suite.stack.accounts.GetAccountByCode(suite.ctx, "520")
	suite.Require().NoError(err)
	suite.Equal("Rent expense", fetched.Name)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	_, err := suite.stack.accounts.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Code:   domain.AccountCash, // seeded by the default chart
		Name:   "Cash again",
		Nature: "ASSET",
	})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidNature() {
	_, err := suite.stack.accounts.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Code:   "530",
		Name:   "Mystery",
		Nature: "CONTRA",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestGetAccountByCode_NotFound() {
	_, err := suite.stack.accounts.GetAccountByCode(suite.ctx, "999")
	suite.ErrorIs(err, services.ErrAccountNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts_SeededChart() {
	accounts, err := suite.stack.accounts.ListAccounts(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(accounts, len(domain.DefaultChart()))
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialFields() {
	name := "Petty cash"
	account, err := suite.stack.accounts.UpdateAccount(suite.ctx, domain.AccountCash, dto.UpdateAccountRequest{Name: &name})
	suite.Require().NoError(err)
	suite.Equal("Petty cash", account.Name)
	suite.Equal(domain.Asset, account.Nature) // nature is immutable
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Idempotent() {
	suite.Require().NoError(suite.stack.accounts.DeactivateAccount(suite.ctx, domain.AccountGeneralExpense))
	suite.Require().NoError(suite.stack.accounts.DeactivateAccount(suite.ctx, domain.AccountGeneralExpense))

	account, err := suite.stack.accounts.GetAccountByCode(suite.ctx, domain.AccountGeneralExpense)
	suite.Require().NoError(err)
	suite.False(account.IsActive)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
