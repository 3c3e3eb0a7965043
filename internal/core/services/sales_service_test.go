package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/utils/accounting"
	"github.com/stretchr/testify/suite"
)

type SalesServiceTestSuite struct {
	suite.Suite
	stack *testStack
	ctx   context.Context
}

func (suite *SalesServiceTestSuite) SetupTest() {
	suite.stack = newTestStack(suite.T(), services.PolicyBlock)
	suite.ctx = context.Background()
}

func (suite *SalesServiceTestSuite) createProduct(name string, qty int64, cost, price string, taxable bool) *domain.Product {
	product, err := suite.stack.sales.CreateProduct(suite.ctx, dto.CreateProductRequest{
		Name:      name,
		Quantity:  qty,
		UnitCost:  dec(cost),
		UnitPrice: dec(price),
		Taxable:   taxable,
	})
	suite.Require().NoError(err)
	return product
}

func (suite *SalesServiceTestSuite) createParty(name, role string) *domain.ThirdParty {
	party, err := suite.stack.sales.CreateParty(suite.ctx, dto.CreatePartyRequest{Name: name, Role: role})
	suite.Require().NoError(err)
	return party
}

func (suite *SalesServiceTestSuite) TestRecordSale_CashTaxable() {
	product := suite.createProduct("Rice 25kg", 10, "60", "100", true)

	sale, err := suite.stack.sales.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ProductID: product.ProductID,
		Quantity:  2,
		Date:      date(2026, time.February, 3),
	})
	suite.Require().NoError(err)

	requireDec(suite.T(), "200", sale.Total)
	requireDec(suite.T(), "20", sale.Tax) // 10% on taxable goods
	requireDec(suite.T(), "120", sale.CostBasis)

	lines, err := suite.stack.journal.Transaction(suite.ctx, sale.TransactionID)
	suite.Require().NoError(err)
	suite.Require().Len(lines, 5)

	debits, credits := accounting.SumSides(lines)
	suite.True(debits.Equal(credits))

	cash := findLineByAccount(lines, domain.AccountCash)
	suite.Require().NotNil(cash)
	requireDec(suite.T(), "220", cash.Debit) // proceeds include tax

	requireDec(suite.T(), "200", findLineByAccount(lines, domain.AccountSalesRevenue).Credit)
	requireDec(suite.T(), "20", findLineByAccount(lines, domain.AccountTaxPayable).Credit)
	requireDec(suite.T(), "120", findLineByAccount(lines, domain.AccountCOGS).Debit)
	requireDec(suite.T(), "120", findLineByAccount(lines, domain.AccountInventory).Credit)

	updated, err := suite.stack.repos.ProductRepo.FindProductByID(suite.ctx, product.ProductID)
	suite.Require().NoError(err)
	suite.EqualValues(8, updated.Quantity)
}

func (suite *SalesServiceTestSuite) TestRecordSale_InsufficientStock() {
	product := suite.createProduct("Oil 1L", 1, "40", "55", false)

	_, err := suite.stack.sales.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ProductID: product.ProductID,
		Quantity:  3,
		Date:      date(2026, time.February, 3),
	})
	suite.ErrorIs(err, services.ErrInsufficientStock)

	// Nothing journaled, stock untouched.
	entries, err := suite.stack.ledger.Entries(suite.ctx, time.Time{}, date(2026, time.March, 1), domain.LineFilter{})
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *SalesServiceTestSuite) TestRecordSale_OnCredit() {
	product := suite.createProduct("Flour 10kg", 5, "30", "50", false)
	client := suite.createParty("Boutique Ti Marche", "CLIENT")

	sale, err := suite.stack.sales.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ProductID: product.ProductID,
		Quantity:  2,
		OnCredit:  true,
		PartyID:   client.PartyID,
		Date:      date(2026, time.February, 5),
	})
	suite.Require().NoError(err)

	lines, err := suite.stack.journal.Transaction(suite.ctx, sale.TransactionID)
	suite.Require().NoError(err)
	receivable := findLineByAccount(lines, domain.AccountReceivables)
	suite.Require().NotNil(receivable, "credit sale must debit receivables")
	requireDec(suite.T(), "100", receivable.Debit)
	suite.Nil(findLineByAccount(lines, domain.AccountCash))

	updated, err := suite.stack.repos.PartyRepo.FindPartyByID(suite.ctx, client.PartyID)
	suite.Require().NoError(err)
	requireDec(suite.T(), "100", updated.Balance)
}

func (suite *SalesServiceTestSuite) TestRecordSale_CreditRequiresClient() {
	product := suite.createProduct("Flour 10kg", 5, "30", "50", false)

	_, err := suite.stack.sales.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ProductID: product.ProductID,
		Quantity:  1,
		OnCredit:  true,
		Date:      date(2026, time.February, 5),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	supplier := suite.createParty("Distributeur Nord", "SUPPLIER")
	_, err = suite.stack.sales.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ProductID: product.ProductID,
		Quantity:  1,
		OnCredit:  true,
		PartyID:   supplier.PartyID,
		Date:      date(2026, time.February, 5),
	})
	suite.ErrorIs(err, services.ErrPartyRoleMismatch)
}

func (suite *SalesServiceTestSuite) TestRecordSale_ExplicitUnitPriceOverride() {
	product := suite.createProduct("Soap", 10, "10", "25", false)

	sale, err := suite.stack.sales.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ProductID: product.ProductID,
		Quantity:  1,
		UnitPrice: dec("20"), // negotiated below list
		Date:      date(2026, time.February, 6),
	})
	suite.Require().NoError(err)
	requireDec(suite.T(), "20", sale.Total)
}

func (suite *SalesServiceTestSuite) TestRecordRestock_CashAndCredit() {
	product := suite.createProduct("Rice 25kg", 2, "60", "100", true)

	updated, err := suite.stack.sales.RecordRestock(suite.ctx, dto.RestockRequest{
		ProductID: product.ProductID,
		Quantity:  8,
		UnitCost:  dec("65"),
		Date:      date(2026, time.February, 7),
	})
	suite.Require().NoError(err)
	suite.EqualValues(10, updated.Quantity)
	requireDec(suite.T(), "65", updated.UnitCost) // cost basis follows latest purchase

	inventory, err := suite.stack.ledger.AccountBalance(suite.ctx, domain.AccountInventory, date(2026, time.March, 1))
	suite.Require().NoError(err)
	requireDec(suite.T(), "520", inventory)

	supplier := suite.createParty("Distributeur Nord", "SUPPLIER")
	_, err = suite.stack.sales.RecordRestock(suite.ctx, dto.RestockRequest{
		ProductID: product.ProductID,
		Quantity:  4,
		UnitCost:  dec("65"),
		OnCredit:  true,
		PartyID:   supplier.PartyID,
		Date:      date(2026, time.February, 8),
	})
	suite.Require().NoError(err)

	payables, err := suite.stack.ledger.AccountBalance(suite.ctx, domain.AccountPayables, date(2026, time.March, 1))
	suite.Require().NoError(err)
	requireDec(suite.T(), "260", payables)

	balance, err := suite.stack.repos.PartyRepo.FindPartyByID(suite.ctx, supplier.PartyID)
	suite.Require().NoError(err)
	requireDec(suite.T(), "260", balance.Balance)
}

func (suite *SalesServiceTestSuite) TestRecordSettlement_ClientCollection() {
	product := suite.createProduct("Flour 10kg", 5, "30", "50", false)
	client := suite.createParty("Boutique Ti Marche", "CLIENT")

	_, err := suite.stack.sales.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ProductID: product.ProductID,
		Quantity:  2,
		OnCredit:  true,
		PartyID:   client.PartyID,
		Date:      date(2026, time.February, 5),
	})
	suite.Require().NoError(err)

	settled, err := suite.stack.sales.RecordSettlement(suite.ctx, dto.SettlementRequest{
		PartyID: client.PartyID,
		Amount:  dec("60"),
		Date:    date(2026, time.February, 20),
	})
	suite.Require().NoError(err)
	requireDec(suite.T(), "40", settled.Balance)

	receivables, err := suite.stack.ledger.AccountBalance(suite.ctx, domain.AccountReceivables, date(2026, time.March, 1))
	suite.Require().NoError(err)
	requireDec(suite.T(), "40", receivables)
}

func (suite *SalesServiceTestSuite) TestRecordSettlement_ExceedsBalance() {
	client := suite.createParty("Boutique Ti Marche", "CLIENT")

	_, err := suite.stack.sales.RecordSettlement(suite.ctx, dto.SettlementRequest{
		PartyID: client.PartyID,
		Amount:  dec("10"),
		Date:    date(2026, time.February, 20),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SalesServiceTestSuite) TestListParties_RoleFilter() {
	suite.createParty("Boutique Ti Marche", "CLIENT")
	suite.createParty("Distributeur Nord", "SUPPLIER")

	clients, err := suite.stack.sales.ListParties(suite.ctx, domain.RoleClient)
	suite.Require().NoError(err)
	suite.Len(clients, 1)

	all, err := suite.stack.sales.ListParties(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *SalesServiceTestSuite) TestListSales_DateRange() {
	product := suite.createProduct("Soap", 10, "10", "25", false)

	for _, day := range []int{3, 15} {
		_, err := suite.stack.sales.RecordSale(suite.ctx, dto.RecordSaleRequest{
			ProductID: product.ProductID,
			Quantity:  1,
			Date:      date(2026, time.February, day),
		})
		suite.Require().NoError(err)
	}

	sales, err := suite.stack.sales.ListSales(suite.ctx, date(2026, time.February, 10), date(2026, time.February, 28))
	suite.Require().NoError(err)
	suite.Len(sales, 1)
}

func TestSalesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalesServiceTestSuite))
}
