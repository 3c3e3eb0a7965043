package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	portssvc "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPartyRoleMismatch = errors.New("third party has the wrong role for this operation")
)

// salesService records sales, restocking and third-party settlements. All
// money movement goes through the transaction recorder; product quantities
// and party balances are the contextual side records.
type salesService struct {
	journalSvc   portssvc.JournalSvc
	productRepo  portsrepo.ProductRepository
	saleRepo     portsrepo.SaleRepository
	partyRepo    portsrepo.PartyRepository
	settingsRepo portsrepo.SettingsRepository
}

// NewSalesService creates a new SalesSvc.
func NewSalesService(
	journalSvc portssvc.JournalSvc,
	productRepo portsrepo.ProductRepository,
	saleRepo portsrepo.SaleRepository,
	partyRepo portsrepo.PartyRepository,
	settingsRepo portsrepo.SettingsRepository,
) portssvc.SalesSvc {
	return &salesService{
		journalSvc:   journalSvc,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		partyRepo:    partyRepo,
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.SalesSvc = (*salesService)(nil)

// RecordSale books a product sale: revenue plus tax on the proceeds side,
// cost of goods sold against inventory at the product's cost basis. Credit
// sales debit the client's receivable instead of cash.
func (s *salesService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", req.ProductID, err)
	}
	if product.Quantity < req.Quantity {
		return nil, fmt.Errorf("%w: product %s has %d, sale needs %d",
			ErrInsufficientStock, product.Name, product.Quantity, req.Quantity)
	}

	var client *domain.ThirdParty
	if req.OnCredit {
		if req.PartyID == "" {
			return nil, fmt.Errorf("%w: credit sale requires a client", apperrors.ErrValidation)
		}
		client, err = s.partyRepo.FindPartyByID(ctx, req.PartyID)
		if err != nil {
			return nil, fmt.Errorf("failed to find client %s: %w", req.PartyID, err)
		}
		if client.Role != domain.RoleClient {
			return nil, fmt.Errorf("%w: party %s is not a client", ErrPartyRoleMismatch, client.Name)
		}
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	unitPrice := req.UnitPrice
	if unitPrice.IsZero() {
		unitPrice = product.UnitPrice
	}
	qty := decimal.NewFromInt(req.Quantity)
	total := unitPrice.Mul(qty)
	tax := decimal.Zero
	if product.Taxable {
		tax = total.Mul(settings.SalesTaxRate).Round(2)
	}
	costBasis := product.UnitCost.Mul(qty)
	proceeds := total.Add(tax)

	proceedsAccount := domain.AccountCash
	proceedsName := "Cash on hand"
	if req.OnCredit {
		proceedsAccount = domain.AccountReceivables
		proceedsName = "Client receivables"
	}

	description := fmt.Sprintf("sale of %d x %s", req.Quantity, product.Name)
	lines := []dto.JournalLineInput{
		{Date: req.Date, Kind: string(domain.KindSale), AccountCode: proceedsAccount, AccountName: proceedsName, Debit: proceeds, Description: description},
		{Date: req.Date, Kind: string(domain.KindSale), AccountCode: domain.AccountSalesRevenue, AccountName: "Sales revenue", Credit: total, Description: description},
	}
	if tax.IsPositive() {
		lines = append(lines, dto.JournalLineInput{Date: req.Date, Kind: string(domain.KindSale), AccountCode: domain.AccountTaxPayable, AccountName: "Taxes payable", Credit: tax, Description: description})
	}
	if costBasis.IsPositive() {
		lines = append(lines,
			dto.JournalLineInput{Date: req.Date, Kind: string(domain.KindSale), AccountCode: domain.AccountCOGS, AccountName: "Cost of goods sold", Debit: costBasis, Description: description},
			dto.JournalLineInput{Date: req.Date, Kind: string(domain.KindSale), AccountCode: domain.AccountInventory, AccountName: "Inventory", Credit: costBasis, Description: description},
		)
	}

	transactionID, err := s.journalSvc.Record(ctx, dto.RecordTransactionRequest{Lines: lines})
	if err != nil {
		return nil, fmt.Errorf("failed to record sale journal lines: %w", err)
	}

	now := time.Now().UTC()
	product.Quantity -= req.Quantity
	product.LastUpdatedAt = now
	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		logger.Error("Failed to update product stock after sale", slog.String("error", err.Error()), slog.String("product_id", product.ProductID))
		return nil, fmt.Errorf("failed to update product stock: %w", err)
	}

	if client != nil {
		client.Balance = client.Balance.Add(proceeds)
		client.LastUpdatedAt = now
		if err := s.partyRepo.UpdateParty(ctx, *client); err != nil {
			return nil, fmt.Errorf("failed to update client balance: %w", err)
		}
	}

	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		ProductID:     product.ProductID,
		Quantity:      req.Quantity,
		UnitPrice:     unitPrice,
		Total:         total,
		Tax:           tax,
		CostBasis:     costBasis,
		OnCredit:      req.OnCredit,
		PartyID:       req.PartyID,
		Date:          req.Date,
		TransactionID: transactionID,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to save sale record: %w", err)
	}

	logger.Info("Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("product_id", product.ProductID),
		slog.Int64("quantity", req.Quantity),
		slog.Bool("on_credit", req.OnCredit))
	return &sale, nil
}

// RecordRestock books a stock purchase: inventory up, cash down or supplier
// payable up. The product's cost basis moves to the latest purchase cost.
func (s *salesService) RecordRestock(ctx context.Context, req dto.RestockRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", req.ProductID, err)
	}

	var supplier *domain.ThirdParty
	if req.OnCredit {
		if req.PartyID == "" {
			return nil, fmt.Errorf("%w: credit restock requires a supplier", apperrors.ErrValidation)
		}
		supplier, err = s.partyRepo.FindPartyByID(ctx, req.PartyID)
		if err != nil {
			return nil, fmt.Errorf("failed to find supplier %s: %w", req.PartyID, err)
		}
		if supplier.Role != domain.RoleSupplier {
			return nil, fmt.Errorf("%w: party %s is not a supplier", ErrPartyRoleMismatch, supplier.Name)
		}
	}

	amount := req.UnitCost.Mul(decimal.NewFromInt(req.Quantity))
	counterAccount := domain.AccountCash
	counterName := "Cash on hand"
	if req.OnCredit {
		counterAccount = domain.AccountPayables
		counterName = "Supplier payables"
	}

	description := fmt.Sprintf("restock of %d x %s", req.Quantity, product.Name)
	_, err = s.journalSvc.Record(ctx, dto.RecordTransactionRequest{Lines: []dto.JournalLineInput{
		{Date: req.Date, Kind: string(domain.KindPurchase), AccountCode: domain.AccountInventory, AccountName: "Inventory", Debit: amount, Description: description},
		{Date: req.Date, Kind: string(domain.KindPurchase), AccountCode: counterAccount, AccountName: counterName, Credit: amount, Description: description},
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to record restock journal lines: %w", err)
	}

	now := time.Now().UTC()
	product.Quantity += req.Quantity
	product.UnitCost = req.UnitCost
	product.LastUpdatedAt = now
	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product stock: %w", err)
	}

	if supplier != nil {
		supplier.Balance = supplier.Balance.Add(amount)
		supplier.LastUpdatedAt = now
		if err := s.partyRepo.UpdateParty(ctx, *supplier); err != nil {
			return nil, fmt.Errorf("failed to update supplier balance: %w", err)
		}
	}
	return product, nil
}

// RecordSettlement settles part of a third party's balance: a collection
// from a client or a payment to a supplier.
func (s *salesService) RecordSettlement(ctx context.Context, req dto.SettlementRequest) (*domain.ThirdParty, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, req.PartyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find party %s: %w", req.PartyID, err)
	}
	if req.Amount.GreaterThan(party.Balance) {
		return nil, fmt.Errorf("%w: settlement %s exceeds open balance %s of %s",
			apperrors.ErrValidation, req.Amount.String(), party.Balance.String(), party.Name)
	}

	var lines []dto.JournalLineInput
	switch party.Role {
	case domain.RoleClient:
		description := fmt.Sprintf("collection from %s", party.Name)
		lines = []dto.JournalLineInput{
			{Date: req.Date, Kind: string(domain.KindCollection), AccountCode: domain.AccountCash, AccountName: "Cash on hand", Debit: req.Amount, Description: description},
			{Date: req.Date, Kind: string(domain.KindCollection), AccountCode: domain.AccountReceivables, AccountName: "Client receivables", Credit: req.Amount, Description: description},
		}
	case domain.RoleSupplier:
		description := fmt.Sprintf("payment to %s", party.Name)
		lines = []dto.JournalLineInput{
			{Date: req.Date, Kind: string(domain.KindPayment), AccountCode: domain.AccountPayables, AccountName: "Supplier payables", Debit: req.Amount, Description: description},
			{Date: req.Date, Kind: string(domain.KindPayment), AccountCode: domain.AccountCash, AccountName: "Cash on hand", Credit: req.Amount, Description: description},
		}
	default:
		return nil, fmt.Errorf("%w: unknown role %s", ErrPartyRoleMismatch, party.Role)
	}

	if _, err := s.journalSvc.Record(ctx, dto.RecordTransactionRequest{Lines: lines}); err != nil {
		return nil, fmt.Errorf("failed to record settlement journal lines: %w", err)
	}

	party.Balance = party.Balance.Sub(req.Amount)
	party.LastUpdatedAt = time.Now().UTC()
	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		return nil, fmt.Errorf("failed to update party balance: %w", err)
	}
	return party, nil
}

// CreateProduct adds a stocked good.
func (s *salesService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	now := time.Now().UTC()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		Name:        req.Name,
		Quantity:    req.Quantity,
		UnitCost:    req.UnitCost,
		UnitPrice:   req.UnitPrice,
		Taxable:     req.Taxable,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return &product, nil
}

// ListProducts returns every stocked good.
func (s *salesService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx)
}

// ListSales returns the sales of a period.
func (s *salesService) ListSales(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	return s.saleRepo.ListSales(ctx, from, to)
}

// CreateParty adds a client or supplier with a zero opening balance.
func (s *salesService) CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.ThirdParty, error) {
	now := time.Now().UTC()
	party := domain.ThirdParty{
		PartyID:     uuid.NewString(),
		Name:        req.Name,
		Role:        domain.PartyRole(req.Role),
		Phone:       req.Phone,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		return nil, fmt.Errorf("failed to save party: %w", err)
	}
	return &party, nil
}

// ListParties returns parties, optionally filtered by role.
func (s *salesService) ListParties(ctx context.Context, role domain.PartyRole) ([]domain.ThirdParty, error) {
	return s.partyRepo.ListParties(ctx, role)
}
