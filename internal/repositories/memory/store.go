package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
)

// Store is an in-memory repository backend. One mutex guards all collections,
// which also gives SaveTransaction its all-or-nothing batch semantics. It is
// the default backend when no database URL is configured, and it backs the
// service tests.
type Store struct {
	mu sync.RWMutex

	lines      []domain.JournalLine
	accounts   map[string]domain.Account
	operations map[string]domain.Operation
	configs    map[string]domain.ServiceConfig
	parties    map[string]domain.ThirdParty
	products   map[string]domain.Product
	sales      []domain.Sale
	transfers  []domain.Transfer
	assets     []domain.FixedAsset
	settings   *domain.Settings

	nextOpNumber int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts:   make(map[string]domain.Account),
		operations: make(map[string]domain.Operation),
		configs:    make(map[string]domain.ServiceConfig),
		parties:    make(map[string]domain.ThirdParty),
		products:   make(map[string]domain.Product),
	}
}

// NewRepositoryProvider wraps one store as the full repository set.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalRepo:       s,
		AccountRepo:       s,
		OperationRepo:     s,
		ServiceConfigRepo: s,
		PartyRepo:         s,
		ProductRepo:       s,
		SaleRepo:          s,
		TransferRepo:      s,
		FixedAssetRepo:    s,
		SettingsRepo:      s,
	}
}

var (
	_ portsrepo.JournalRepository       = (*Store)(nil)
	_ portsrepo.AccountRepository       = (*Store)(nil)
	_ portsrepo.OperationRepository     = (*Store)(nil)
	_ portsrepo.ServiceConfigRepository = (*Store)(nil)
	_ portsrepo.PartyRepository         = (*Store)(nil)
	_ portsrepo.ProductRepository       = (*Store)(nil)
	_ portsrepo.SaleRepository          = (*Store)(nil)
	_ portsrepo.TransferRepository      = (*Store)(nil)
	_ portsrepo.FixedAssetRepository    = (*Store)(nil)
	_ portsrepo.SettingsRepository      = (*Store)(nil)
)

// SaveTransaction appends the batch under the write lock so readers never see
// a partial transaction.
func (s *Store) SaveTransaction(ctx context.Context, lines []domain.JournalLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, lines...)
	return nil
}

// FindLinesInRange returns lines with from <= date <= to passing the filter.
func (s *Store) FindLinesInRange(ctx context.Context, from, to time.Time, filter domain.LineFilter) ([]domain.JournalLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.JournalLine
	for _, l := range s.lines {
		if l.Date.Before(from) || l.Date.After(to) {
			continue
		}
		if !filter.Matches(l) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// FindLinesByTransactionID returns all lines of one transaction.
func (s *Store) FindLinesByTransactionID(ctx context.Context, txnID string) ([]domain.JournalLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.JournalLine
	for _, l := range s.lines {
		if l.TransactionID == txnID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[account.Code]; exists {
		return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, account.Code)
	}
	s.accounts[account.Code] = account
	return nil
}

func (s *Store) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[code]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &account, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accounts := make([]domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts, nil
}

func (s *Store) UpdateAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.Code]; !ok {
		return apperrors.ErrNotFound
	}
	s.accounts[account.Code] = account
	return nil
}

func (s *Store) SaveOperation(ctx context.Context, op domain.Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operations[op.OperationID] = op
	return nil
}

func (s *Store) FindOperationByID(ctx context.Context, operationID string) (*domain.Operation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	op, ok := s.operations[operationID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &op, nil
}

func (s *Store) FindLatestOperation(ctx context.Context, serviceID string) (*domain.Operation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *domain.Operation
	for _, op := range s.operations {
		if op.ServiceID != serviceID {
			continue
		}
		if latest == nil || op.Number > latest.Number {
			op := op
			latest = &op
		}
	}
	if latest == nil {
		return nil, apperrors.ErrNotFound
	}
	return latest, nil
}

func (s *Store) ListOperations(ctx context.Context, serviceID string, from, to time.Time) ([]domain.Operation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ops []domain.Operation
	for _, op := range s.operations {
		if serviceID != "" && op.ServiceID != serviceID {
			continue
		}
		if op.Date.Before(from) || op.Date.After(to) {
			continue
		}
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Number < ops[j].Number })
	return ops, nil
}

func (s *Store) NextOperationNumber(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextOpNumber++
	return s.nextOpNumber, nil
}

func (s *Store) UpsertServiceConfig(ctx context.Context, cfg domain.ServiceConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[cfg.ServiceID] = cfg
	return nil
}

func (s *Store) FindServiceConfig(ctx context.Context, serviceID string) (*domain.ServiceConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[serviceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &cfg, nil
}

func (s *Store) ListServiceConfigs(ctx context.Context) ([]domain.ServiceConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	configs := make([]domain.ServiceConfig, 0, len(s.configs))
	for _, cfg := range s.configs {
		configs = append(configs, cfg)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].ServiceID < configs[j].ServiceID })
	return configs, nil
}

func (s *Store) SaveParty(ctx context.Context, party domain.ThirdParty) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties[party.PartyID] = party
	return nil
}

func (s *Store) FindPartyByID(ctx context.Context, partyID string) (*domain.ThirdParty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	party, ok := s.parties[partyID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &party, nil
}

func (s *Store) ListParties(ctx context.Context, role domain.PartyRole) ([]domain.ThirdParty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var parties []domain.ThirdParty
	for _, p := range s.parties {
		if role != "" && p.Role != role {
			continue
		}
		parties = append(parties, p)
	}
	sort.Slice(parties, func(i, j int) bool { return parties[i].Name < parties[j].Name })
	return parties, nil
}

func (s *Store) UpdateParty(ctx context.Context, party domain.ThirdParty) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parties[party.PartyID]; !ok {
		return apperrors.ErrNotFound
	}
	s.parties[party.PartyID] = party
	return nil
}

func (s *Store) DeleteParty(ctx context.Context, partyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parties[partyID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.parties, partyID)
	return nil
}

func (s *Store) SaveProduct(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ProductID] = product
	return nil
}

func (s *Store) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[productID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &product, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (s *Store) UpdateProduct(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ProductID]; !ok {
		return apperrors.ErrNotFound
	}
	s.products[product.ProductID] = product
	return nil
}

func (s *Store) SaveSale(ctx context.Context, sale domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append(s.sales, sale)
	return nil
}

func (s *Store) ListSales(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sales []domain.Sale
	for _, sale := range s.sales {
		if sale.Date.Before(from) || sale.Date.After(to) {
			continue
		}
		sales = append(sales, sale)
	}
	return sales, nil
}

func (s *Store) SaveTransfer(ctx context.Context, transfer domain.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transfers = append(s.transfers, transfer)
	return nil
}

func (s *Store) ListTransfers(ctx context.Context, from, to time.Time) ([]domain.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var transfers []domain.Transfer
	for _, t := range s.transfers {
		if t.Date.Before(from) || t.Date.After(to) {
			continue
		}
		transfers = append(transfers, t)
	}
	return transfers, nil
}

func (s *Store) SaveFixedAsset(ctx context.Context, asset domain.FixedAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = append(s.assets, asset)
	return nil
}

func (s *Store) ListFixedAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assets := make([]domain.FixedAsset, len(s.assets))
	copy(assets, s.assets)
	return assets, nil
}

func (s *Store) GetSettings(ctx context.Context) (*domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, apperrors.ErrNotFound
	}
	settings := *s.settings
	return &settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}
