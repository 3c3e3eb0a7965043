package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Oligens/scarwrite.haiti-sub000/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub000/internal/core/domain"
	portsrepo "github.com/Oligens/scarwrite.haiti-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	pool *pgxpool.Pool
}

// newPgxProductRepository creates a new repository for stocked goods.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{pool: pool}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

const productColumns = `product_id, name, quantity, unit_cost, unit_price, taxable, created_at, last_updated_at`

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Quantity,
		product.UnitCost,
		product.UnitPrice,
		product.Taxable,
		product.CreatedAt,
		product.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves one product.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1;
	`
	var p domain.Product
	err := r.pool.QueryRow(ctx, query, productID).Scan(
		&p.ProductID,
		&p.Name,
		&p.Quantity,
		&p.UnitCost,
		&p.UnitPrice,
		&p.Taxable,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return &p, nil
}

// ListProducts returns all products ordered by name.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY name ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ProductID,
			&p.Name,
			&p.Quantity,
			&p.UnitCost,
			&p.UnitPrice,
			&p.Taxable,
			&p.CreatedAt,
			&p.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

// UpdateProduct updates stock level and pricing of a product.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, quantity = $3, unit_cost = $4, unit_price = $5, taxable = $6, last_updated_at = $7
		WHERE product_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Quantity,
		product.UnitCost,
		product.UnitPrice,
		product.Taxable,
		product.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxSaleRepository struct {
	pool *pgxpool.Pool
}

// newPgxSaleRepository creates a new repository for sale source records.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{pool: pool}
}

var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, product_id, quantity, unit_price, total, tax, cost_basis, on_credit, party_id, date, transaction_id, created_at, last_updated_at`

// SaveSale inserts a sale record.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		sale.SaleID,
		sale.ProductID,
		sale.Quantity,
		sale.UnitPrice,
		sale.Total,
		sale.Tax,
		sale.CostBasis,
		sale.OnCredit,
		sale.PartyID,
		sale.Date,
		sale.TransactionID,
		sale.CreatedAt,
		sale.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sale %s: %w", sale.SaleID, err)
	}
	return nil
}

// ListSales returns sales in the date range, oldest first.
func (r *PgxSaleRepository) ListSales(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC, created_at ASC;
	`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		err := rows.Scan(
			&s.SaleID,
			&s.ProductID,
			&s.Quantity,
			&s.UnitPrice,
			&s.Total,
			&s.Tax,
			&s.CostBasis,
			&s.OnCredit,
			&s.PartyID,
			&s.Date,
			&s.TransactionID,
			&s.CreatedAt,
			&s.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sales: %w", err)
	}
	return sales, nil
}
