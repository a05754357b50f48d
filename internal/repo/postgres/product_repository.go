package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/Gunvolt24/riskgate/internal/ports"
)

// Проверка, что ProductRepository удовлетворяет интерфейсу ports.ProductRepository.
var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository — реализация репозитория товаров на Postgres (pgxpool).
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository - конструктор ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `
	id, name, description, price, category, stock, sku,
	brand, weight, image_url, active, created_at, updated_at`

// Save — идемпотентный upsert по id; возвращает запись как её видит БД.
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil || product.ID == uuid.Nil {
		return nil, errors.New("product is empty or id is required")
	}
	if product.Name == "" {
		return nil, errors.New("product name is required")
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (
			id, name, description, price, category, stock, sku,
			brand, weight, image_url, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			category = EXCLUDED.category,
			stock = EXCLUDED.stock,
			sku = EXCLUDED.sku,
			brand = EXCLUDED.brand,
			weight = EXCLUDED.weight,
			image_url = EXCLUDED.image_url,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at
		RETURNING `+productColumns,
		product.ID, product.Name, product.Description, product.Price, product.Category,
		product.Stock, product.SKU, product.Brand, product.Weight, product.ImageURL,
		product.Active, product.CreatedAt, product.UpdatedAt,
	)

	saved, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("upsert product: %w", err)
	}
	return saved, nil
}

// FindByID — товар по id. Если не нашли, возвращает (nil, nil).
func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+productColumns+` FROM products WHERE id = $1`, id)

	product, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return product, nil
}

// FindByCategory — товары категории, стабильный порядок по name.
func (r *ProductRepository) FindByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+productColumns+`
		FROM products WHERE category = $1
		ORDER BY name
	`, category)
	if err != nil {
		return nil, fmt.Errorf("select products by category: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// FindActive — активные товары, стабильный порядок по name.
func (r *ProductRepository) FindActive(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+productColumns+`
		FROM products WHERE active
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("select active products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// DeleteByID — удаление по id; отсутствие строки ошибкой не считаем.
func (r *ProductRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`, sku,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by sku: %w", err)
	}
	return exists, nil
}

// ---- helpers ----

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock, &p.SKU,
		&p.Brand, &p.Weight, &p.ImageURL, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*domain.Product, error) {
	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	return products, nil
}
