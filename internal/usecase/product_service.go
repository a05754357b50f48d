package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/riskgate/internal/cache/aside"
	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/Gunvolt24/riskgate/internal/ports"
)

var _ ports.ProductUseCase = (*ProductService)(nil)

// ProductService — прикладная логика работы с товарами.
type ProductService struct {
	repo  ports.ProductRepository
	cache ports.CacheStore
	log   ports.Logger
	ttl   time.Duration // срок жизни строки product:<id>
}

// NewProductService — DI-конструктор.
func NewProductService(repo ports.ProductRepository, cache ports.CacheStore, log ports.Logger, ttl time.Duration) *ProductService {
	return &ProductService{repo: repo, cache: cache, log: log, ttl: ttl}
}

// CreateProduct — создать товар.
// Непустой SKU обязан быть уникальным (дубликат — ErrSKUExists, проверка до
// записи). Пустой id генерируем; active при создании берётся как есть.
func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, fmt.Errorf("product is required")
	}
	if product.Price < 0 {
		return nil, fmt.Errorf("price must be non-negative, got %v", product.Price)
	}

	if product.SKU != "" {
		if taken, err := s.repo.ExistsBySKU(ctx, product.SKU); err != nil {
			return nil, fmt.Errorf("check sku: %w", err)
		} else if taken {
			return nil, ErrSKUExists
		}
	}

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		s.log.Errorf(ctx, "repo.Save failed product=%s err=%v", product.ID, err)
		return nil, fmt.Errorf("save product: %w", err)
	}

	aside.Populate(ctx, s.cache, s.log, aside.ProductKey(saved.ID), saved, s.ttl)
	s.log.Infof(ctx, "product created id=%s sku=%s", saved.ID, saved.SKU)
	return saved, nil
}

// ProductByID — товар по id: сначала кэш, при промахе — БД с записью в кэш.
// Возвращает (nil, nil), если записи нет.
func (s *ProductService) ProductByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return aside.Fetch(ctx, s.cache, s.log, aside.ProductKey(id), s.ttl,
		func(ctx context.Context) (*domain.Product, error) {
			return s.repo.FindByID(ctx, id)
		})
}

// ProductsByCategory — списочный запрос, кэш-прослойку не использует.
func (s *ProductService) ProductsByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error) {
	return s.repo.FindByCategory(ctx, category)
}

// ActiveProducts — активные товары.
func (s *ProductService) ActiveProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindActive(ctx)
}

// UpdateStock — задать остаток товара.
// active всегда пересчитывается как stock > 0: обнуление остатка
// деактивирует товар, пополнение — реактивирует. (nil, nil), если товара нет.
func (s *ProductService) UpdateStock(ctx context.Context, id uuid.UUID, stock int) (*domain.Product, error) {
	if stock < 0 {
		return nil, fmt.Errorf("stock must be non-negative, got %d", stock)
	}

	product, err := s.ProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	product.Stock = stock
	product.Active = stock > 0
	product.UpdatedAt = time.Now().UTC()

	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		s.log.Errorf(ctx, "repo.Save failed product=%s err=%v", id, err)
		return nil, fmt.Errorf("save product: %w", err)
	}

	aside.Populate(ctx, s.cache, s.log, aside.ProductKey(id), saved, s.ttl)
	s.log.Infof(ctx, "product stock updated id=%s stock=%d active=%v", id, stock, saved.Active)
	return saved, nil
}

// DeleteProduct — удалить товар.
// Существование проверяется по репозиторию, не по кэшу. Отсутствие записи —
// (false, nil) без побочных эффектов.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("find product: %w", err)
	}
	if existing == nil {
		return false, nil
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.log.Errorf(ctx, "repo.DeleteByID failed product=%s err=%v", id, err)
		return false, fmt.Errorf("delete product: %w", err)
	}

	aside.Evict(ctx, s.cache, s.log, aside.ProductKey(id))
	s.log.Infof(ctx, "product deleted id=%s", id)
	return true, nil
}
