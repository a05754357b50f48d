package ports

import (
	"context"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/google/uuid"
)

// ProductRepository — авторитетное хранилище товаров.
type ProductRepository interface {
	// Save — идемпотентный upsert; возвращает сохранённую запись.
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)

	// FindByID — (nil, nil), если записи нет.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// FindByCategory — товары категории.
	FindByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error)

	// FindActive — активные товары.
	FindActive(ctx context.Context) ([]*domain.Product, error)

	// DeleteByID — удаление по id; отсутствие строки — не ошибка.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}
