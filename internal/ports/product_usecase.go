package ports

import (
	"context"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/google/uuid"
)

// ProductUseCase — прикладные операции над товарами (контракт для транспорта).
type ProductUseCase interface {
	// CreateProduct — создать товар; id генерируется, если не задан.
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)

	// ProductByID — (nil, nil), если товара нет.
	ProductByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// ProductsByCategory — товары категории.
	ProductsByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error)

	// ActiveProducts — активные товары.
	ActiveProducts(ctx context.Context) ([]*domain.Product, error)

	// UpdateStock — задать остаток; active пересчитывается как stock > 0.
	// (nil, nil), если товара нет.
	UpdateStock(ctx context.Context, id uuid.UUID, stock int) (*domain.Product, error)

	// DeleteProduct — true, если запись существовала и удалена.
	DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error)
}
