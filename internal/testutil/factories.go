// Package testutil — общие фабрики и контейнеры для тестов.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/riskgate/internal/domain"
)

// MakeUser — валидный активный пользователь с уникальными username/email.
func MakeUser() *domain.User {
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.User{
		ID:          id,
		Username:    "user-" + id.String()[:8],
		Email:       "user-" + id.String()[:8] + "@example.com",
		FirstName:   "Test",
		LastName:    "User",
		Status:      domain.UserActive,
		PhoneNumber: "+10000000000",
		Department:  "QA",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MakeProduct — валидный активный товар с уникальным SKU.
func MakeProduct() *domain.Product {
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Product{
		ID:          id,
		Name:        "product-" + id.String()[:8],
		Description: "test product",
		Price:       99.90,
		Category:    domain.CategoryElectronics,
		Stock:       10,
		SKU:         "SKU-" + id.String()[:8],
		Brand:       "Acme",
		Weight:      1.25,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MakeCustomer — активный клиент с низким риском и полными контактами.
func MakeCustomer() *domain.ExternalCustomer {
	id := uuid.New()
	return &domain.ExternalCustomer{
		ID:          id,
		Name:        "customer-" + id.String()[:8],
		Email:       "customer-" + id.String()[:8] + "@example.com",
		PhoneNumber: "+20000000000",
		Active:      true,
		Risk:        domain.RiskLow,
		ValidatedAt: time.Now().UTC(),
	}
}
