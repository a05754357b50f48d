package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category — закрытый перечень категорий товара.
type Category string

const (
	CategoryElectronics Category = "ELECTRONICS"
	CategoryClothing    Category = "CLOTHING"
	CategoryBooks       Category = "BOOKS"
	CategorySports      Category = "SPORTS"
	CategoryHome        Category = "HOME"
	CategoryOther       Category = "OTHER"
)

// ParseCategory — разбирает строку категории (без учёта регистра).
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryElectronics:
		return CategoryElectronics, nil
	case CategoryClothing:
		return CategoryClothing, nil
	case CategoryBooks:
		return CategoryBooks, nil
	case CategorySports:
		return CategorySports, nil
	case CategoryHome:
		return CategoryHome, nil
	case CategoryOther:
		return CategoryOther, nil
	default:
		return "", fmt.Errorf("unknown product category: %q", s)
	}
}

// Product — товар каталога.
// Поле Active пересчитывается как stock > 0 при обновлении остатка
// (см. ProductService.UpdateStock); при создании берётся как есть.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	Stock       int       `json:"stock"`
	SKU         string    `json:"sku,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	Weight      float64   `json:"weight,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Available — доступен ли товар к продаже (активен и есть остаток).
func (p *Product) Available() bool { return p.Active && p.Stock > 0 }

// DiscountedPrice — цена со скидкой; rate задаётся долей (0.10 = 10%).
func (p *Product) DiscountedPrice(rate float64) float64 {
	if rate <= 0 {
		return p.Price
	}
	return p.Price - p.Price*rate
}
