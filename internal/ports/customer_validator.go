package ports

import (
	"context"

	"github.com/Gunvolt24/riskgate/internal/domain"
)

// CustomerValidator — проверка корректности снимка клиента
// перед обновлением кэша (поток событий, CLI).
type CustomerValidator interface {
	Validate(ctx context.Context, customer *domain.ExternalCustomer) error
}
