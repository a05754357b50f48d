package ports

import (
	"context"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/google/uuid"
)

// CustomerProvider — внешний сервис клиентов.
// Сетевой и ненадёжный: отсутствие ответа — штатный исход, а не ошибка.
// Реализация обязана ограничивать вызовы клиентским таймаутом.
type CustomerProvider interface {
	// CustomerByID — снимок клиента; (nil, nil) если клиент не найден
	// или внешний сервис недоступен.
	CustomerByID(ctx context.Context, customerID uuid.UUID) (*domain.ExternalCustomer, error)

	// RiskLevelByID — уровень риска с выделенного эндпоинта;
	// ("", false, nil) если данных нет.
	RiskLevelByID(ctx context.Context, customerID uuid.UUID) (domain.RiskLevel, bool, error)
}
