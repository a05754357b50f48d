package ports

import (
	"context"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/google/uuid"
)

// CustomerValidationUseCase — решения авторизации по снимку клиента.
// Решения не персистятся: каждое вычисляется от текущего снимка.
// found == false означает «снимка нет» (в т.ч. внешний сервис недоступен).
type CustomerValidationUseCase interface {
	// CustomerInfo — снимок клиента через кэш; (nil, nil), если снимка нет.
	CustomerInfo(ctx context.Context, customerID uuid.UUID) (*domain.ExternalCustomer, error)

	// CanOperate — true, если клиент активен и риск в {LOW, MEDIUM}.
	CanOperate(ctx context.Context, customerID uuid.UUID) (ok bool, found bool, err error)

	// RiskLevel — уровень риска; кэшируется отдельной строкой risk:<id>.
	RiskLevel(ctx context.Context, customerID uuid.UUID) (level domain.RiskLevel, found bool, err error)

	// ComprehensiveValidation — расширенная проверка: активен, контакты
	// заполнены, риск не HIGH и не BLOCKED (CRITICAL проходит — это
	// зафиксированная бизнес-политика, см. CustomerValidationService).
	// Риск берётся той же цепочкой, что и RiskLevel, а не из поля снимка.
	ComprehensiveValidation(ctx context.Context, customerID uuid.UUID) (ok bool, found bool, err error)

	// StatusSummary — диагностическая строка по снимку.
	StatusSummary(ctx context.Context, customerID uuid.UUID) (summary string, found bool, err error)

	// RefreshFromMessage — обновить кэш-строки снимка из события внешней
	// системы (raw JSON); снимок никогда не персистится.
	RefreshFromMessage(ctx context.Context, raw []byte) error
}
