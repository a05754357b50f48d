package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/riskgate/internal/cache/aside"
	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/Gunvolt24/riskgate/internal/ports"
)

var _ ports.CustomerValidationUseCase = (*CustomerValidationService)(nil)

// CustomerValidationService — решения авторизации по снимку внешнего клиента.
// Снимок и уровень риска кэшируются независимыми строками
// (customer:<id> и risk:<id>) со своими TTL; решения не персистятся.
type CustomerValidationService struct {
	provider  ports.CustomerProvider
	cache     ports.CacheStore
	validator ports.CustomerValidator
	log       ports.Logger

	customerTTL time.Duration
	riskTTL     time.Duration
}

// NewCustomerValidationService — DI-конструктор.
func NewCustomerValidationService(
	provider ports.CustomerProvider,
	cache ports.CacheStore,
	validator ports.CustomerValidator,
	log ports.Logger,
	customerTTL, riskTTL time.Duration,
) *CustomerValidationService {
	return &CustomerValidationService{
		provider:    provider,
		cache:       cache,
		validator:   validator,
		log:         log,
		customerTTL: customerTTL,
		riskTTL:     riskTTL,
	}
}

// CustomerInfo — снимок клиента: сначала кэш, при промахе — внешний сервис
// с записью в кэш. (nil, nil), если снимка нет (в т.ч. сервис недоступен).
func (s *CustomerValidationService) CustomerInfo(ctx context.Context, customerID uuid.UUID) (*domain.ExternalCustomer, error) {
	return aside.Fetch(ctx, s.cache, s.log, aside.CustomerKey(customerID), s.customerTTL,
		func(ctx context.Context) (*domain.ExternalCustomer, error) {
			return s.provider.CustomerByID(ctx, customerID)
		})
}

// CanOperate — базовое решение: клиент активен и риск в {LOW, MEDIUM}.
// found == false — снимка нет, решение принять нельзя.
func (s *CustomerValidationService) CanOperate(ctx context.Context, customerID uuid.UUID) (bool, bool, error) {
	cust, err := s.CustomerInfo(ctx, customerID)
	if err != nil {
		return false, false, err
	}
	if cust == nil {
		return false, false, nil
	}
	return cust.CanPerformOperations(), true, nil
}

// RiskLevel — уровень риска клиента, независимая кэш-строка risk:<id>.
// Разрешение: кэш → выделенный эндпоинт риска → риск из снимка клиента.
func (s *CustomerValidationService) RiskLevel(ctx context.Context, customerID uuid.UUID) (domain.RiskLevel, bool, error) {
	level, err := aside.Fetch(ctx, s.cache, s.log, aside.RiskKey(customerID), s.riskTTL,
		func(ctx context.Context) (*domain.RiskLevel, error) {
			remote, ok, ferr := s.provider.RiskLevelByID(ctx, customerID)
			if ferr != nil {
				return nil, ferr
			}
			if ok {
				return &remote, nil
			}
			// Эндпоинт риска пуст — падаем обратно на риск из снимка.
			cust, cerr := s.CustomerInfo(ctx, customerID)
			if cerr != nil {
				return nil, cerr
			}
			if cust == nil {
				return nil, nil
			}
			return &cust.Risk, nil
		})
	if err != nil {
		return "", false, err
	}
	if level == nil {
		return "", false, nil
	}
	return *level, true, nil
}

// ComprehensiveValidation — расширенная проверка: клиент активен, контакты
// заполнены, риск не HIGH и не BLOCKED. CRITICAL здесь проходит — в отличие
// от CanOperate; асимметрия зафиксирована бизнесом и сохраняется намеренно.
// Риск разрешается той же цепочкой, что и RiskLevel (выделенный эндпоинт →
// снимок, кэш-строка risk:<id>): при расхождении эндпоинт авторитетнее снимка.
func (s *CustomerValidationService) ComprehensiveValidation(ctx context.Context, customerID uuid.UUID) (bool, bool, error) {
	cust, err := s.CustomerInfo(ctx, customerID)
	if err != nil {
		return false, false, err
	}
	if cust == nil {
		return false, false, nil
	}

	level, found, err := s.RiskLevel(ctx, customerID)
	if err != nil {
		return false, false, err
	}
	if !found {
		level = cust.Risk
	}

	ok := cust.Active &&
		cust.HasCompleteContactInfo() &&
		level != domain.RiskHigh &&
		level != domain.RiskBlocked
	return ok, true, nil
}

// StatusSummary — диагностическая строка по текущему снимку.
func (s *CustomerValidationService) StatusSummary(ctx context.Context, customerID uuid.UUID) (string, bool, error) {
	cust, err := s.CustomerInfo(ctx, customerID)
	if err != nil {
		return "", false, err
	}
	if cust == nil {
		return "", false, nil
	}

	summary := fmt.Sprintf("Customer %s: Active=%v, Risk=%s, CanOperate=%v, RecentActivity=%v",
		cust.ID, cust.Active, cust.Risk, cust.CanPerformOperations(), cust.HasRecentActivity())
	return summary, true, nil
}

// RefreshFromMessage — обновить кэш-строки снимка из события внешней системы.
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> отлавливаем незадокументированные поля;
//  2. доменная валидация (вернёт validate.ErrInvalidCustomer при проблемах);
//  3. обновление строк customer:<id> и risk:<id>.
//
// Снимок никогда не персистится: сущность принадлежит внешней системе.
func (s *CustomerValidationService) RefreshFromMessage(ctx context.Context, raw []byte) error {
	// Строгое декодирование: запрещаем неизвестные поля.
	var cust domain.ExternalCustomer
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cust); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", ErrBadMessage, err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", ErrBadMessage)
	}

	if err := s.validator.Validate(ctx, &cust); err != nil {
		s.log.Warnf(ctx, "validation failed customer=%s err=%v", cust.ID, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	aside.Populate(ctx, s.cache, s.log, aside.CustomerKey(cust.ID), &cust, s.customerTTL)
	aside.Populate(ctx, s.cache, s.log, aside.RiskKey(cust.ID), &cust.Risk, s.riskTTL)

	s.log.Infof(ctx, "customer snapshot refreshed id=%s risk=%s", cust.ID, cust.Risk)
	return nil
}
