package validate

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/Gunvolt24/riskgate/internal/ports"
)

// Проверка, что CustomerValidator удовлетворяет интерфейсу CustomerValidator.
var _ ports.CustomerValidator = (*CustomerValidator)(nil)

// ErrInvalidCustomer — базовая (sentinel error) ошибка валидации.
var ErrInvalidCustomer = errors.New("customer validation failed")

// CustomerValidator — структура для валидации снимка клиента.
type CustomerValidator struct{}

// NewCustomerValidator — конструктор CustomerValidator.
// Возвращает ErrInvalidCustomer (с обёрнутой причиной) при любой проблеме.
func NewCustomerValidator() *CustomerValidator { return &CustomerValidator{} }

// Validate — проверяет корректность полей снимка.
func (v *CustomerValidator) Validate(_ context.Context, customer *domain.ExternalCustomer) error {
	if customer == nil {
		return fmt.Errorf("%w: снимок не может быть nil", ErrInvalidCustomer)
	}
	if customer.ID == uuid.Nil {
		return fmt.Errorf("%w: customer_id обязателен", ErrInvalidCustomer)
	}
	if customer.Name == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidCustomer)
	}
	if !customer.Risk.Valid() {
		return fmt.Errorf("%w: risk_level %q неизвестен", ErrInvalidCustomer, customer.Risk)
	}
	// Email опционален, но если задан — должен быть адресом.
	if customer.Email != "" {
		if _, err := mail.ParseAddress(customer.Email); err != nil {
			return fmt.Errorf("%w: email некорректен", ErrInvalidCustomer)
		}
	}
	if customer.ValidatedAt.IsZero() || customer.ValidatedAt.Before(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) {
		return fmt.Errorf("%w: validated_at некорректен", ErrInvalidCustomer)
	}
	return nil
}
