package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RiskLevel — класс риска клиента, присваивается внешней системой.
// Упорядочен по возрастанию серьёзности через Priority (1..5).
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
	RiskBlocked  RiskLevel = "BLOCKED"
)

// ParseRiskLevel — разбирает строку уровня риска (без учёта регистра).
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch RiskLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case RiskLow:
		return RiskLow, nil
	case RiskMedium:
		return RiskMedium, nil
	case RiskHigh:
		return RiskHigh, nil
	case RiskCritical:
		return RiskCritical, nil
	case RiskBlocked:
		return RiskBlocked, nil
	default:
		return "", fmt.Errorf("unknown risk level: %q", s)
	}
}

// Priority — числовой приоритет уровня (1 = минимальный риск).
func (r RiskLevel) Priority() int {
	switch r {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	case RiskCritical:
		return 4
	case RiskBlocked:
		return 5
	default:
		return 0
	}
}

// Valid — известен ли уровень.
func (r RiskLevel) Valid() bool { return r.Priority() != 0 }

// Description — человекочитаемое описание уровня.
func (r RiskLevel) Description() string {
	switch r {
	case RiskLow:
		return "low risk"
	case RiskMedium:
		return "medium risk"
	case RiskHigh:
		return "high risk"
	case RiskCritical:
		return "critical risk"
	case RiskBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// recentActivityWindow — окно «недавней активности» клиента.
const recentActivityWindow = 30 * 24 * time.Hour

// ExternalCustomer — снимок клиента из внешней системы.
// Сущность принадлежит внешнему сервису и здесь только кэшируется:
// локальных переходов состояния нет, любая запись — новый снимок.
type ExternalCustomer struct {
	ID          uuid.UUID `json:"customer_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Active      bool      `json:"active"`
	Risk        RiskLevel `json:"risk_level"`
	ValidatedAt time.Time `json:"validated_at"`
}

// CanPerformOperations — базовое решение авторизации:
// клиент активен и риск в {LOW, MEDIUM}.
func (c *ExternalCustomer) CanPerformOperations() bool {
	return c.Active && (c.Risk == RiskLow || c.Risk == RiskMedium)
}

// HasCompleteContactInfo — заполнены ли email и телефон.
func (c *ExternalCustomer) HasCompleteContactInfo() bool {
	return strings.TrimSpace(c.Email) != "" && strings.TrimSpace(c.PhoneNumber) != ""
}

// HasRecentActivity — валидировался ли снимок за последние 30 дней.
func (c *ExternalCustomer) HasRecentActivity() bool {
	return !c.ValidatedAt.IsZero() && c.ValidatedAt.After(time.Now().Add(-recentActivityWindow))
}
