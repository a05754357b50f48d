package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserStatus — статус жизненного цикла пользователя.
type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
	UserInactive  UserStatus = "INACTIVE"
)

// ParseUserStatus — разбирает строку статуса (без учёта регистра).
// Неизвестное значение — ошибка валидации, а не молчаливый дефолт.
func ParseUserStatus(s string) (UserStatus, error) {
	switch UserStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case UserActive:
		return UserActive, nil
	case UserSuspended:
		return UserSuspended, nil
	case UserInactive:
		return UserInactive, nil
	default:
		return "", fmt.Errorf("unknown user status: %q", s)
	}
}

// User — учётная запись пользователя.
// Уникальность username/email проверяется на уровне репозитория до записи.
type User struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name,omitempty"`
	LastName    string     `json:"last_name,omitempty"`
	Status      UserStatus `json:"status"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Department  string     `json:"department,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// FullName — имя и фамилия; при их отсутствии возвращает username.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// IsActive — активен ли пользователь.
func (u *User) IsActive() bool { return u.Status == UserActive }
