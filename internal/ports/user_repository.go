package ports

import (
	"context"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/google/uuid"
)

// UserRepository — авторитетное хранилище пользователей.
type UserRepository interface {
	// Save — идемпотентный upsert; возвращает сохранённую запись.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByID — (nil, nil), если записи нет.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// FindByStatus — пользователи с заданным статусом.
	FindByStatus(ctx context.Context, status domain.UserStatus) ([]*domain.User, error)

	// DeleteByID — удаление по id; отсутствие строки — не ошибка.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
