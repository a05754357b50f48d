package ports

import (
	"context"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/google/uuid"
)

// UserUseCase — прикладные операции над пользователями (контракт для транспорта).
type UserUseCase interface {
	// CreateUser — создать пользователя; id генерируется, если не задан.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// UserByID — (nil, nil), если пользователя нет.
	UserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// ActiveUsers — все пользователи в статусе ACTIVE.
	ActiveUsers(ctx context.Context) ([]*domain.User, error)

	// ChangeStatus — сменить статус; (nil, nil), если пользователя нет.
	ChangeStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.User, error)

	// DeleteUser — true, если запись существовала и удалена.
	DeleteUser(ctx context.Context, id uuid.UUID) (bool, error)
}
