package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/riskgate/internal/cache/aside"
	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/Gunvolt24/riskgate/internal/ports"
)

var _ ports.UserUseCase = (*UserService)(nil)

// UserService — прикладная логика работы с пользователями (без знаний о транспорте).
// Чтения идут через кэш-прослойку, мутации — сквозь репозиторий с обновлением кэша.
type UserService struct {
	repo  ports.UserRepository // прямой доступ к хранилищу
	cache ports.CacheStore     // байтовый кэш, не авторитетен
	log   ports.Logger
	ttl   time.Duration // срок жизни строки user:<id>
}

// NewUserService — DI-конструктор.
func NewUserService(repo ports.UserRepository, cache ports.CacheStore, log ports.Logger, ttl time.Duration) *UserService {
	return &UserService{repo: repo, cache: cache, log: log, ttl: ttl}
}

// CreateUser — создать пользователя.
// Уникальность username/email проверяется до записи; дубликат — ошибка
// ErrUsernameExists/ErrEmailExists. Пустой id генерируем, пустой статус — ACTIVE.
func (s *UserService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, fmt.Errorf("user is required")
	}

	if taken, err := s.repo.ExistsByUsername(ctx, user.Username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if taken {
		return nil, ErrUsernameExists
	}
	if taken, err := s.repo.ExistsByEmail(ctx, user.Email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if taken {
		return nil, ErrEmailExists
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Status == "" {
		user.Status = domain.UserActive
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		s.log.Errorf(ctx, "repo.Save failed user=%s err=%v", user.ID, err)
		return nil, fmt.Errorf("save user: %w", err)
	}

	aside.Populate(ctx, s.cache, s.log, aside.UserKey(saved.ID), saved, s.ttl)
	s.log.Infof(ctx, "user created id=%s username=%s", saved.ID, saved.Username)
	return saved, nil
}

// UserByID — пользователь по id: сначала кэш, при промахе — БД с записью в кэш.
// Возвращает (nil, nil), если записи нет.
func (s *UserService) UserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return aside.Fetch(ctx, s.cache, s.log, aside.UserKey(id), s.ttl,
		func(ctx context.Context) (*domain.User, error) {
			return s.repo.FindByID(ctx, id)
		})
}

// ActiveUsers — списочный запрос, кэш-прослойку не использует.
func (s *UserService) ActiveUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindByStatus(ctx, domain.UserActive)
}

// ChangeStatus — сменить статус пользователя.
// Текущее состояние читается через кэш-прослойку; (nil, nil), если записи нет.
func (s *UserService) ChangeStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.User, error) {
	user, err := s.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	user.Status = status
	user.UpdatedAt = time.Now().UTC()

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		s.log.Errorf(ctx, "repo.Save failed user=%s err=%v", id, err)
		return nil, fmt.Errorf("save user: %w", err)
	}

	aside.Populate(ctx, s.cache, s.log, aside.UserKey(id), saved, s.ttl)
	s.log.Infof(ctx, "user status changed id=%s status=%s", id, status)
	return saved, nil
}

// DeleteUser — удалить пользователя.
// Существование проверяется по репозиторию (не по кэшу): иначе истёкшая
// строка дала бы ложное «не найдено». Отсутствие записи — (false, nil)
// без побочных эффектов.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) (bool, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("find user: %w", err)
	}
	if existing == nil {
		return false, nil
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.log.Errorf(ctx, "repo.DeleteByID failed user=%s err=%v", id, err)
		return false, fmt.Errorf("delete user: %w", err)
	}

	aside.Evict(ctx, s.cache, s.log, aside.UserKey(id))
	s.log.Infof(ctx, "user deleted id=%s", id)
	return true, nil
}
