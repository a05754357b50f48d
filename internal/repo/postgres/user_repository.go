package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/Gunvolt24/riskgate/internal/ports"
)

// Проверка, что UserRepository удовлетворяет интерфейсу ports.UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository — реализация репозитория пользователей на Postgres (pgxpool).
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository - конструктор UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository { return &UserRepository{pool: pool} }

const userColumns = `
	id, username, email, first_name, last_name, status,
	phone_number, department, created_at, updated_at, last_login_at`

// Save — идемпотентный upsert по id; возвращает запись как её видит БД.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil || user.ID == uuid.Nil {
		return nil, errors.New("user is empty or id is required")
	}
	if user.Username == "" || user.Email == "" {
		return nil, errors.New("username and email are required")
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (
			id, username, email, first_name, last_name, status,
			phone_number, department, created_at, updated_at, last_login_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			status = EXCLUDED.status,
			phone_number = EXCLUDED.phone_number,
			department = EXCLUDED.department,
			updated_at = EXCLUDED.updated_at,
			last_login_at = EXCLUDED.last_login_at
		RETURNING `+userColumns,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.Status,
		user.PhoneNumber, user.Department, user.CreatedAt, user.UpdatedAt, user.LastLoginAt,
	)

	saved, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return saved, nil
}

// FindByID — пользователь по id. Если не нашли, возвращает (nil, nil).
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+userColumns+` FROM users WHERE id = $1`, id)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}

// FindByStatus — пользователи в заданном статусе, стабильный порядок по username.
func (r *UserRepository) FindByStatus(ctx context.Context, status domain.UserStatus) ([]*domain.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+userColumns+`
		FROM users WHERE status = $1
		ORDER BY username
	`, status)
	if err != nil {
		return nil, fmt.Errorf("select users by status: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// DeleteByID — удаление по id; отсутствие строки ошибкой не считаем.
func (r *UserRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by username: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return exists, nil
}

// ---- helpers ----

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.Status,
		&u.PhoneNumber, &u.Department, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func collectUsers(rows pgx.Rows) ([]*domain.User, error) {
	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("users rows: %w", err)
	}
	return users, nil
}
