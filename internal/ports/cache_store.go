package ports

import (
	"context"
	"time"
)

// CacheStore — байтовое key/value-хранилище с TTL на запись.
// Кэш не авторитетен: любая ошибка здесь не должна ронять операцию,
// вызывающий обязан уметь деградировать до прямого чтения источника.
// Сериализация значений — забота вызывающего, кэш хранит опак-байты.
type CacheStore interface {
	// Get — значение по ключу; (nil, false, nil) при промахе или истечении TTL.
	// Отсутствующий и истёкший ключ неразличимы.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put — сохранить значение с TTL; ttl <= 0 означает «без истечения».
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Evict — удалить ключ. Удаление отсутствующего ключа — не ошибка.
	Evict(ctx context.Context, key string) error
}
