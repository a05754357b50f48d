package ports

import "context"

// MessageConsumer — потребитель потока событий (снимки клиентов).
type MessageConsumer interface {
	// Run — основной цикл; блокирует до отмены контекста или фатальной ошибки.
	Run(ctx context.Context) error

	// Close — освобождение ресурсов; повторный вызов безопасен.
	Close() error
}
