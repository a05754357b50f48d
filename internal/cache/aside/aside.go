// Пакет aside — обобщённый cache-aside доступ к сущностям.
// Кэш всегда опрашивается первым; источник (репозиторий или внешний сервис)
// вызывается только на промахе. Кэш не авторитетен: любая его ошибка
// деградирует до прямого чтения источника и никогда не роняет операцию.
package aside

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gunvolt24/riskgate/internal/ports"
	"github.com/Gunvolt24/riskgate/pkg/metrics"
)

// Fetch — получить значение по ключу: сначала из кэша, при промахе — через
// fetch с записью результата в кэш. Гарантии:
//   - на попадании fetch не вызывается;
//   - «не найдено» (nil от fetch) не кэшируется, чтобы последующее создание
//     сущности было видно сразу;
//   - нечитаемое значение в кэше трактуется как промах с повторным fetch;
//   - ровно одно чтение кэша и не более одной записи за вызов.
func Fetch[T any](
	ctx context.Context,
	store ports.CacheStore,
	log ports.Logger,
	key string,
	ttl time.Duration,
	fetch func(context.Context) (*T, error),
) (*T, error) {
	raw, found, err := store.Get(ctx, key)
	switch {
	case err != nil:
		// Кэш недоступен — идём напрямую в источник.
		metrics.CacheOps.WithLabelValues("degraded").Inc()
		log.Warnf(ctx, "cache get failed key=%s err=%v (falling back to source)", key, err)
	case found:
		var value T
		if decErr := json.Unmarshal(raw, &value); decErr != nil {
			metrics.CacheOps.WithLabelValues("decode_error").Inc()
			log.Warnf(ctx, "cache decode failed key=%s err=%v (treating as miss)", key, decErr)
			break
		}
		metrics.CacheOps.WithLabelValues("hit").Inc()
		log.Infof(ctx, "cache hit key=%s", key)
		return &value, nil
	default:
		metrics.CacheOps.WithLabelValues("miss").Inc()
		log.Infof(ctx, "cache miss key=%s", key)
	}

	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	Populate(ctx, store, log, key, value, ttl)
	return value, nil
}

// Populate — положить значение в кэш. Ошибка записи не фатальна:
// логируем и продолжаем, следующая запись или чтение источника её скроют.
func Populate[T any](ctx context.Context, store ports.CacheStore, log ports.Logger, key string, value *T, ttl time.Duration) {
	if value == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Warnf(ctx, "cache encode failed key=%s err=%v", key, err)
		return
	}
	if err := store.Put(ctx, key, raw, ttl); err != nil {
		metrics.CacheOps.WithLabelValues("degraded").Inc()
		log.Warnf(ctx, "cache put failed key=%s err=%v", key, err)
	}
}

// Evict — удалить ключ. Ошибка удаления не фатальна: запись сама
// истечёт по TTL.
func Evict(ctx context.Context, store ports.CacheStore, log ports.Logger, key string) {
	if err := store.Evict(ctx, key); err != nil {
		metrics.CacheOps.WithLabelValues("degraded").Inc()
		log.Warnf(ctx, "cache evict failed key=%s err=%v", key, err)
	}
}
