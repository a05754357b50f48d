package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/riskgate/internal/ports"
	"github.com/Gunvolt24/riskgate/pkg/metrics"
)

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// LRUCacheTTL — потокобезопасный in-memory кэш с вытеснением по LRU
// и индивидуальным TTL на запись (задаётся при Put, ttl <= 0 — без срока).
type LRUCacheTTL struct {
	capacity int

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

var _ ports.CacheStore = (*LRUCacheTTL)(nil)

func NewLRUCacheTTL(capacity int) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, key string) ([]byte, bool, error) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		return nil, false, nil
	}
	ent := elem.Value.(*entry)
	if isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false, nil
	}
	// Get не продлевает срок жизни записи — только её позицию в LRU.
	// Попадания/промахи считает уровень cache-aside, здесь только
	// специфичные для хранилища исходы (expired/evicted).
	c.ll.MoveToFront(elem)

	return cloneBytes(ent.value), true, nil
}

func (c *LRUCacheTTL) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry)
		ent.value = cloneBytes(value)
		ent.expiresAt = expiryFrom(now, ttl)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		key:       key,
		value:     cloneBytes(value),
		expiresAt: expiryFrom(now, ttl),
	})
	c.index[key] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

func (c *LRUCacheTTL) Evict(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
	}
	return nil
}

// ------вспомогательные функции------

func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.index, ent.key)
	c.ll.Remove(elem)
}

func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry)
		if isExpired(ent, now) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
			metrics.CacheSize.Set(float64(len(c.index)))
			continue
		}
		return
	}
}

func isExpired(ent *entry, now time.Time) bool {
	if ent.expiresAt.IsZero() {
		return false
	}
	return now.After(ent.expiresAt)
}

func expiryFrom(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
