package aside_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/riskgate/internal/cache/aside"
	"github.com/Gunvolt24/riskgate/internal/ports/mocks"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type payload struct {
	Name string `json:"name"`
}

const key = "customer:test"

func TestFetch_CacheHit_SkipsFallback(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockCacheStore(ctrl)
	raw, _ := json.Marshal(payload{Name: "cached"})
	store.EXPECT().Get(gomock.Any(), key).Return(raw, true, nil)

	got, err := aside.Fetch(context.Background(), store, noopLogger{}, key, time.Minute,
		func(context.Context) (*payload, error) {
			t.Fatalf("fallback must not be invoked on cache hit")
			return nil, nil
		})
	if err != nil || got == nil || got.Name != "cached" {
		t.Fatalf("expected cached value, got=%+v err=%v", got, err)
	}
}

func TestFetch_Miss_FetchesAndPopulates(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockCacheStore(ctrl)
	want := payload{Name: "fresh"}
	raw, _ := json.Marshal(want)

	gomock.InOrder(
		store.EXPECT().Get(gomock.Any(), key).Return(nil, false, nil),
		store.EXPECT().Put(gomock.Any(), key, raw, time.Minute).Return(nil),
	)

	got, err := aside.Fetch(context.Background(), store, noopLogger{}, key, time.Minute,
		func(context.Context) (*payload, error) { return &want, nil })
	if err != nil || got == nil || got.Name != "fresh" {
		t.Fatalf("expected fetched value, got=%+v err=%v", got, err)
	}
}

func TestFetch_MissAndAbsent_NoNegativeCaching(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockCacheStore(ctrl)
	store.EXPECT().Get(gomock.Any(), key).Return(nil, false, nil)
	store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := aside.Fetch(context.Background(), store, noopLogger{}, key, time.Minute,
		func(context.Context) (*payload, error) { return nil, nil })
	if err != nil || got != nil {
		t.Fatalf("expected clean not-found, got=%+v err=%v", got, err)
	}
}

func TestFetch_FetchError_Propagates(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockCacheStore(ctrl)
	store.EXPECT().Get(gomock.Any(), key).Return(nil, false, nil)

	wantErr := errors.New("db down")
	_, err := aside.Fetch(context.Background(), store, noopLogger{}, key, time.Minute,
		func(context.Context) (*payload, error) { return nil, wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected propagated fetch error, got %v", err)
	}
}

func TestFetch_CacheUnavailable_DegradesToSource(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockCacheStore(ctrl)
	want := payload{Name: "direct"}

	gomock.InOrder(
		store.EXPECT().Get(gomock.Any(), key).Return(nil, false, errors.New("cache down")),
		// Populate всё равно пробуем — и его ошибка тоже не фатальна.
		store.EXPECT().Put(gomock.Any(), key, gomock.Any(), time.Minute).Return(errors.New("cache down")),
	)

	got, err := aside.Fetch(context.Background(), store, noopLogger{}, key, time.Minute,
		func(context.Context) (*payload, error) { return &want, nil })
	if err != nil || got == nil || got.Name != "direct" {
		t.Fatalf("cache outage must not fail the read, got=%+v err=%v", got, err)
	}
}

func TestFetch_UndecodableValue_TreatedAsMiss(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockCacheStore(ctrl)
	want := payload{Name: "refetched"}
	raw, _ := json.Marshal(want)

	gomock.InOrder(
		store.EXPECT().Get(gomock.Any(), key).Return([]byte("{broken"), true, nil),
		store.EXPECT().Put(gomock.Any(), key, raw, time.Minute).Return(nil),
	)

	got, err := aside.Fetch(context.Background(), store, noopLogger{}, key, time.Minute,
		func(context.Context) (*payload, error) { return &want, nil })
	if err != nil || got == nil || got.Name != "refetched" {
		t.Fatalf("expected refetch on decode failure, got=%+v err=%v", got, err)
	}
}

func TestEvict_ErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockCacheStore(ctrl)
	store.EXPECT().Evict(gomock.Any(), key).Return(errors.New("cache down"))

	// Не должно паниковать и не возвращает ошибку вовсе.
	aside.Evict(context.Background(), store, noopLogger{}, key)
}
