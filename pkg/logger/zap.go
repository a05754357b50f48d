package logger

import (
	"context"

	"github.com/Gunvolt24/riskgate/pkg/ctxmeta"
	"go.uber.org/zap"
)

// ZapLogger — обёртка над zap, реализующая ports.Logger.
// В каждую запись добавляется request_id из контекста (если он там есть).
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger — конструктор; isProd переключает dev/prod-пресеты zap.
// Возвращает логгер и функцию сброса буфера.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		base *zap.Logger
		err  error
	)

	if isProd {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	wrapped := &ZapLogger{base: base, sugar: base.Sugar()}
	cleanup := func() error { return wrapped.base.Sync() }
	return wrapped, cleanup, nil
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}

func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}

func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

// with — добавляет request_id из контекста к записи.
func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		return z.sugar.With("request_id", rid)
	}
	return z.sugar
}

func (z *ZapLogger) Base() *zap.Logger { return z.base }
