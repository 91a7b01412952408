package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждой повторной попыткой с ошибкой и паузой до нее.
type NotifyFunc func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// 0 - ограничение только по MaxElapsedTime
	MaxRetries uint64

	// nil - ретраятся все ошибки
	ShouldRetry ShouldRetryFunc

	Notify NotifyFunc
}

// Startup профиль для ожидания зависимостей при старте: Postgres, Kafka, Telegram.
func Startup(shouldRetry ShouldRetryFunc) Config {
	return Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
		ShouldRetry:     shouldRetry,
	}
}
