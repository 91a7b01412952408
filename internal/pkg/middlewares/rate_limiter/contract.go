package rate_limiter

import "orderbot/pkg/logger"

// Limiter общий для всего сервера лимитер, например token_bucket.TokenBucket.
type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
