package ports

import "context"

// Logger — контракт логгера кэшей, сервисов и транспорта.
// Кэши не возвращают ошибок наружу: сбои хранилища видны только здесь.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
