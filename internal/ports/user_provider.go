package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// UserProvider — источник id текущего пользователя.
type UserProvider interface {
	CurrentUserID(ctx context.Context) (string, bool)
}

// TokenVerifier — проверка токена входа; возвращает личность пользователя.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

// SessionStore — изменяемая сессия процесса: вход и выход пользователя.
type SessionStore interface {
	UserProvider
	Set(uid string) (prev string)
	Clear()
}
