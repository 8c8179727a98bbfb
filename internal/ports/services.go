package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// SessionService — вход и выход пользователя.
type SessionService interface {
	SignIn(ctx context.Context, idToken string) (string, error)
	SignOut(ctx context.Context)
	CurrentUserID(ctx context.Context) (string, bool)
}

// CheckoutService — оформление и просмотр заказов.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, req domain.CheckoutRequest) (domain.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error)
	Profile(ctx context.Context) (domain.ProfileSummary, error)
}
