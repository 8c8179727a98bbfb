package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

// minCardDigits — минимальная длина номера карты.
const minCardDigits = 16

var _ ports.CheckoutService = (*CheckoutService)(nil)

// CheckoutService — оформление и просмотр заказов.
type CheckoutService struct {
	store    ports.RemoteStore
	users    ports.UserProvider
	cart     ports.Cart
	wishlist ports.Wishlist
	log      ports.Logger
	shipping decimal.Decimal
	now      func() time.Time
}

// NewCheckoutService — DI-конструктор; shippingCost — фиксированная стоимость доставки.
func NewCheckoutService(
	store ports.RemoteStore,
	users ports.UserProvider,
	cart ports.Cart,
	wishlist ports.Wishlist,
	log ports.Logger,
	shippingCost decimal.Decimal,
) *CheckoutService {
	return &CheckoutService{
		store:    store,
		users:    users,
		cart:     cart,
		wishlist: wishlist,
		log:      log,
		shipping: shippingCost,
		now:      time.Now,
	}
}

// PlaceOrder — заказ из текущей корзины.
// Порядок: валидация → снимок корзины → запись заказа → очистка корзины.
// Неудачная очистка корзины только логируется: заказ уже оформлен.
func (s *CheckoutService) PlaceOrder(ctx context.Context, in domain.CheckoutRequest) (domain.Order, error) {
	uid, ok := s.users.CurrentUserID(ctx)
	if !ok {
		return domain.Order{}, domain.ErrUnauthenticated
	}

	lastFour, err := validatePlaceOrder(&in)
	if err != nil {
		s.log.Warnf(ctx, "place order rejected user=%s err=%v", uid, err)
		return domain.Order{}, err
	}

	cartItems := s.cart.GetCartItems(ctx, false)
	if len(cartItems) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	items := make([]domain.OrderItem, 0, len(cartItems))
	subtotal := decimal.Zero
	for i := range cartItems {
		it := domain.SnapshotOf(&cartItems[i])
		subtotal = subtotal.Add(it.TotalPrice())
		items = append(items, it)
	}

	at := s.now()
	order := domain.Order{
		ID:                 domain.OrderID(uid, at),
		UserID:             uid,
		Items:              items,
		ShippingAddress:    in.Address,
		PaymentMethod:      in.PaymentMethod,
		CardLastFourDigits: lastFour,
		Subtotal:           subtotal,
		ShippingCost:       s.shipping,
		Total:              subtotal.Add(s.shipping),
		OrderDate:          at,
		Status:             domain.OrderPending,
	}

	doc := validate.EncodeOrder(&order)
	if err := s.store.Put(ctx, domain.CollectionOrders, order.ID, doc); err != nil {
		s.log.Errorf(ctx, "save order failed id=%s err=%v", order.ID, err)
		return domain.Order{}, fmt.Errorf("save order: %w", err)
	}

	if !s.cart.ClearCart(ctx) {
		s.log.Warnf(ctx, "order %s placed but cart was not fully cleared", order.ID)
	}

	s.log.Infof(ctx, "order placed id=%s items=%d total=%s", order.ID, len(order.Items), order.Total)
	return order, nil
}

// ListOrders — заказы пользователя, новые первыми. limit <= 0 — без ограничения.
// Повреждённые документы пропускаются.
func (s *CheckoutService) ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	uid, ok := s.users.CurrentUserID(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	orders, err := s.loadOrders(ctx, uid)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(orders, func(a, b domain.Order) int {
		if c := b.OrderDate.Compare(a.OrderDate); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(orders) {
		return []domain.Order{}, nil
	}
	orders = orders[offset:]
	if limit > 0 && limit < len(orders) {
		orders = orders[:limit]
	}
	return orders, nil
}

// Profile — имя, email и фото из Users/{uid}, число заказов (из хранилища),
// строк корзины и товаров в избранном (из кэшей).
// Нет документа профиля или он недоступен — имя по умолчанию, пустые email и фото.
func (s *CheckoutService) Profile(ctx context.Context) (domain.ProfileSummary, error) {
	uid, ok := s.users.CurrentUserID(ctx)
	if !ok {
		return domain.ProfileSummary{}, domain.ErrUnauthenticated
	}

	orders, err := s.loadOrders(ctx, uid)
	if err != nil {
		return domain.ProfileSummary{}, err
	}
	user := s.loadUser(ctx, uid)

	return domain.ProfileSummary{
		UserID:        uid,
		FullName:      user.DisplayName(),
		Email:         user.Email,
		PhotoURL:      user.PhotoURL,
		OrderCount:    len(orders),
		CartItemCount: len(s.cart.GetCartItems(ctx, false)),
		WishlistCount: len(s.wishlist.GetWishlistProductIDs(ctx, false)),
	}, nil
}

func (s *CheckoutService) loadUser(ctx context.Context, uid string) domain.User {
	doc, err := s.store.GetByID(ctx, domain.CollectionUsers, uid)
	if err != nil {
		s.log.Warnf(ctx, "profile lookup failed user=%s err=%v", uid, err)
		return domain.User{UserID: uid}
	}
	if doc == nil {
		return domain.User{UserID: uid}
	}
	u, err := validate.DecodeUser(*doc)
	if err != nil {
		s.log.Warnf(ctx, "skip profile doc: %v", err)
		return domain.User{UserID: uid}
	}
	return u
}

func (s *CheckoutService) loadOrders(ctx context.Context, uid string) ([]domain.Order, error) {
	docs, err := s.store.Query(ctx, domain.CollectionOrders, "userId", uid)
	if err != nil {
		s.log.Errorf(ctx, "query orders failed user=%s err=%v", uid, err)
		return nil, fmt.Errorf("query orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		o, err := validate.DecodeOrder(doc)
		if err != nil {
			s.log.Warnf(ctx, "skip order doc: %v", err)
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// validatePlaceOrder — проверка адреса и оплаты; возвращает последние 4 цифры карты.
func validatePlaceOrder(in *domain.CheckoutRequest) (string, error) {
	var errs []error
	a := &in.Address
	for _, f := range []struct{ name, value string }{
		{"fullName", a.FullName},
		{"addressLine1", a.AddressLine1},
		{"city", a.City},
		{"zipCode", a.ZipCode},
	} {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("address.%s is required", f.name))
		}
	}

	if strings.TrimSpace(in.PaymentMethod) == "" {
		in.PaymentMethod = domain.PaymentCreditCard
	}
	if in.PaymentMethod != domain.PaymentCreditCard {
		errs = append(errs, fmt.Errorf("unsupported payment method %q", in.PaymentMethod))
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, in.CardNumber)
	if len(digits) < minCardDigits || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		errs = append(errs, errors.New("invalid card number"))
	}

	if len(errs) > 0 {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidInput, errors.Join(errs...))
	}
	return digits[len(digits)-4:], nil
}
