package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports/mocks"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

type checkoutDeps struct {
	store    *mocks.MockRemoteStore
	users    *mocks.MockUserProvider
	cart     *mocks.MockCart
	wishlist *mocks.MockWishlist
	svc      *usecase.CheckoutService
}

func newCheckoutDeps(t *testing.T) *checkoutDeps {
	ctrl := gomock.NewController(t)
	d := &checkoutDeps{
		store:    mocks.NewMockRemoteStore(ctrl),
		users:    mocks.NewMockUserProvider(ctrl),
		cart:     mocks.NewMockCart(ctrl),
		wishlist: mocks.NewMockWishlist(ctrl),
	}
	d.svc = usecase.NewCheckoutService(d.store, d.users, d.cart, d.wishlist, noopLogger{}, decimal.NewFromInt(10))
	return d
}

func (d *checkoutDeps) signedIn(uid string) {
	d.users.EXPECT().CurrentUserID(gomock.Any()).Return(uid, true).AnyTimes()
}

func validInput() domain.CheckoutRequest {
	return domain.CheckoutRequest{
		Address: domain.Address{
			FullName:     "Jane Doe",
			PhoneNumber:  "+1 555 0100",
			AddressLine1: "1 Main St",
			City:         "Springfield",
			ZipCode:      "12345",
		},
		PaymentMethod: domain.PaymentCreditCard,
		CardNumber:    "4242 4242 4242 4171",
	}
}

func cartLines() []domain.CartItem {
	return []domain.CartItem{
		{ID: "c1", ProductID: "p1", ProductName: "Sneaker", Price: decimal.NewFromInt(50), Quantity: 2, UserID: "u1"},
		{ID: "c2", ProductID: "p2", ProductName: "Hoodie", Price: decimal.NewFromInt(150), Quantity: 1, UserID: "u1"},
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	d := newCheckoutDeps(t)
	d.signedIn("u1")

	var saved domain.Document
	gomock.InOrder(
		d.cart.EXPECT().GetCartItems(gomock.Any(), false).Return(cartLines()),
		d.store.EXPECT().Put(gomock.Any(), domain.CollectionOrders, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, doc domain.Document) error {
				saved = doc
				return nil
			}),
		d.cart.EXPECT().ClearCart(gomock.Any()).Return(true),
	)

	order, err := d.svc.PlaceOrder(context.Background(), validInput())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if !strings.HasPrefix(order.ID, "u1_") || order.UserID != "u1" {
		t.Fatalf("unexpected id/user: %s %s", order.ID, order.UserID)
	}
	if !order.Subtotal.Equal(decimal.NewFromInt(250)) || !order.Total.Equal(decimal.NewFromInt(260)) {
		t.Fatalf("totals: subtotal=%s total=%s", order.Subtotal, order.Total)
	}
	if order.CardLastFourDigits != "4171" {
		t.Fatalf("card last four: got %q", order.CardLastFourDigits)
	}
	if order.Status != domain.OrderPending || len(order.Items) != 2 {
		t.Fatalf("status/items: %s %d", order.Status, len(order.Items))
	}

	decoded, err := validate.DecodeOrder(saved)
	if err != nil {
		t.Fatalf("saved doc must decode: %v", err)
	}
	if decoded.ID != order.ID || !decoded.Total.Equal(decimal.NewFromInt(260)) {
		t.Fatalf("saved doc mismatch: %+v", decoded)
	}
}

func TestPlaceOrder_CartNotClearedStillPlaced(t *testing.T) {
	d := newCheckoutDeps(t)
	d.signedIn("u1")

	d.cart.EXPECT().GetCartItems(gomock.Any(), false).Return(cartLines())
	d.store.EXPECT().Put(gomock.Any(), domain.CollectionOrders, gomock.Any(), gomock.Any()).Return(nil)
	d.cart.EXPECT().ClearCart(gomock.Any()).Return(false)

	if _, err := d.svc.PlaceOrder(context.Background(), validInput()); err != nil {
		t.Fatalf("order must be placed even if cart clearing fails: %v", err)
	}
}

func TestPlaceOrder_SaveFailureKeepsCart(t *testing.T) {
	d := newCheckoutDeps(t)
	d.signedIn("u1")

	boom := errors.New("unavailable")
	d.cart.EXPECT().GetCartItems(gomock.Any(), false).Return(cartLines())
	d.store.EXPECT().Put(gomock.Any(), domain.CollectionOrders, gomock.Any(), gomock.Any()).Return(boom)
	// ClearCart не ожидается

	if _, err := d.svc.PlaceOrder(context.Background(), validInput()); !errors.Is(err, boom) {
		t.Fatalf("want wrapped store error, got %v", err)
	}
}

func TestPlaceOrder_Rejections(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.users.EXPECT().CurrentUserID(gomock.Any()).Return("", false)
		if _, err := d.svc.PlaceOrder(context.Background(), validInput()); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("want ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.signedIn("u1")
		d.cart.EXPECT().GetCartItems(gomock.Any(), false).Return(nil)
		if _, err := d.svc.PlaceOrder(context.Background(), validInput()); !errors.Is(err, domain.ErrEmptyCart) {
			t.Fatalf("want ErrEmptyCart, got %v", err)
		}
	})

	t.Run("missing city and short card", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.signedIn("u1")
		in := validInput()
		in.Address.City = " "
		in.CardNumber = "4242"
		_, err := d.svc.PlaceOrder(context.Background(), in)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("want ErrInvalidInput, got %v", err)
		}
		if !strings.Contains(err.Error(), "city") || !strings.Contains(err.Error(), "card") {
			t.Fatalf("error must name both problems: %v", err)
		}
	})

	t.Run("missing fields listed in form order", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.signedIn("u1")
		in := validInput()
		in.Address = domain.Address{}

		first := ""
		for i := 0; i < 5; i++ {
			_, err := d.svc.PlaceOrder(context.Background(), in)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("want ErrInvalidInput, got %v", err)
			}
			msg := err.Error()
			prev := -1
			for _, field := range []string{"fullName", "addressLine1", "city", "zipCode"} {
				at := strings.Index(msg, "address."+field)
				if at <= prev {
					t.Fatalf("address.%s out of order in %q", field, msg)
				}
				prev = at
			}
			if first == "" {
				first = msg
			} else if msg != first {
				t.Fatalf("message changed between calls:\n%s\n%s", first, msg)
			}
		}
	})

	t.Run("unsupported payment method", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.signedIn("u1")
		in := validInput()
		in.PaymentMethod = "Barter"
		if _, err := d.svc.PlaceOrder(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("want ErrInvalidInput, got %v", err)
		}
	})
}

func orderDoc(id, uid string, at time.Time) domain.Document {
	o := domain.Order{
		ID:       id,
		UserID:   uid,
		Items:    []domain.OrderItem{{ProductID: "p1", Price: decimal.NewFromInt(10), Quantity: 1}},
		Subtotal: decimal.NewFromInt(10), ShippingCost: decimal.NewFromInt(10), Total: decimal.NewFromInt(20),
		OrderDate: at,
		Status:    domain.OrderPending,
	}
	return validate.EncodeOrder(&o)
}

func TestListOrders_NewestFirstPaginatedSkipsMalformed(t *testing.T) {
	d := newCheckoutDeps(t)
	d.signedIn("u1")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	docs := []domain.Document{
		orderDoc("o-old", "u1", base),
		orderDoc("o-new", "u1", base.Add(2*time.Hour)),
		{ID: "broken", Data: map[string]any{"userId": ""}},
		orderDoc("o-mid", "u1", base.Add(time.Hour)),
	}
	d.store.EXPECT().Query(gomock.Any(), domain.CollectionOrders, "userId", "u1").Return(docs, nil).Times(3)

	all, err := d.svc.ListOrders(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(all) != 3 || all[0].ID != "o-new" || all[1].ID != "o-mid" || all[2].ID != "o-old" {
		t.Fatalf("want [o-new o-mid o-old], got %+v", ids(all))
	}

	page, _ := d.svc.ListOrders(context.Background(), 1, 1)
	if len(page) != 1 || page[0].ID != "o-mid" {
		t.Fatalf("limit=1 offset=1: want [o-mid], got %v", ids(page))
	}

	past, _ := d.svc.ListOrders(context.Background(), 10, 5)
	if len(past) != 0 {
		t.Fatalf("offset past end: want empty, got %v", ids(past))
	}
}

func TestListOrders_StoreError(t *testing.T) {
	d := newCheckoutDeps(t)
	d.signedIn("u1")
	d.store.EXPECT().Query(gomock.Any(), domain.CollectionOrders, "userId", "u1").Return(nil, errors.New("down"))

	if _, err := d.svc.ListOrders(context.Background(), 10, 0); err == nil {
		t.Fatalf("expected error")
	}
}

func TestProfile_Counts(t *testing.T) {
	d := newCheckoutDeps(t)
	d.signedIn("u1")

	now := time.Now()
	d.store.EXPECT().Query(gomock.Any(), domain.CollectionOrders, "userId", "u1").
		Return([]domain.Document{orderDoc("o1", "u1", now), orderDoc("o2", "u1", now)}, nil)
	u := domain.User{UserID: "u1", FullName: "Jane Doe", Email: "jane@example.com", PhotoURL: "https://img/j.png"}
	userDoc := validate.EncodeUser(&u)
	d.store.EXPECT().GetByID(gomock.Any(), domain.CollectionUsers, "u1").Return(&userDoc, nil)
	d.cart.EXPECT().GetCartItems(gomock.Any(), false).Return(cartLines())
	d.wishlist.EXPECT().GetWishlistProductIDs(gomock.Any(), false).
		Return(map[string]struct{}{"p1": {}, "p2": {}, "p3": {}})

	got, err := d.svc.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	want := domain.ProfileSummary{
		UserID: "u1", FullName: "Jane Doe", Email: "jane@example.com", PhotoURL: "https://img/j.png",
		OrderCount: 2, CartItemCount: 2, WishlistCount: 3,
	}
	if got != want {
		t.Fatalf("want %+v, got %+v", want, got)
	}
}

func TestProfile_UserDocFallbacks(t *testing.T) {
	tests := []struct {
		name string
		doc  *domain.Document
		err  error
	}{
		{"missing", nil, nil},
		{"store error", nil, errors.New("down")},
		{"malformed", &domain.Document{ID: "", Data: map[string]any{"fullName": "x"}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newCheckoutDeps(t)
			d.signedIn("u1")
			d.store.EXPECT().Query(gomock.Any(), domain.CollectionOrders, "userId", "u1").Return(nil, nil)
			d.store.EXPECT().GetByID(gomock.Any(), domain.CollectionUsers, "u1").Return(tt.doc, tt.err)
			d.cart.EXPECT().GetCartItems(gomock.Any(), false).Return(nil)
			d.wishlist.EXPECT().GetWishlistProductIDs(gomock.Any(), false).Return(map[string]struct{}{})

			got, err := d.svc.Profile(context.Background())
			if err != nil {
				t.Fatalf("Profile: %v", err)
			}
			want := domain.ProfileSummary{UserID: "u1", FullName: domain.DefaultUserName}
			if got != want {
				t.Fatalf("want %+v, got %+v", want, got)
			}
		})
	}
}

func TestProfile_Unauthenticated(t *testing.T) {
	d := newCheckoutDeps(t)
	d.users.EXPECT().CurrentUserID(gomock.Any()).Return("", false)
	if _, err := d.svc.Profile(context.Background()); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated, got %v", err)
	}
}

func ids(orders []domain.Order) []string {
	out := make([]string, 0, len(orders))
	for i := range orders {
		out = append(out, orders[i].ID)
	}
	return out
}
