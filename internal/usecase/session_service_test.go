package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports/mocks"
	"github.com/Gunvolt24/storefront/internal/session"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/golang/mock/gomock"
)

type sessionDeps struct {
	verifier *mocks.MockTokenVerifier
	store    *mocks.MockRemoteStore
	products *mocks.MockProductCatalog
	cart     *mocks.MockCart
	wishlist *mocks.MockWishlist
	sess     *session.Session
	svc      *usecase.SessionService
}

func newSessionDeps(t *testing.T) *sessionDeps {
	ctrl := gomock.NewController(t)
	d := &sessionDeps{
		verifier: mocks.NewMockTokenVerifier(ctrl),
		store:    mocks.NewMockRemoteStore(ctrl),
		products: mocks.NewMockProductCatalog(ctrl),
		cart:     mocks.NewMockCart(ctrl),
		wishlist: mocks.NewMockWishlist(ctrl),
		sess:     session.New(),
	}
	d.svc = usecase.NewSessionService(d.verifier, d.sess, d.store, d.products, d.cart, d.wishlist, noopLogger{})
	return d
}

// profileExists — документ профиля уже есть, вход его не перезаписывает.
func (d *sessionDeps) profileExists(uid string) {
	d.store.EXPECT().GetByID(gomock.Any(), domain.CollectionUsers, uid).
		Return(&domain.Document{ID: uid, Data: map[string]any{"fullName": "Existing"}}, nil).AnyTimes()
}

func (d *sessionDeps) expectClearAll() {
	d.products.EXPECT().ClearCache().Times(1)
	d.cart.EXPECT().ClearCache().Times(1)
	d.wishlist.EXPECT().ClearCache().Times(1)
}

func TestSignIn_FirstUserKeepsCaches(t *testing.T) {
	d := newSessionDeps(t)
	ctx := context.Background()

	d.verifier.EXPECT().Verify(gomock.Any(), "tok-1").Return(domain.Identity{UserID: "u1"}, nil).Times(2)
	d.profileExists("u1")

	uid, err := d.svc.SignIn(ctx, "tok-1")
	if err != nil || uid != "u1" {
		t.Fatalf("SignIn: got %q %v", uid, err)
	}
	// повторный вход тем же пользователем кэши не трогает
	if _, err := d.svc.SignIn(ctx, "tok-1"); err != nil {
		t.Fatalf("second SignIn: %v", err)
	}
	if cur, ok := d.svc.CurrentUserID(ctx); !ok || cur != "u1" {
		t.Fatalf("current user: got %q %v", cur, ok)
	}
}

func TestSignIn_UserSwitchClearsCaches(t *testing.T) {
	d := newSessionDeps(t)
	ctx := context.Background()
	d.sess.Set("u1")

	d.verifier.EXPECT().Verify(gomock.Any(), "tok-2").Return(domain.Identity{UserID: "u2"}, nil)
	d.profileExists("u2")
	d.expectClearAll()

	uid, err := d.svc.SignIn(ctx, "tok-2")
	if err != nil || uid != "u2" {
		t.Fatalf("SignIn: got %q %v", uid, err)
	}
	if cur, _ := d.sess.CurrentUserID(ctx); cur != "u2" {
		t.Fatalf("session must switch to u2, got %q", cur)
	}
}

func TestSignIn_InvalidTokenKeepsSession(t *testing.T) {
	d := newSessionDeps(t)
	ctx := context.Background()
	d.sess.Set("u1")

	d.verifier.EXPECT().Verify(gomock.Any(), "bad").Return(domain.Identity{}, domain.ErrUnauthenticated)

	if _, err := d.svc.SignIn(ctx, "bad"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated, got %v", err)
	}
	if cur, _ := d.sess.CurrentUserID(ctx); cur != "u1" {
		t.Fatalf("session must stay u1, got %q", cur)
	}
}

func TestSignOut_ClearsSessionAndCaches(t *testing.T) {
	d := newSessionDeps(t)
	ctx := context.Background()
	d.sess.Set("u1")

	d.expectClearAll()
	d.svc.SignOut(ctx)

	if _, ok := d.sess.CurrentUserID(ctx); ok {
		t.Fatalf("session must be empty after SignOut")
	}
}

func TestSignIn_CreatesProfileOnFirstSignIn(t *testing.T) {
	d := newSessionDeps(t)
	ctx := context.Background()

	id := domain.Identity{UserID: "u1", Email: "jane@example.com", Name: "Jane Doe", PhotoURL: "https://img/j.png"}
	d.verifier.EXPECT().Verify(gomock.Any(), "tok-1").Return(id, nil)
	d.store.EXPECT().GetByID(gomock.Any(), domain.CollectionUsers, "u1").Return(nil, nil)

	var saved domain.Document
	d.store.EXPECT().Put(gomock.Any(), domain.CollectionUsers, "u1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, doc domain.Document) error {
			saved = doc
			return nil
		})

	if _, err := d.svc.SignIn(ctx, "tok-1"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	u, err := validate.DecodeUser(saved)
	if err != nil {
		t.Fatalf("saved profile: %v", err)
	}
	if u.UserID != "u1" || u.FullName != "Jane Doe" || u.Email != "jane@example.com" || u.PhotoURL != "https://img/j.png" {
		t.Fatalf("saved profile = %+v", u)
	}
	if u.CreatedAt.IsZero() {
		t.Fatalf("createdAt must be set")
	}
}

func TestSignIn_ProfileStoreFailureDoesNotBlockSignIn(t *testing.T) {
	t.Run("lookup", func(t *testing.T) {
		d := newSessionDeps(t)
		d.verifier.EXPECT().Verify(gomock.Any(), "tok-1").Return(domain.Identity{UserID: "u1"}, nil)
		d.store.EXPECT().GetByID(gomock.Any(), domain.CollectionUsers, "u1").Return(nil, errors.New("down"))

		if uid, err := d.svc.SignIn(context.Background(), "tok-1"); err != nil || uid != "u1" {
			t.Fatalf("SignIn: got %q %v", uid, err)
		}
	})

	t.Run("create", func(t *testing.T) {
		d := newSessionDeps(t)
		d.verifier.EXPECT().Verify(gomock.Any(), "tok-1").Return(domain.Identity{UserID: "u1"}, nil)
		d.store.EXPECT().GetByID(gomock.Any(), domain.CollectionUsers, "u1").Return(nil, nil)
		d.store.EXPECT().Put(gomock.Any(), domain.CollectionUsers, "u1", gomock.Any()).Return(errors.New("down"))

		if uid, err := d.svc.SignIn(context.Background(), "tok-1"); err != nil || uid != "u1" {
			t.Fatalf("SignIn: got %q %v", uid, err)
		}
		if cur, _ := d.sess.CurrentUserID(context.Background()); cur != "u1" {
			t.Fatalf("session must switch to u1, got %q", cur)
		}
	})
}
