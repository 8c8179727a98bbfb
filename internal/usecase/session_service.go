package usecase

import (
	"context"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

var _ ports.SessionService = (*SessionService)(nil)

// SessionService — вход/выход пользователя и сброс кэшей при смене пользователя.
type SessionService struct {
	verifier ports.TokenVerifier
	session  ports.SessionStore
	store    ports.RemoteStore
	products ports.ProductCatalog
	cart     ports.Cart
	wishlist ports.Wishlist
	log      ports.Logger
	now      func() time.Time
}

// NewSessionService — DI-конструктор; store нужен для профилей в коллекции Users.
func NewSessionService(
	verifier ports.TokenVerifier,
	session ports.SessionStore,
	store ports.RemoteStore,
	products ports.ProductCatalog,
	cart ports.Cart,
	wishlist ports.Wishlist,
	log ports.Logger,
) *SessionService {
	return &SessionService{
		verifier: verifier,
		session:  session,
		store:    store,
		products: products,
		cart:     cart,
		wishlist: wishlist,
		log:      log,
		now:      time.Now,
	}
}

// SignIn — проверяет токен и делает его владельца текущим пользователем.
// При смене пользователя кэши сбрасываются до переключения сессии.
// При первом входе создаётся документ профиля.
func (s *SessionService) SignIn(ctx context.Context, idToken string) (string, error) {
	id, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		s.log.Warnf(ctx, "sign-in rejected err=%v", err)
		return "", err
	}
	uid := id.UserID

	if prev, ok := s.session.CurrentUserID(ctx); ok && prev != uid {
		s.log.Infof(ctx, "user switch prev=%s next=%s: clearing caches", prev, uid)
		s.clearCaches()
	}
	s.session.Set(uid)
	s.ensureProfile(ctx, id)

	s.log.Infof(ctx, "signed in user=%s", uid)
	return uid, nil
}

// SignOut — выход: сессия пуста, зеркала всех кэшей сброшены.
func (s *SessionService) SignOut(ctx context.Context) {
	s.session.Clear()
	s.clearCaches()
	s.log.Infof(ctx, "signed out")
}

// CurrentUserID — uid текущего пользователя.
func (s *SessionService) CurrentUserID(ctx context.Context) (string, bool) {
	return s.session.CurrentUserID(ctx)
}

func (s *SessionService) clearCaches() {
	s.products.ClearCache()
	s.cart.ClearCache()
	s.wishlist.ClearCache()
}

// ensureProfile — создаёт Users/{uid}, если документа ещё нет.
// Ошибки хранилища только логируются: вход от профиля не зависит.
func (s *SessionService) ensureProfile(ctx context.Context, id domain.Identity) {
	doc, err := s.store.GetByID(ctx, domain.CollectionUsers, id.UserID)
	if err != nil {
		s.log.Warnf(ctx, "profile lookup failed user=%s: %v", id.UserID, err)
		return
	}
	if doc != nil {
		return
	}
	u := domain.NewUser(id, s.now())
	if err := s.store.Put(ctx, domain.CollectionUsers, u.UserID, validate.EncodeUser(&u)); err != nil {
		s.log.Warnf(ctx, "profile create failed user=%s: %v", id.UserID, err)
		return
	}
	s.log.Infof(ctx, "profile created user=%s", id.UserID)
}
