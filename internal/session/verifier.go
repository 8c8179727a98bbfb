package session

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

var (
	_ ports.TokenVerifier = (*FirebaseVerifier)(nil)
	_ ports.TokenVerifier = StaticVerifier{}
)

// idTokenVerifier — часть *auth.Client, нужная для проверки токена.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseVerifier — проверка Firebase ID-токенов.
type FirebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier — поднимает Firebase App/Auth для проекта.
// Пустой credentialsFile — Application Default Credentials.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsFile string) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

// Verify — личность из валидного токена; иначе ошибка, обёрнутая в domain.ErrUnauthenticated.
// email, name и picture берутся из claims токена, если они там есть.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (domain.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Identity{}, fmt.Errorf("%w: empty id token", domain.ErrUnauthenticated)
	}
	t, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	uid := strings.TrimSpace(t.UID)
	if uid == "" {
		return domain.Identity{}, fmt.Errorf("%w: token without uid", domain.ErrUnauthenticated)
	}
	return domain.Identity{
		UserID:   uid,
		Email:    claim(t.Claims, "email"),
		Name:     claim(t.Claims, "name"),
		PhotoURL: claim(t.Claims, "picture"),
	}, nil
}

func claim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return strings.TrimSpace(s)
}

// StaticVerifier — локальная разработка без Firebase: токен и есть uid.
type StaticVerifier struct{}

// Verify — возвращает токен как uid.
func (StaticVerifier) Verify(_ context.Context, token string) (domain.Identity, error) {
	uid := strings.TrimSpace(token)
	if uid == "" {
		return domain.Identity{}, fmt.Errorf("%w: empty token", domain.ErrUnauthenticated)
	}
	return domain.Identity{UserID: uid}, nil
}
