package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"firebase.google.com/go/v4/auth"

	"github.com/Gunvolt24/storefront/internal/domain"
)

func TestSession_SetClear(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, ok := s.CurrentUserID(ctx); ok {
		t.Fatalf("new session must be empty")
	}
	if prev := s.Set("u1"); prev != "" {
		t.Fatalf("first Set: want empty prev, got %q", prev)
	}
	if uid, ok := s.CurrentUserID(ctx); !ok || uid != "u1" {
		t.Fatalf("want u1, got %q %v", uid, ok)
	}
	if prev := s.Set("u2"); prev != "u1" {
		t.Fatalf("second Set: want prev u1, got %q", prev)
	}
	s.Clear()
	if _, ok := s.CurrentUserID(ctx); ok {
		t.Fatalf("session must be empty after Clear")
	}
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); s.Set("u") }()
		go func() { defer wg.Done(); _, _ = s.CurrentUserID(context.Background()) }()
	}
	wg.Wait()
	if uid, _ := s.CurrentUserID(context.Background()); uid != "u" {
		t.Fatalf("want u, got %q", uid)
	}
}

func TestStaticVerifier(t *testing.T) {
	id, err := StaticVerifier{}.Verify(context.Background(), "  user-1 ")
	if err != nil || id.UserID != "user-1" {
		t.Fatalf("want user-1, got %+v %v", id, err)
	}
	if _, err := (StaticVerifier{}).Verify(context.Background(), " "); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("empty token: want ErrUnauthenticated, got %v", err)
	}
}

type fakeAuth struct {
	token *auth.Token
	err   error
	calls int
}

func (f *fakeAuth) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	f.calls++
	return f.token, f.err
}

func TestFirebaseVerifier(t *testing.T) {
	ctx := context.Background()

	ok := &fakeAuth{token: &auth.Token{UID: "firebase-uid", Claims: map[string]interface{}{
		"email": "jane@example.com", "name": "Jane Doe", "picture": "https://img/j.png",
	}}}
	id, err := (&FirebaseVerifier{client: ok}).Verify(ctx, "tok")
	if err != nil {
		t.Fatalf("valid token: %v", err)
	}
	want := domain.Identity{UserID: "firebase-uid", Email: "jane@example.com", Name: "Jane Doe", PhotoURL: "https://img/j.png"}
	if id != want {
		t.Fatalf("valid token: got %+v, want %+v", id, want)
	}

	bare := &fakeAuth{token: &auth.Token{UID: "u2"}}
	if id, err := (&FirebaseVerifier{client: bare}).Verify(ctx, "tok"); err != nil || id != (domain.Identity{UserID: "u2"}) {
		t.Fatalf("token without claims: got %+v %v", id, err)
	}

	bad := &fakeAuth{err: errors.New("signature mismatch")}
	if _, err := (&FirebaseVerifier{client: bad}).Verify(ctx, "tok"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("invalid token: want ErrUnauthenticated, got %v", err)
	}

	noUID := &fakeAuth{token: &auth.Token{}}
	if _, err := (&FirebaseVerifier{client: noUID}).Verify(ctx, "tok"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("token without uid: want ErrUnauthenticated, got %v", err)
	}

	empty := &fakeAuth{}
	if _, err := (&FirebaseVerifier{client: empty}).Verify(ctx, ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("empty token: want ErrUnauthenticated, got %v", err)
	}
	if empty.calls != 0 {
		t.Fatalf("empty token must not reach firebase")
	}
}
