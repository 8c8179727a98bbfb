// Пакет session — текущий пользователь процесса и проверка токенов входа.
package session

import (
	"context"
	"sync"

	"github.com/Gunvolt24/storefront/internal/ports"
)

var _ ports.UserProvider = (*Session)(nil)

// Session — единственная сессия процесса: uid вошедшего пользователя.
type Session struct {
	mu  sync.RWMutex
	uid string
}

// New — пустая сессия (пользователь не вошёл).
func New() *Session { return &Session{} }

// CurrentUserID — uid текущего пользователя; false, если никто не вошёл.
func (s *Session) CurrentUserID(context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uid, s.uid != ""
}

// Set — заменяет пользователя; возвращает предыдущий uid ("" — не было).
func (s *Session) Set(uid string) (prev string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, s.uid = s.uid, uid
	return prev
}

// Clear — выход пользователя.
func (s *Session) Clear() {
	s.mu.Lock()
	s.uid = ""
	s.mu.Unlock()
}
