package memory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/Gunvolt24/storefront/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// staticUser — провайдер с фиксированным пользователем ("" — не вошёл).
type staticUser struct {
	mu  sync.Mutex
	uid string
}

func (u *staticUser) CurrentUserID(context.Context) (string, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.uid, u.uid != ""
}

func (u *staticUser) set(uid string) {
	u.mu.Lock()
	u.uid = uid
	u.mu.Unlock()
}

// fakeStore — хранилище документов в памяти со счётчиками и внедрением ошибок.
type fakeStore struct {
	mu    sync.Mutex
	colls map[string]map[string]map[string]any

	queries atomic.Int32
	puts    atomic.Int32
	deletes atomic.Int32

	queryErr  error
	putErr    error
	deleteErr error
	gate      chan struct{} // если не nil, Query ждёт закрытия
}

func newFakeStore() *fakeStore {
	return &fakeStore{colls: map[string]map[string]map[string]any{}}
}

func (s *fakeStore) seed(collection string, doc domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putLocked(collection, doc.ID, doc.Data)
}

func (s *fakeStore) setQueryErr(err error) {
	s.mu.Lock()
	s.queryErr = err
	s.mu.Unlock()
}

func (s *fakeStore) setPutErr(err error) {
	s.mu.Lock()
	s.putErr = err
	s.mu.Unlock()
}

func (s *fakeStore) count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.colls[collection])
}

func (s *fakeStore) get(collection, id string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.colls[collection][id]
	return d, ok
}

func (s *fakeStore) Query(_ context.Context, collection, field string, equals any) ([]domain.Document, error) {
	s.queries.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	var out []domain.Document
	for id, data := range s.colls[collection] {
		if field != "" && data[field] != equals {
			continue
		}
		out = append(out, domain.Document{ID: id, Data: copyMap(data)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) GetByID(_ context.Context, collection, id string) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.colls[collection][id]
	if !ok {
		return nil, nil
	}
	return &domain.Document{ID: id, Data: copyMap(data)}, nil
}

func (s *fakeStore) Put(_ context.Context, collection, id string, doc domain.Document) error {
	s.puts.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.putLocked(collection, id, doc.Data)
	return nil
}

func (s *fakeStore) Delete(_ context.Context, collection, id string) error {
	s.deletes.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.colls[collection], id)
	return nil
}

func (s *fakeStore) putLocked(collection, id string, data map[string]any) {
	if s.colls[collection] == nil {
		s.colls[collection] = map[string]map[string]any{}
	}
	s.colls[collection][id] = copyMap(data)
}

func copyMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func productDoc(id, name, category string, price float64, discount int) domain.Document {
	return domain.Document{ID: id, Data: map[string]any{
		"name":     name,
		"price":    price,
		"discount": discount,
		"category": category,
		"size":     []any{"M", "L"},
		"colors":   []any{"Black"},
		"stock":    5,
	}}
}
