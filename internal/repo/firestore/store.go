package firestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/telemetry"
)

var _ ports.RemoteStore = (*Store)(nil)

const backendName = "firestore"

// Store — RemoteStore поверх Cloud Firestore: коллекция = коллекция Firestore,
// id документа = id документа Firestore.
type Store struct {
	client *firestore.Client
}

// NewStore — DI-конструктор.
func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

// Query — документы коллекции с field == equals; пустой field — вся коллекция.
func (s *Store) Query(ctx context.Context, collection, field string, equals any) ([]domain.Document, error) {
	if s == nil || s.client == nil {
		return nil, errors.New("firestore store: client is nil")
	}
	ctx, span := telemetry.StartSpan(ctx, "firestore.query",
		attribute.String("collection", collection), attribute.String("field", field))
	defer span.End()
	defer metrics.ObserveRemote(backendName, "query", time.Now())

	q := s.client.Collection(collection).Query
	if field != "" {
		q = q.Where(field, "==", equals)
	}

	it := q.Documents(ctx)
	defer it.Stop()

	var out []domain.Document
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("firestore query %s: %w", collection, err)
		}
		out = append(out, domain.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return out, nil
}

// GetByID — документ по id; (nil, nil), если его нет.
func (s *Store) GetByID(ctx context.Context, collection, id string) (*domain.Document, error) {
	if s == nil || s.client == nil {
		return nil, errors.New("firestore store: client is nil")
	}
	ctx, span := telemetry.StartSpan(ctx, "firestore.get", attribute.String("collection", collection))
	defer span.End()
	defer metrics.ObserveRemote(backendName, "get", time.Now())

	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("firestore get %s/%s: %w", collection, id, err)
	}
	return &domain.Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

// Put — перезаписать документ целиком.
func (s *Store) Put(ctx context.Context, collection, id string, doc domain.Document) error {
	if s == nil || s.client == nil {
		return errors.New("firestore store: client is nil")
	}
	if id == "" {
		return errors.New("firestore store: empty document id")
	}
	ctx, span := telemetry.StartSpan(ctx, "firestore.put", attribute.String("collection", collection))
	defer span.End()
	defer metrics.ObserveRemote(backendName, "put", time.Now())

	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, doc.Data); err != nil {
		span.RecordError(err)
		return fmt.Errorf("firestore set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete — удалить документ; Firestore не считает отсутствие документа ошибкой.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if s == nil || s.client == nil {
		return errors.New("firestore store: client is nil")
	}
	ctx, span := telemetry.StartSpan(ctx, "firestore.delete", attribute.String("collection", collection))
	defer span.End()
	defer metrics.ObserveRemote(backendName, "delete", time.Now())

	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("firestore delete %s/%s: %w", collection, id, err)
	}
	return nil
}
