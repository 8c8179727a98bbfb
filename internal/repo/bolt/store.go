// Пакет bolt — RemoteStore поверх встроенного файла bbolt (локальная разработка, офлайн).
// Коллекция — бакет, документ — JSON-значение под ключом id.
package bolt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/telemetry"
)

var _ ports.RemoteStore = (*Store)(nil)

const backendName = "bolt"

// Store — хранилище документов в одном файле bbolt.
type Store struct {
	db  *bbolt.DB
	log ports.Logger
}

// Open — открывает (или создаёт) файл базы.
func Open(path string, log ports.Logger) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %q: %w", path, err)
	}
	return &Store{db: db, log: log}, nil
}

// Close — закрывает файл базы.
func (s *Store) Close() error { return s.db.Close() }

// Query — документы бакета в порядке ключей; при непустом field — с data[field] == equals
// (сравнение JSON-представлений, поэтому 5 и 5.0 равны).
// Значение, которое не разбирается как JSON-объект, пропускается с предупреждением.
func (s *Store) Query(ctx context.Context, collection, field string, equals any) ([]domain.Document, error) {
	_, span := telemetry.StartSpan(ctx, "bolt.query",
		attribute.String("collection", collection), attribute.String("field", field))
	defer span.End()
	defer metrics.ObserveRemote(backendName, "query", time.Now())

	var want []byte
	if field != "" {
		var err error
		if want, err = json.Marshal(equals); err != nil {
			return nil, fmt.Errorf("marshal filter value: %w", err)
		}
	}

	var (
		out     []domain.Document
		skipped []error
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			doc, err := decodeValue(k, v)
			if err != nil {
				skipped = append(skipped, err)
				return nil
			}
			if field != "" {
				got, ok := doc.Data[field]
				if !ok {
					return nil
				}
				raw, err := json.Marshal(got)
				if err != nil || !bytes.Equal(raw, want) {
					return nil
				}
			}
			out = append(out, doc)
			return nil
		})
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	for _, e := range skipped {
		s.log.Warnf(ctx, "bolt: skip %s value: %v", collection, e)
	}
	return out, nil
}

// GetByID — документ по id; (nil, nil), если его нет.
func (s *Store) GetByID(ctx context.Context, collection, id string) (*domain.Document, error) {
	_, span := telemetry.StartSpan(ctx, "bolt.get", attribute.String("collection", collection))
	defer span.End()
	defer metrics.ObserveRemote(backendName, "get", time.Now())

	var found *domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}
		v := b.Get([]byte(id))
		if v == nil {
			return nil
		}
		doc, err := decodeValue([]byte(id), v)
		if err != nil {
			return err
		}
		found = &doc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return found, nil
}

// Put — создать/перезаписать документ.
func (s *Store) Put(ctx context.Context, collection, id string, doc domain.Document) error {
	if id == "" {
		return errors.New("bolt store: empty document id")
	}
	_, span := telemetry.StartSpan(ctx, "bolt.put", attribute.String("collection", collection))
	defer span.End()
	defer metrics.ObserveRemote(backendName, "put", time.Now())

	data := doc.Data
	if data == nil {
		data = map[string]any{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", collection, id, err)
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return err
		}
		return b.Put([]byte(id), raw)
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete — удалить документ; отсутствие бакета или ключа не ошибка.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	_, span := telemetry.StartSpan(ctx, "bolt.delete", attribute.String("collection", collection))
	defer span.End()
	defer metrics.ObserveRemote(backendName, "delete", time.Now())

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func decodeValue(k, v []byte) (domain.Document, error) {
	var data map[string]any
	if err := json.Unmarshal(v, &data); err != nil {
		return domain.Document{}, fmt.Errorf("decode %s: %w", k, err)
	}
	return domain.Document{ID: string(k), Data: data}, nil
}
