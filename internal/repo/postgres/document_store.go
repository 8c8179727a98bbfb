package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/telemetry"
)

// Проверка, что DocumentStore удовлетворяет интерфейсу RemoteStore.
var _ ports.RemoteStore = (*DocumentStore)(nil)

const backendName = "postgres"

// DocumentStore — RemoteStore поверх таблицы documents (collection, id, data JSONB).
type DocumentStore struct {
	pool *pgxpool.Pool
}

// NewDocumentStore — конструктор DocumentStore.
func NewDocumentStore(pool *pgxpool.Pool) *DocumentStore { return &DocumentStore{pool: pool} }

// Query — документы коллекции; при непустом field — только те, где data->field = equals
// (сравнение JSON-значений через @>, использует GIN-индекс).
func (s *DocumentStore) Query(ctx context.Context, collection, field string, equals any) ([]domain.Document, error) {
	ctx, span := telemetry.StartSpan(ctx, "postgres.query",
		attribute.String("collection", collection), attribute.String("field", field))
	defer span.End()
	defer metrics.ObserveRemote(backendName, "query", time.Now())

	var (
		rows pgx.Rows
		err  error
	)
	if field == "" {
		rows, err = s.pool.Query(ctx, `
			SELECT id, data FROM documents
			WHERE collection = $1
			ORDER BY id
		`, collection)
	} else {
		value, mErr := json.Marshal(equals)
		if mErr != nil {
			return nil, fmt.Errorf("marshal filter value: %w", mErr)
		}
		rows, err = s.pool.Query(ctx, `
			SELECT id, data FROM documents
			WHERE collection = $1 AND data @> jsonb_build_object($2::text, $3::jsonb)
			ORDER BY id
		`, collection, field, string(value))
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer rows.Close()

	var out []domain.Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		doc, err := decodeRow(id, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows %s: %w", collection, err)
	}
	return out, nil
}

// GetByID — документ по id; (nil, nil), если его нет.
func (s *DocumentStore) GetByID(ctx context.Context, collection, id string) (*domain.Document, error) {
	ctx, span := telemetry.StartSpan(ctx, "postgres.get", attribute.String("collection", collection))
	defer span.End()
	defer metrics.ObserveRemote(backendName, "get", time.Now())

	var raw []byte
	err := s.pool.QueryRow(ctx, `
		SELECT data FROM documents WHERE collection = $1 AND id = $2
	`, collection, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	doc, err := decodeRow(id, raw)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Put — upsert документа целиком.
func (s *DocumentStore) Put(ctx context.Context, collection, id string, doc domain.Document) error {
	if id == "" {
		return errors.New("postgres store: empty document id")
	}
	ctx, span := telemetry.StartSpan(ctx, "postgres.put", attribute.String("collection", collection))
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

	if _, err := s.pool.Exec(ctx, `
		INSERT INTO documents (collection, id, data, updated_at)
		VALUES ($1, $2, $3::jsonb, now())
		ON CONFLICT (collection, id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
	`, collection, id, string(raw)); err != nil {
		span.RecordError(err)
		return fmt.Errorf("upsert %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete — удалить документ; отсутствие документа не ошибка.
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	ctx, span := telemetry.StartSpan(ctx, "postgres.delete", attribute.String("collection", collection))
	defer span.End()
	defer metrics.ObserveRemote(backendName, "delete", time.Now())

	if _, err := s.pool.Exec(ctx, `
		DELETE FROM documents WHERE collection = $1 AND id = $2
	`, collection, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func decodeRow(id string, raw []byte) (domain.Document, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return domain.Document{}, fmt.Errorf("decode %s: %w", id, err)
	}
	return domain.Document{ID: id, Data: data}, nil
}
