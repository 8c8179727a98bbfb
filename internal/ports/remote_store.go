package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// RemoteStore — обобщённый CRUD над удалённым хранилищем документов.
// Семантика запросов/записей — на стороне хранилища; кэши опираются только на этот контракт.
type RemoteStore interface {
	// Query — документы коллекции, у которых field == equals.
	// Пустой field — вся коллекция.
	Query(ctx context.Context, collection, field string, equals any) ([]domain.Document, error)

	// GetByID — документ по id; (nil, nil), если его нет.
	GetByID(ctx context.Context, collection, id string) (*domain.Document, error)

	// Put — создать/перезаписать документ целиком.
	Put(ctx context.Context, collection, id string, doc domain.Document) error

	// Delete — удалить документ; отсутствие документа не ошибка.
	Delete(ctx context.Context, collection, id string) error
}
