package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidEvent — сообщение о каталоге не удалось разобрать; повторять бессмысленно.
var ErrInvalidEvent = errors.New("invalid catalog event")

// Типы событий каталога.
const (
	EventProductUpdated  = "product.updated"
	EventProductDeleted  = "product.deleted"
	EventCatalogReloaded = "catalog.reloaded"
)

// CatalogEvent — уведомление об изменении каталога.
type CatalogEvent struct {
	Type      string `json:"type"`
	ProductID string `json:"productId,omitempty"`
}

// DecodeCatalogEvent — строгий разбор события: неизвестные поля, хвост и пустые обязательные поля — ErrInvalidEvent.
func DecodeCatalogEvent(raw []byte) (CatalogEvent, error) {
	var ev CatalogEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		return CatalogEvent{}, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return CatalogEvent{}, fmt.Errorf("%w: trailing data", ErrInvalidEvent)
	}

	switch ev.Type {
	case EventProductUpdated, EventProductDeleted:
		if ev.ProductID == "" {
			return CatalogEvent{}, fmt.Errorf("%w: productId is required for %s", ErrInvalidEvent, ev.Type)
		}
	case EventCatalogReloaded:
	default:
		return CatalogEvent{}, fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, ev.Type)
	}
	return ev, nil
}
