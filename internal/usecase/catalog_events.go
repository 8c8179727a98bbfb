package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

// CatalogEvents — реакция на изменения каталога (Kafka, cron).
type CatalogEvents struct {
	products ports.ProductCatalog
	wishlist ports.Wishlist
	log      ports.Logger
}

// NewCatalogEvents — DI-конструктор.
func NewCatalogEvents(products ports.ProductCatalog, wishlist ports.Wishlist, log ports.Logger) *CatalogEvents {
	return &CatalogEvents{products: products, wishlist: wishlist, log: log}
}

// HandleCatalogEvent — строгий разбор события и принудительное обновление каталога.
// Невалидное событие → ошибка, обёрнутая в validate.ErrInvalidEvent;
// недоступное хранилище → обычная ошибка, событие нужно повторить.
func (e *CatalogEvents) HandleCatalogEvent(ctx context.Context, raw []byte) error {
	ev, err := validate.DecodeCatalogEvent(raw)
	if err != nil {
		e.log.Warnf(ctx, "invalid catalog event: %v", err)
		return err
	}
	n, err := e.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("catalog event type=%s: %w", ev.Type, err)
	}
	e.log.Infof(ctx, "catalog event type=%s product=%s: catalog refreshed products=%d", ev.Type, ev.ProductID, n)
	return nil
}

// Refresh — принудительная загрузка каталога; зеркало товаров избранного
// пересобирается при следующем обращении. Возвращает число товаров.
func (e *CatalogEvents) Refresh(ctx context.Context) (int, error) {
	products, err := e.products.Refresh(ctx)
	if err != nil {
		return 0, fmt.Errorf("refresh catalog: %w", err)
	}
	e.wishlist.InvalidateProducts()
	return len(products), nil
}
