package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/flight"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

var _ ports.ProductCatalog = (*ProductCache)(nil)

const productsFlightKey = "all"

// ProductCache — кэш каталога: загружается один раз, дальше отдаётся из памяти.
// Товары в зеркале не изменяются, загрузка заменяет список целиком.
type ProductCache struct {
	store  ports.RemoteStore
	log    ports.Logger
	flight *flight.Group[[]domain.Product]

	mu       sync.RWMutex
	products []domain.Product
	loaded   bool
	gen      uint64 // растёт на каждом ClearCache
}

// NewProductCache — DI-конструктор.
func NewProductCache(store ports.RemoteStore, log ports.Logger) *ProductCache {
	return &ProductCache{
		store:  store,
		log:    log,
		flight: flight.New[[]domain.Product](productCacheName),
	}
}

// GetProducts — весь каталог. Конкурентные холодные вызовы делают один запрос;
// при ошибке хранилища возвращается последнее удачное зеркало (или пустой список).
func (c *ProductCache) GetProducts(ctx context.Context, forceRefresh bool) []domain.Product {
	if !forceRefresh {
		if snap, ok := c.snapshot(); ok {
			countOp(productCacheName, opHit)
			return snap
		}
	}
	countOp(productCacheName, opMiss)

	products, err := c.Refresh(ctx)
	if err != nil {
		countOp(productCacheName, opFallback)
		c.log.Errorf(ctx, "products fetch failed, serving cached copy: %v", err)
		snap, _ := c.snapshot()
		return snap
	}
	return products
}

// Refresh — принудительная загрузка каталога, ошибка хранилища возвращается наружу,
// зеркало при ошибке остаётся прежним. Конкурентные вызовы делят одну загрузку.
func (c *ProductCache) Refresh(ctx context.Context) ([]domain.Product, error) {
	res, err := c.flight.Do(ctx, productsFlightKey, c.fetch)
	if err != nil {
		return nil, err
	}
	return cloneProducts(res.Val), nil
}

// GetProductByID — поиск по зеркалу GetProducts; отдельного запроса к хранилищу нет.
func (c *ProductCache) GetProductByID(ctx context.Context, id string) (domain.Product, bool) {
	if id == "" {
		return domain.Product{}, false
	}
	c.ensureLoaded(ctx)

	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.products {
		if c.products[i].ID == id {
			return c.products[i].Clone(), true
		}
	}
	return domain.Product{}, false
}

// GetProductsByCategory — товары категории из зеркала.
func (c *ProductCache) GetProductsByCategory(ctx context.Context, category string) []domain.Product {
	c.ensureLoaded(ctx)

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, 0)
	for i := range c.products {
		if c.products[i].Category == category {
			out = append(out, c.products[i].Clone())
		}
	}
	return out
}

// ClearCache — сбросить зеркало; следующий GetProducts пойдёт в хранилище.
func (c *ProductCache) ClearCache() {
	c.mu.Lock()
	c.products = nil
	c.loaded = false
	c.gen++
	c.mu.Unlock()
	setItems(productCacheName, 0)
}

func (c *ProductCache) ensureLoaded(ctx context.Context) {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if !loaded {
		c.GetProducts(ctx, false)
	}
}

func (c *ProductCache) snapshot() ([]domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneProducts(c.products), c.loaded
}

func (c *ProductCache) fetch(ctx context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	gen := c.gen
	c.mu.RUnlock()

	countOp(productCacheName, opFetch)
	docs, err := c.store.Query(ctx, domain.CollectionProducts, "", nil)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		p, err := validate.DecodeProduct(doc)
		if err != nil {
			countOp(productCacheName, opSkipped)
			c.log.Warnf(ctx, "skip product doc=%s: %v", doc.ID, err)
			continue
		}
		products = append(products, p)
	}

	c.mu.Lock()
	if c.gen == gen {
		c.products = products
		c.loaded = true
		setItems(productCacheName, len(products))
	}
	c.mu.Unlock()

	c.log.Infof(ctx, "products fetched count=%d skipped=%d", len(products), len(docs)-len(products))
	return products, nil
}
