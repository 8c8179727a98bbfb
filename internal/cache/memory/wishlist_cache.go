package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/flight"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

var _ ports.Wishlist = (*WishlistCache)(nil)

// WishlistCache — избранное текущего пользователя: множество id товаров
// и производный список самих товаров (через каталог).
type WishlistCache struct {
	store   ports.RemoteStore
	users   ports.UserProvider
	catalog ports.ProductCatalog
	log     ports.Logger
	flight  *flight.Group[map[string]struct{}]
	now     func() time.Time

	writeMu sync.Mutex

	mu             sync.RWMutex
	owner          string
	ids            map[string]struct{}
	idsLoaded      bool
	products       []domain.Product // отсортированы по id
	productsLoaded bool
	gen            uint64 // растёт на каждом ClearCache
	rev            uint64 // растёт на каждом изменении зеркал
}

// NewWishlistCache — DI-конструктор; товары по id берутся из catalog.
func NewWishlistCache(store ports.RemoteStore, users ports.UserProvider, catalog ports.ProductCatalog, log ports.Logger) *WishlistCache {
	return &WishlistCache{
		store:   store,
		users:   users,
		catalog: catalog,
		log:     log,
		flight:  flight.New[map[string]struct{}](wishlistCacheName),
		now:     time.Now,
	}
}

// GetWishlistProductIDs — множество id товаров в избранном (новая копия на каждый вызов).
func (c *WishlistCache) GetWishlistProductIDs(ctx context.Context, forceRefresh bool) map[string]struct{} {
	uid, ok := c.currentUser(ctx)
	if !ok {
		return map[string]struct{}{}
	}
	if !forceRefresh {
		if snap, ok := c.idsFor(uid); ok {
			countOp(wishlistCacheName, opHit)
			return snap
		}
	}
	countOp(wishlistCacheName, opMiss)

	res, err := c.flight.Do(ctx, uid, func(fctx context.Context) (map[string]struct{}, error) {
		c.writeMu.Lock()
		defer c.writeMu.Unlock()
		return c.fetchLocked(fctx, uid)
	})
	if err != nil {
		countOp(wishlistCacheName, opFallback)
		c.log.Errorf(ctx, "wishlist fetch failed user=%s, serving cached copy: %v", uid, err)
		snap, _ := c.idsFor(uid)
		return snap
	}
	return cloneIDSet(res.Val)
}

// GetWishlistProducts — товары избранного; id, которых нет в каталоге, отбрасываются.
func (c *WishlistCache) GetWishlistProducts(ctx context.Context, forceRefresh bool) []domain.Product {
	uid, ok := c.currentUser(ctx)
	if !ok {
		return []domain.Product{}
	}
	if !forceRefresh {
		c.mu.RLock()
		if c.productsLoaded && c.owner == uid {
			out := cloneProducts(c.products)
			c.mu.RUnlock()
			return out
		}
		c.mu.RUnlock()
	}

	// id и rev снимаются вместе: если за время сборки зеркала изменятся,
	// собранный список не сохраняется
	fetched := c.GetWishlistProductIDs(ctx, forceRefresh)
	c.mu.RLock()
	rev := c.rev
	ids := fetched
	if c.idsLoaded && c.owner == uid {
		ids = cloneIDSet(c.ids)
	}
	c.mu.RUnlock()

	products := make([]domain.Product, 0, len(ids))
	for id := range ids {
		p, found := c.catalog.GetProductByID(ctx, id)
		if !found {
			c.log.Warnf(ctx, "wishlist product not in catalog id=%s", id)
			continue
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	c.mu.Lock()
	if c.rev == rev && c.idsLoaded && c.owner == uid {
		c.products = products
		c.productsLoaded = true
		c.rev++
	}
	c.mu.Unlock()

	return cloneProducts(products)
}

// AddToWishlist — добавить товар. Документ имеет id "{userId}_{productId}",
// поэтому повторное добавление перезаписывает тот же документ.
func (c *WishlistCache) AddToWishlist(ctx context.Context, productID string) bool {
	uid, ok := c.currentUser(ctx)
	if !ok || productID == "" {
		return false
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if !c.isLoadedFor(uid) {
		if _, err := c.fetchLocked(ctx, uid); err != nil {
			c.log.Warnf(ctx, "wishlist load before add failed user=%s, starting empty: %v", uid, err)
			c.reset(uid)
		}
	}

	item := domain.WishlistItem{
		ID:        domain.WishlistItemID(uid, productID),
		ProductID: productID,
		UserID:    uid,
		AddedAt:   c.now().UTC(),
	}
	if err := c.store.Put(ctx, domain.CollectionWishlist, item.ID, validate.EncodeWishlistItem(&item)); err != nil {
		countOp(wishlistCacheName, opWriteFailed)
		c.log.Errorf(ctx, "wishlist put failed id=%s: %v", item.ID, err)
		return false
	}
	countOp(wishlistCacheName, opWrite)

	// товар ищем до захвата mu: каталог может пойти в хранилище
	c.mu.RLock()
	needProduct := c.productsLoaded && c.owner == uid && !containsProduct(c.products, productID)
	c.mu.RUnlock()
	var (
		product      domain.Product
		productFound bool
	)
	if needProduct {
		product, productFound = c.catalog.GetProductByID(ctx, productID)
	}

	c.mu.Lock()
	if c.idsLoaded && c.owner == uid {
		c.ids[productID] = struct{}{}
		c.rev++
		if c.productsLoaded && !containsProduct(c.products, productID) {
			switch {
			case productFound:
				c.products = insertSorted(c.products, product)
			case !needProduct:
				// список собран, пока шла запись; товар в нём не искали
				c.products = nil
				c.productsLoaded = false
			}
		}
		setItems(wishlistCacheName, len(c.ids))
	}
	c.mu.Unlock()
	return true
}

// RemoveFromWishlist — удалить товар из избранного в хранилище и в обоих зеркалах.
func (c *WishlistCache) RemoveFromWishlist(ctx context.Context, productID string) bool {
	uid, ok := c.currentUser(ctx)
	if !ok || productID == "" {
		return false
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	docID := domain.WishlistItemID(uid, productID)
	if err := c.store.Delete(ctx, domain.CollectionWishlist, docID); err != nil {
		countOp(wishlistCacheName, opWriteFailed)
		c.log.Errorf(ctx, "wishlist delete failed id=%s: %v", docID, err)
		return false
	}
	countOp(wishlistCacheName, opWrite)

	c.mu.Lock()
	if c.owner == uid {
		c.rev++
		if c.idsLoaded {
			delete(c.ids, productID)
			setItems(wishlistCacheName, len(c.ids))
		}
		if c.productsLoaded {
			c.products = removeProduct(c.products, productID)
		}
	}
	c.mu.Unlock()
	return true
}

// IsInWishlist — членство товара; при незагруженном зеркале сначала загружает его.
func (c *WishlistCache) IsInWishlist(ctx context.Context, productID string) bool {
	uid, ok := c.currentUser(ctx)
	if !ok {
		return false
	}
	if !c.isLoadedFor(uid) {
		c.GetWishlistProductIDs(ctx, false)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.idsLoaded || c.owner != uid {
		return false
	}
	_, in := c.ids[productID]
	return in
}

// GetItemCount — размер множества id, 0 если не загружено.
func (c *WishlistCache) GetItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ids)
}

// InvalidateProducts — сбросить только список товаров: после изменения каталога
// он будет собран заново при следующем обращении.
func (c *WishlistCache) InvalidateProducts() {
	c.mu.Lock()
	c.products = nil
	c.productsLoaded = false
	c.rev++
	c.mu.Unlock()
}

// ClearCache — сбросить оба зеркала.
func (c *WishlistCache) ClearCache() {
	c.mu.Lock()
	c.owner = ""
	c.ids = nil
	c.idsLoaded = false
	c.products = nil
	c.productsLoaded = false
	c.gen++
	c.rev++
	c.mu.Unlock()
	setItems(wishlistCacheName, 0)
}

// ------вспомогательные функции------

func (c *WishlistCache) currentUser(ctx context.Context) (string, bool) {
	uid, ok := c.users.CurrentUserID(ctx)
	if !ok || uid == "" {
		countOp(wishlistCacheName, opNoUser)
		c.log.Warnf(ctx, "wishlist: %v", domain.ErrUnauthenticated)
		return "", false
	}
	return uid, true
}

// fetchLocked — загрузка множества id; вызывается под writeMu.
func (c *WishlistCache) fetchLocked(ctx context.Context, uid string) (map[string]struct{}, error) {
	c.mu.RLock()
	gen := c.gen
	c.mu.RUnlock()

	countOp(wishlistCacheName, opFetch)
	docs, err := c.store.Query(ctx, domain.CollectionWishlist, "userId", uid)
	if err != nil {
		return nil, fmt.Errorf("query wishlist user=%s: %w", uid, err)
	}

	ids := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		item, err := validate.DecodeWishlistItem(doc)
		if err != nil {
			countOp(wishlistCacheName, opSkipped)
			c.log.Warnf(ctx, "skip wishlist doc=%s: %v", doc.ID, err)
			continue
		}
		ids[item.ProductID] = struct{}{}
	}

	c.mu.Lock()
	if c.gen == gen {
		if c.owner != uid {
			c.products = nil
			c.productsLoaded = false
		}
		c.owner = uid
		c.ids = ids
		c.idsLoaded = true
		c.rev++
		setItems(wishlistCacheName, len(ids))
	}
	c.mu.Unlock()

	return cloneIDSet(ids), nil
}

func (c *WishlistCache) reset(uid string) {
	c.mu.Lock()
	c.owner = uid
	c.ids = map[string]struct{}{}
	c.idsLoaded = true
	c.products = nil
	c.productsLoaded = false
	c.rev++
	c.mu.Unlock()
	setItems(wishlistCacheName, 0)
}

func (c *WishlistCache) isLoadedFor(uid string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.idsLoaded && c.owner == uid
}

func (c *WishlistCache) idsFor(uid string) (map[string]struct{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.idsLoaded || c.owner != uid {
		return map[string]struct{}{}, false
	}
	return cloneIDSet(c.ids), true
}

func containsProduct(products []domain.Product, id string) bool {
	for i := range products {
		if products[i].ID == id {
			return true
		}
	}
	return false
}

func insertSorted(products []domain.Product, p domain.Product) []domain.Product {
	i := sort.Search(len(products), func(i int) bool { return products[i].ID >= p.ID })
	products = append(products, domain.Product{})
	copy(products[i+1:], products[i:])
	products[i] = p
	return products
}

func removeProduct(products []domain.Product, id string) []domain.Product {
	for i := range products {
		if products[i].ID == id {
			return append(products[:i], products[i+1:]...)
		}
	}
	return products
}
