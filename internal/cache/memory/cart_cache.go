package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/flight"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var _ ports.Cart = (*CartCache)(nil)

// CartCache — корзина текущего пользователя.
//
// Каждая мутация сначала пишется в хранилище и только после успеха
// применяется к зеркалу. writeMu сериализует мутации целиком (вместе с записью
// в хранилище) и загрузку зеркала, mu защищает само зеркало и не держится во время I/O.
type CartCache struct {
	store  ports.RemoteStore
	users  ports.UserProvider
	log    ports.Logger
	flight *flight.Group[[]domain.CartItem]
	newID  func() string

	writeMu sync.Mutex

	mu     sync.RWMutex
	owner  string // пользователь, которому принадлежит зеркало
	items  []domain.CartItem
	loaded bool
	gen    uint64
}

// NewCartCache — DI-конструктор; пользователь берётся из users на каждом вызове.
func NewCartCache(store ports.RemoteStore, users ports.UserProvider, log ports.Logger) *CartCache {
	return &CartCache{
		store:  store,
		users:  users,
		log:    log,
		flight: flight.New[[]domain.CartItem](cartCacheName),
		newID:  func() string { return uuid.NewString() },
	}
}

// GetCartItems — строки корзины текущего пользователя.
func (c *CartCache) GetCartItems(ctx context.Context, forceRefresh bool) []domain.CartItem {
	uid, ok := c.currentUser(ctx)
	if !ok {
		return []domain.CartItem{}
	}
	if !forceRefresh {
		if snap, ok := c.snapshotFor(uid); ok {
			countOp(cartCacheName, opHit)
			return snap
		}
	}
	countOp(cartCacheName, opMiss)

	res, err := c.flight.Do(ctx, uid, func(fctx context.Context) ([]domain.CartItem, error) {
		c.writeMu.Lock()
		defer c.writeMu.Unlock()
		return c.fetchLocked(fctx, uid)
	})
	if err != nil {
		countOp(cartCacheName, opFallback)
		c.log.Errorf(ctx, "cart fetch failed user=%s, serving cached copy: %v", uid, err)
		snap, _ := c.snapshotFor(uid)
		return snap
	}
	return cloneCartItems(res.Val)
}

// AddToCart — добавить строку. Строка с тем же (productId, size, color)
// не дублируется: у существующей увеличивается количество.
func (c *CartCache) AddToCart(ctx context.Context, item domain.CartItem) bool {
	uid, ok := c.currentUser(ctx)
	if !ok {
		return false
	}
	if item.ProductID == "" || item.Quantity < 1 {
		c.log.Warnf(ctx, "add to cart rejected product=%s quantity=%d", item.ProductID, item.Quantity)
		return false
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if !c.isLoadedFor(uid) {
		if _, err := c.fetchLocked(ctx, uid); err != nil {
			c.log.Warnf(ctx, "cart load before add failed user=%s, starting empty: %v", uid, err)
			c.reset(uid, []domain.CartItem{})
		}
	}

	item.UserID = uid
	if item.ID == "" {
		item.ID = c.newID()
	}

	toWrite := item
	key := item.Key()
	c.mu.RLock()
	existing, found := findCartItem(c.items, func(ci *domain.CartItem) bool { return ci.Key() == key })
	c.mu.RUnlock()
	if found {
		toWrite = existing
		toWrite.Quantity += item.Quantity
	}

	if !c.put(ctx, &toWrite) {
		return false
	}
	c.apply(uid, func(items []domain.CartItem) []domain.CartItem {
		return upsertCartItem(items, toWrite)
	})
	c.log.Infof(ctx, "cart item saved id=%s product=%s quantity=%d merged=%t", toWrite.ID, toWrite.ProductID, toWrite.Quantity, found)
	return true
}

// UpdateQuantity — новое количество строки; значение меньше 1 удаляет строку.
func (c *CartCache) UpdateQuantity(ctx context.Context, cartItemID string, newQuantity int) bool {
	if newQuantity < 1 {
		return c.RemoveFromCart(ctx, cartItemID)
	}
	uid, ok := c.currentUser(ctx)
	if !ok {
		return false
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if !c.isLoadedFor(uid) {
		if _, err := c.fetchLocked(ctx, uid); err != nil {
			c.log.Errorf(ctx, "cart load before update failed user=%s: %v", uid, err)
			return false
		}
	}

	c.mu.RLock()
	item, found := findCartItem(c.items, func(ci *domain.CartItem) bool { return ci.ID == cartItemID })
	c.mu.RUnlock()
	if !found {
		c.log.Warnf(ctx, "cart item not found id=%s", cartItemID)
		return false
	}

	item.Quantity = newQuantity
	if !c.put(ctx, &item) {
		return false
	}
	c.apply(uid, func(items []domain.CartItem) []domain.CartItem {
		return upsertCartItem(items, item)
	})
	return true
}

// RemoveFromCart — удалить строку. Успех определяется удалением в хранилище;
// отсутствие строки в зеркале не ошибка.
func (c *CartCache) RemoveFromCart(ctx context.Context, cartItemID string) bool {
	uid, ok := c.currentUser(ctx)
	if !ok {
		return false
	}
	if cartItemID == "" {
		return false
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.store.Delete(ctx, domain.CollectionCart, cartItemID); err != nil {
		countOp(cartCacheName, opWriteFailed)
		c.log.Errorf(ctx, "cart delete failed id=%s: %v", cartItemID, err)
		return false
	}
	countOp(cartCacheName, opWrite)
	c.apply(uid, func(items []domain.CartItem) []domain.CartItem {
		return removeCartItem(items, cartItemID)
	})
	return true
}

// ClearCart — удалить все строки пользователя в хранилище и очистить зеркало.
// При частичной неудаче из зеркала убираются только удалённые строки.
func (c *CartCache) ClearCart(ctx context.Context) bool {
	uid, ok := c.currentUser(ctx)
	if !ok {
		return false
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	docs, err := c.store.Query(ctx, domain.CollectionCart, "userId", uid)
	if err != nil {
		countOp(cartCacheName, opWriteFailed)
		c.log.Errorf(ctx, "cart query before clear failed user=%s: %v", uid, err)
		return false
	}

	for _, doc := range docs {
		if err := c.store.Delete(ctx, domain.CollectionCart, doc.ID); err != nil {
			countOp(cartCacheName, opWriteFailed)
			c.log.Errorf(ctx, "cart clear failed id=%s: %v", doc.ID, err)
			return false
		}
		c.apply(uid, func(items []domain.CartItem) []domain.CartItem {
			return removeCartItem(items, doc.ID)
		})
	}
	countOp(cartCacheName, opWrite)
	c.reset(uid, []domain.CartItem{})
	c.log.Infof(ctx, "cart cleared user=%s removed=%d", uid, len(docs))
	return true
}

// GetTotalAmount — сумма по зеркалу без обращения к хранилищу.
func (c *CartCache) GetTotalAmount() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := decimal.Zero
	for i := range c.items {
		total = total.Add(c.items[i].TotalPrice())
	}
	return total
}

// GetItemCount — число строк в зеркале.
func (c *CartCache) GetItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// ClearCache — сбросить зеркало (выход пользователя); данные в хранилище не трогаются.
func (c *CartCache) ClearCache() {
	c.mu.Lock()
	c.owner = ""
	c.items = nil
	c.loaded = false
	c.gen++
	c.mu.Unlock()
	setItems(cartCacheName, 0)
}

// ------вспомогательные функции------

func (c *CartCache) currentUser(ctx context.Context) (string, bool) {
	uid, ok := c.users.CurrentUserID(ctx)
	if !ok || uid == "" {
		countOp(cartCacheName, opNoUser)
		c.log.Warnf(ctx, "cart: %v", domain.ErrUnauthenticated)
		return "", false
	}
	return uid, true
}

// fetchLocked — загрузка корзины пользователя; вызывается под writeMu.
func (c *CartCache) fetchLocked(ctx context.Context, uid string) ([]domain.CartItem, error) {
	c.mu.RLock()
	gen := c.gen
	c.mu.RUnlock()

	countOp(cartCacheName, opFetch)
	docs, err := c.store.Query(ctx, domain.CollectionCart, "userId", uid)
	if err != nil {
		return nil, fmt.Errorf("query cart user=%s: %w", uid, err)
	}

	items := make([]domain.CartItem, 0, len(docs))
	for _, doc := range docs {
		item, err := validate.DecodeCartItem(doc)
		if err != nil {
			countOp(cartCacheName, opSkipped)
			c.log.Warnf(ctx, "skip cart doc=%s: %v", doc.ID, err)
			continue
		}
		items = append(items, item)
	}

	c.mu.Lock()
	if c.gen == gen {
		c.owner = uid
		c.items = items
		c.loaded = true
		setItems(cartCacheName, len(items))
	}
	c.mu.Unlock()

	return cloneCartItems(items), nil
}

func (c *CartCache) put(ctx context.Context, item *domain.CartItem) bool {
	if err := c.store.Put(ctx, domain.CollectionCart, item.ID, validate.EncodeCartItem(item)); err != nil {
		countOp(cartCacheName, opWriteFailed)
		c.log.Errorf(ctx, "cart put failed id=%s: %v", item.ID, err)
		return false
	}
	countOp(cartCacheName, opWrite)
	return true
}

// apply — мутация зеркала, если оно всё ещё принадлежит uid.
func (c *CartCache) apply(uid string, fn func([]domain.CartItem) []domain.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded || c.owner != uid {
		return
	}
	c.items = fn(c.items)
	setItems(cartCacheName, len(c.items))
}

func (c *CartCache) reset(uid string, items []domain.CartItem) {
	c.mu.Lock()
	c.owner = uid
	c.items = items
	c.loaded = true
	c.mu.Unlock()
	setItems(cartCacheName, len(items))
}

func (c *CartCache) isLoadedFor(uid string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded && c.owner == uid
}

func (c *CartCache) snapshotFor(uid string) ([]domain.CartItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded || c.owner != uid {
		return []domain.CartItem{}, false
	}
	return cloneCartItems(c.items), true
}
