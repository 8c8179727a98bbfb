package memory

import (
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// Имена кэшей — метка "cache" в метриках.
const (
	productCacheName  = "products"
	cartCacheName     = "cart"
	wishlistCacheName = "wishlist"
)

// Операции — метка "op" в метриках.
const (
	opHit         = "hit"
	opMiss        = "miss"
	opFetch       = "fetch"
	opFallback    = "fallback"
	opSkipped     = "skipped"
	opWrite       = "write"
	opWriteFailed = "write_failed"
	opNoUser      = "no_user"
)

func countOp(cache, op string) {
	metrics.CacheOps.WithLabelValues(cache, op).Inc()
}

func setItems(cache string, n int) {
	metrics.CacheItems.WithLabelValues(cache).Set(float64(n))
}

// cloneProducts — глубокая копия списка; nil превращается в пустой срез.
func cloneProducts(in []domain.Product) []domain.Product {
	out := make([]domain.Product, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// cloneCartItems — копия списка (CartItem не содержит ссылочных полей).
func cloneCartItems(in []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(in))
	copy(out, in)
	return out
}

func cloneIDSet(in map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for id := range in {
		out[id] = struct{}{}
	}
	return out
}

// upsertCartItem — заменить строку с тем же id или добавить в конец.
func upsertCartItem(items []domain.CartItem, item domain.CartItem) []domain.CartItem {
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func removeCartItem(items []domain.CartItem, id string) []domain.CartItem {
	for i := range items {
		if items[i].ID == id {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

func findCartItem(items []domain.CartItem, pred func(*domain.CartItem) bool) (domain.CartItem, bool) {
	for i := range items {
		if pred(&items[i]) {
			return items[i], true
		}
	}
	return domain.CartItem{}, false
}
