package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductCatalog — чтение каталога через кэш товаров.
type ProductCatalog interface {
	GetProducts(ctx context.Context, forceRefresh bool) []domain.Product
	Refresh(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (domain.Product, bool)
	GetProductsByCategory(ctx context.Context, category string) []domain.Product
	ClearCache()
}

// Cart — операции кэша корзины.
type Cart interface {
	GetCartItems(ctx context.Context, forceRefresh bool) []domain.CartItem
	AddToCart(ctx context.Context, item domain.CartItem) bool
	UpdateQuantity(ctx context.Context, cartItemID string, newQuantity int) bool
	RemoveFromCart(ctx context.Context, cartItemID string) bool
	ClearCart(ctx context.Context) bool
	GetTotalAmount() decimal.Decimal
	GetItemCount() int
	ClearCache()
}

// Wishlist — операции кэша избранного.
type Wishlist interface {
	GetWishlistProductIDs(ctx context.Context, forceRefresh bool) map[string]struct{}
	GetWishlistProducts(ctx context.Context, forceRefresh bool) []domain.Product
	AddToWishlist(ctx context.Context, productID string) bool
	RemoveFromWishlist(ctx context.Context, productID string) bool
	IsInWishlist(ctx context.Context, productID string) bool
	GetItemCount() int
	InvalidateProducts()
	ClearCache()
}
