package rest

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/httpx"
)

const (
	defaultOrdersLimit = 20
	maxOrdersLimit     = 100
)

func (h *Handler) getWishlist(c *gin.Context) {
	products := h.wishlist.GetWishlistProducts(c.Request.Context(), refreshParam(c))
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// getWishlistIDs — id товаров избранного в отсортированном виде.
func (h *Handler) getWishlistIDs(c *gin.Context) {
	set := h.wishlist.GetWishlistProductIDs(c.Request.Context(), refreshParam(c))
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	c.JSON(http.StatusOK, ids)
}

func (h *Handler) isInWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"inWishlist": h.wishlist.IsInWishlist(c.Request.Context(), c.Param("productId"))})
}

func (h *Handler) addToWishlist(c *gin.Context) {
	if !h.wishlist.AddToWishlist(c.Request.Context(), c.Param("productId")) {
		c.JSON(http.StatusConflict, gin.H{"error": "wishlist item was not saved"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) removeFromWishlist(c *gin.Context) {
	if !h.wishlist.RemoveFromWishlist(c.Request.Context(), c.Param("productId")) {
		c.JSON(http.StatusConflict, gin.H{"error": "wishlist item was not removed"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) placeOrder(c *gin.Context) {
	var req domain.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout request"})
		return
	}
	order, err := h.checkout.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "PlaceOrder", err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) listOrders(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, defaultOrdersLimit, maxOrdersLimit)
	orders, err := h.checkout.ListOrders(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, "ListOrders", err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) profile(c *gin.Context) {
	summary, err := h.checkout.Profile(c.Request.Context())
	if err != nil {
		h.respondError(c, "Profile", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
