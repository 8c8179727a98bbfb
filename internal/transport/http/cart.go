package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/storefront/internal/domain"
)

type addCartItemRequest struct {
	ProductID     string `json:"productId" binding:"required"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
	Quantity      int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, nonNilItems(h.cart.GetCartItems(c.Request.Context(), refreshParam(c))))
}

// addToCart — строка корзины из товара каталога; цена фиксируется с учётом скидки.
func (h *Handler) addToCart(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	ctx := c.Request.Context()
	p, ok := h.products.GetProductByID(ctx, req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	item := domain.CartItem{
		ProductID:     p.ID,
		ProductName:   p.Name,
		ProductImage:  p.ImageURL,
		Price:         p.PriceAfterDiscount(),
		SelectedSize:  req.SelectedSize,
		SelectedColor: req.SelectedColor,
		Quantity:      req.Quantity,
	}
	if !h.cart.AddToCart(ctx, item) {
		c.JSON(http.StatusConflict, gin.H{"error": "cart item was not saved"})
		return
	}
	c.JSON(http.StatusCreated, nonNilItems(h.cart.GetCartItems(ctx, false)))
}

func (h *Handler) updateCartItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	if !containsCartItem(h.cart.GetCartItems(ctx, false), id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
		return
	}
	if !h.cart.UpdateQuantity(ctx, id, *req.Quantity) {
		c.JSON(http.StatusConflict, gin.H{"error": "cart item was not updated"})
		return
	}
	c.JSON(http.StatusOK, nonNilItems(h.cart.GetCartItems(ctx, false)))
}

func (h *Handler) removeCartItem(c *gin.Context) {
	if !h.cart.RemoveFromCart(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusConflict, gin.H{"error": "cart item was not removed"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) clearCart(c *gin.Context) {
	if !h.cart.ClearCart(c.Request.Context()) {
		c.JSON(http.StatusConflict, gin.H{"error": "cart was not fully cleared"})
		return
	}
	c.Status(http.StatusNoContent)
}

// cartSummary — сумма и число строк; зеркало подгружается при необходимости.
func (h *Handler) cartSummary(c *gin.Context) {
	h.cart.GetCartItems(c.Request.Context(), false)
	c.JSON(http.StatusOK, gin.H{
		"total": h.cart.GetTotalAmount(),
		"count": h.cart.GetItemCount(),
	})
}

func containsCartItem(items []domain.CartItem, id string) bool {
	for i := range items {
		if items[i].ID == id {
			return true
		}
	}
	return false
}

func nonNilItems(items []domain.CartItem) []domain.CartItem {
	if items == nil {
		return []domain.CartItem{}
	}
	return items
}
