package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/storefront/internal/domain"
)

type signInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

func (h *Handler) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idToken is required"})
		return
	}
	uid, err := h.session.SignIn(c.Request.Context(), req.IDToken)
	if err != nil {
		h.respondError(c, "SignIn", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": uid})
}

func (h *Handler) signOut(c *gin.Context) {
	h.session.SignOut(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// listProducts — каталог; ?category=X — только категория, ?refresh=true — принудительная загрузка.
func (h *Handler) listProducts(c *gin.Context) {
	ctx := c.Request.Context()
	refresh := refreshParam(c)

	var products []domain.Product
	if category := c.Query("category"); category != "" {
		if refresh {
			h.products.GetProducts(ctx, true)
		}
		products = h.products.GetProductsByCategory(ctx, category)
	} else {
		products = h.products.GetProducts(ctx, refresh)
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) getProduct(c *gin.Context) {
	p, ok := h.products.GetProductByID(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}
