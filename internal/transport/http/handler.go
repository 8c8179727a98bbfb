package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/Gunvolt24/storefront/pkg/httpx"
)

// Services — зависимости HTTP-слоя.
type Services struct {
	Session  ports.SessionService
	Checkout ports.CheckoutService
	Products ports.ProductCatalog
	Cart     ports.Cart
	Wishlist ports.Wishlist
}

// Handler — HTTP-обработчики поверх кэшей и прикладных сервисов.
type Handler struct {
	session  ports.SessionService
	checkout ports.CheckoutService
	products ports.ProductCatalog
	cart     ports.Cart
	wishlist ports.Wishlist
	log      ports.Logger
	timeout  time.Duration // таймаут обработки запроса; 0 — без ограничения
}

// NewHandler — DI-конструктор.
func NewHandler(s Services, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{
		session:  s.Session,
		checkout: s.Checkout,
		products: s.Products,
		cart:     s.Cart,
		wishlist: s.Wishlist,
		log:      log,
		timeout:  timeout,
	}
}

// withTimeout — ограничивает контекст запроса таймаутом обработчика.
func (h *Handler) withTimeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// requireUser — 401 без вошедшего пользователя; uid кладётся в контекст для логов.
func (h *Handler) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := h.session.CurrentUserID(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
			return
		}
		c.Request = c.Request.WithContext(ctxmeta.WithUserID(c.Request.Context(), uid))
		c.Next()
	}
}

// respondError — код ответа по доменной ошибке.
func (h *Handler) respondError(c *gin.Context, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyCart):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		h.log.Errorf(c.Request.Context(), "%s failed: %v", op, err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// refreshParam — флаг ?refresh=true.
func refreshParam(c *gin.Context) bool { return httpx.QueryBool(c, "refresh") }
