package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/storefront/pkg/httpx"
)

// NewRouter — gin-роутер витрины. otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware(), httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "not found"}) })
	r.NoMethod(func(c *gin.Context) { c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"}) })

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/", h.withTimeout())

	api.POST("/session", h.signIn)
	api.DELETE("/session", h.signOut)

	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)

	user := api.Group("/", h.requireUser())

	user.GET("/cart", h.getCart)
	user.POST("/cart", h.addToCart)
	user.DELETE("/cart", h.clearCart)
	user.GET("/cart/summary", h.cartSummary)
	user.PATCH("/cart/:id", h.updateCartItem)
	user.DELETE("/cart/:id", h.removeCartItem)

	user.GET("/wishlist", h.getWishlist)
	user.GET("/wishlist/ids", h.getWishlistIDs)
	user.GET("/wishlist/:productId", h.isInWishlist)
	user.PUT("/wishlist/:productId", h.addToWishlist)
	user.DELETE("/wishlist/:productId", h.removeFromWishlist)

	user.POST("/orders", h.placeOrder)
	user.GET("/orders", h.listOrders)
	user.GET("/profile", h.profile)

	return r
}
