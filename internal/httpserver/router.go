package httpserver

import (
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, store Pinger, deps Deps) (*gin.Engine, error) {
	if deps.Catalog == nil || deps.Cart == nil || deps.Session == nil || deps.I18n == nil || deps.Subs == nil {
		return nil, errors.New("httpserver: missing store dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(store))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps))

		api.GET("/cart", getCartHandler(deps))
		api.POST("/cart/items", addCartItemHandler(deps))
		api.PATCH("/cart/items/:id", updateCartItemHandler(deps))
		api.DELETE("/cart/items/:id", removeCartItemHandler(deps))
		api.DELETE("/cart", clearCartHandler(deps))
		api.GET("/cart/checkout", checkoutHandler(deps))

		api.POST("/session", loginHandler(deps))
		api.DELETE("/session", logoutHandler(deps))
		api.GET("/session", currentUserHandler(deps))

		api.GET("/language", getLanguageHandler(deps))
		api.PUT("/language", setLanguageHandler(deps))
		api.GET("/translations", translationsHandler(deps))

		api.POST("/subscriptions", subscribeHandler(deps))

		admin := api.Group("/admin", requireAdmin(deps))
		{
			admin.POST("/products", createProductHandler(deps))
			admin.DELETE("/products/:id", deleteProductHandler(deps))
			admin.GET("/subscriptions", listSubscriptionsHandler(deps))
		}
	}

	return router, nil
}
