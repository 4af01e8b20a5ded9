package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lobitos-storefront/internal/checkout"
	"lobitos-storefront/internal/domain"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type updateItemRequest struct {
	// Pointer so 0 (meaning remove) binds without tripping required.
	Quantity *int `json:"quantity" binding:"required"`
}

func cartResponse(deps Deps) gin.H {
	return gin.H{
		"items": deps.Cart.Items(),
		"total": deps.Cart.Total(),
	}
}

func getCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartResponse(deps))
	}
}

func addCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		product, err := deps.Catalog.Get(req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not load product"})
			return
		}

		if err := deps.Cart.Add(*product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not update cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(deps))
	}
}

func updateCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if err := deps.Cart.UpdateQuantity(c.Param("id"), *req.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not update cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(deps))
	}
}

func removeCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Cart.Remove(c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not update cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(deps))
	}
}

func clearCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Cart.Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not update cart"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func checkoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := deps.Cart.Items()
		if len(items) == 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "cart is empty"})
			return
		}
		order := checkout.Build(items, deps.Cart.Total(), deps.WhatsAppPhone)
		c.JSON(http.StatusOK, order)
	}
}
