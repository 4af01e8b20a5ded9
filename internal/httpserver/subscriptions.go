package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lobitos-storefront/internal/domain"
)

type subscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func subscribeHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		sub, err := deps.Subs.Add(req.Email)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				c.JSON(http.StatusConflict, gin.H{"message": "Email already subscribed"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not save subscription"})
			return
		}

		if deps.Notifier != nil {
			deps.Notifier.Notify(sub.Email)
		}
		c.JSON(http.StatusCreated, sub)
	}
}

func listSubscriptionsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		subs, err := deps.Subs.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not load subscriptions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subscriptions": subs})
	}
}
