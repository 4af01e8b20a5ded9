package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// loginRequest deliberately has no format check beyond presence: the login
// policy accepts any email string.
type loginRequest struct {
	Email string `json:"email" binding:"required"`
}

func loginHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		user, err := deps.Session.Login(req.Email)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func logoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Session.Logout(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not clear session"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func currentUserHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := deps.Session.Current()
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "no active session"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
