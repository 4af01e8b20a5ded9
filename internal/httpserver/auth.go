package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lobitos-storefront/internal/domain"
)

// requireAdmin gates the admin surface. The redirect field tells the view
// layer where to send the user, matching the storefront's login redirect.
func requireAdmin(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := deps.Session.Current()
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":  "sign in required",
				"redirect": "/login",
			})
			return
		}
		if user.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message":  "admin access required",
				"redirect": "/login",
			})
			return
		}
		c.Next()
	}
}
