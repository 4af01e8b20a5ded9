package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lobitos-storefront/internal/store/i18n"
)

type languageRequest struct {
	Language string `json:"language" binding:"required"`
}

func getLanguageHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"language": deps.I18n.Language()})
	}
}

func setLanguageHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req languageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if err := deps.I18n.SetLanguage(i18n.Language(req.Language)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"language": deps.I18n.Language()})
	}
}

func translationsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"language":     deps.I18n.Language(),
			"translations": deps.I18n.Tree(),
		})
	}
}
