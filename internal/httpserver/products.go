package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lobitos-storefront/internal/store/catalog"
)

type productRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description localizedRequest  `json:"description"`
	Price       float64           `json:"price" binding:"required,gt=0"`
	Images      []string          `json:"images" binding:"required,min=1"`
	Category    string            `json:"category" binding:"required"`
	DetailsEN   []string          `json:"detailsEn"`
	DetailsES   []string          `json:"detailsEs"`
	Measures    map[string]string `json:"measures"`
}

type localizedRequest struct {
	EN string `json:"en"`
	ES string `json:"es"`
}

func listProductsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := deps.Catalog.Products()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not load catalog"})
			return
		}

		// limit serves the featured-products strip on the home view.
		if v := c.Query("limit"); v != "" {
			limit, err := strconv.Atoi(v)
			if err != nil || limit < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid limit"})
				return
			}
			if limit < len(products) {
				products = products[:limit]
			}
		}

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func createProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		in := catalog.Input{
			Name:        req.Name,
			Description: domainLocalized(req.Description),
			Price:       req.Price,
			Images:      req.Images,
			Category:    domainCategory(req.Category),
			Measures:    req.Measures,
		}
		if len(req.DetailsEN) > 0 || len(req.DetailsES) > 0 {
			in.Details = domainDetails(req.DetailsEN, req.DetailsES)
		}

		product, err := deps.Catalog.Add(in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not save product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func deleteProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Catalog.Delete(c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not delete product"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
