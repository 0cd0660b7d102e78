package product

import (
	"go-market-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		products.GET("", handler.List)
		products.GET("/:slug", handler.GetBySlug)
	}

	// Vendor variations editor
	vendorProducts := r.Group("/vendor/products")
	vendorProducts.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("vendor", "admin"))
	{
		vendorProducts.GET("/:productId/variations", handler.LoadVariations)
		vendorProducts.PUT("/:productId/variations", handler.SaveVariations)
	}
}
