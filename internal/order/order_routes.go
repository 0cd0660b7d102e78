package order

import (
	"go-market-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	checkout := r.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware())
	{
		checkout.POST("", handler.Checkout)
	}

	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("", handler.Index)
		orders.GET("/:orderId", handler.Show)
	}
}
