package cart

import (
	"go-market-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.OptionalAuthMiddleware())
	{
		carts.GET("", handler.Index)

		items := carts.Group("/items/:productId")
		{
			items.POST("", handler.Store)
			items.PATCH("", handler.Update)
			items.DELETE("", handler.Destroy)
		}
	}

	migrate := r.Group("/cart/migrate")
	migrate.Use(middleware.AuthMiddleware())
	{
		migrate.POST("", handler.Migrate)
	}
}
