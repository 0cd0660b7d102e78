package app

import (
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-market-api/internal/blobstore"
	"go-market-api/internal/cart"
	"go-market-api/internal/email"
	"go-market-api/internal/middleware"
	"go-market-api/internal/order"
	"go-market-api/internal/outbox"
	"go-market-api/internal/product"
)

func registerModules(router *gin.Engine, db *sql.DB, redisClient *redis.Client, logger *zap.Logger) {
	// --- Repositories ---
	productRepo := product.NewRepository(db)
	orderRepo := order.NewRepository(db)
	outboxRepo := outbox.NewRepository(db)

	// --- Cart backends ---
	guestBlobs := blobstore.NewRedis(redisClient, "cart:guest:")
	accountStore := cart.NewDBStore(db)
	guestStore := cart.NewGuestStore(guestBlobs)

	// --- Services ---
	productService := product.NewService(productRepo, logger)
	variationsService := product.NewVariationsService(db, productRepo, logger)
	cartService := cart.NewService(cart.Deps{
		Accounts: accountStore,
		Guests:   guestStore,
		Products: productService,
		Logger:   logger,
	})

	emailService, err := email.NewResendServiceFromEnv()
	if err != nil {
		log.Printf("email disabled: %v", err)
		emailService = email.NewNoopService()
	}

	orderService := order.NewService(order.Deps{
		DB:         db,
		Repo:       orderRepo,
		OutboxRepo: outboxRepo,
		Carts:      cartService,
		Emails:     emailService,
		Logger:     logger,
	})

	// --- Handlers ---
	productHandler := product.NewHandler(productService, variationsService)
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	{
		product.RegisterRoutes(api, productHandler)
		cart.RegisterRoutes(api, cartHandler)
		order.RegisterRoutes(api, orderHandler)
	}
}
