package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-market-api/internal/blobstore"
	"go-market-api/internal/cart"
	"go-market-api/internal/email"
	"go-market-api/internal/messaging/kafka/consumer"
	"go-market-api/internal/order"
	"go-market-api/internal/outbox"
	"go-market-api/internal/product"
)

func RunConsumer() error {
	log.Println("[CONSUMER] Starting order notification consumer...")

	// 1. Connect to database and redis
	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Println("[CONSUMER] Database connected")

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// 2. Build the order service
	productRepo := product.NewRepository(db)
	productService := product.NewService(productRepo, logger)
	cartService := cart.NewService(cart.Deps{
		Accounts: cart.NewDBStore(db),
		Guests:   cart.NewGuestStore(blobstore.NewRedis(redisClient, "cart:guest:")),
		Products: productService,
		Logger:   logger,
	})

	emailService, err := email.NewResendServiceFromEnv()
	if err != nil {
		log.Printf("[CONSUMER] email disabled: %v", err)
		emailService = email.NewNoopService()
	}

	orderService := order.NewService(order.Deps{
		DB:         db,
		Repo:       order.NewRepository(db),
		OutboxRepo: outbox.NewRepository(db),
		Carts:      cartService,
		Emails:     emailService,
		Logger:     logger,
	})

	// 3. Setup Kafka reader
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "order.events",
		GroupID: "order-notification-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	// 4. Start consuming
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, orderService)

	// 5. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
