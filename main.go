package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ordering-backend/config"
	httpapi "ordering-backend/internal/api/http"
	"ordering-backend/internal/service"
	"ordering-backend/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	redisClient := config.MustInitRedis()
	defer redisClient.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCache(redisClient, 24*time.Hour)

	orderWriter := config.NewKafkaWriter(config.Getenv("KAFKA_ORDER_TOPIC", "orders"))
	defer orderWriter.Close()
	publisher := storage.NewKafkaPublisher(orderWriter)

	images := storage.NewS3ImageStore(config.MustInitS3(), os.Getenv("S3_BUCKET"), os.Getenv("S3_BASE_URL"))

	qrEncoder := service.DefaultQRGenerator{BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost")}

	accounts := service.NewAccountService(repo)
	restaurants := service.NewRestaurantService(repo, repo, images, cache)
	catalog := service.NewCatalogService(repo, repo, images, cache)
	menu := service.NewMenuService(repo, repo, cache)
	orders := service.NewOrderService(repo, repo, repo, cache, publisher, qrEncoder)
	reviews := service.NewReviewService(repo, repo, cache, publisher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orderReader := config.NewKafkaReader(config.Getenv("KAFKA_ORDER_TOPIC", "orders"), "sales-aggregator")
	defer orderReader.Close()
	consumer := service.NewSalesConsumer(orderReader, cache)
	go consumer.Start(ctx)

	handler := httpapi.NewHandler(accounts, restaurants, catalog, menu, orders, reviews)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Getenv("PORT", "8080"), router)
}
