package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contactlearncert-blip/restaurant-menu-backend/config"
	httpapi "github.com/contactlearncert-blip/restaurant-menu-backend/internal/api/http"
	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/service"
	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/storage"

	"github.com/joho/godotenv"
)

const (
	orderEventsTopic = "order-events"
	salesGroupID     = "sales-aggregation"
	statusCacheTTL   = 24 * time.Hour
	uploadsDir       = "./uploads"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCache(rdb, statusCacheTTL)

	writer := config.NewKafkaWriter(orderEventsTopic)
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	reader := config.NewKafkaReader(orderEventsTopic, salesGroupID)
	defer reader.Close()

	catalog := service.NewCatalogService(repo, storage.NewLocalImageStore(uploadsDir))
	orders := service.NewOrderService(repo, cache, publisher)
	reports := service.NewReportService(repo)
	qr := service.DefaultQRGenerator{BaseURL: config.ClientBaseURL()}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := service.NewConsumer(reader, cache)
	go consumer.Start(ctx)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-c
		log.Printf("Received %s, shutting down", sig)
		cancel()
		os.Exit(0)
	}()

	handler := httpapi.NewHandler(catalog, orders, reports, qr,
		config.ClientBaseURL(), config.StaffBaseURL())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	httpapi.StartServer(":"+port, httpapi.NewRouter(handler))
}
