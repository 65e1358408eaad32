package main

import (
	"context"
	"log"
	"os"

	"github.com/DtronicE/menu-magic-offline/config"
	httpapi "github.com/DtronicE/menu-magic-offline/internal/api/http"
	"github.com/DtronicE/menu-magic-offline/internal/service"
	"github.com/DtronicE/menu-magic-offline/internal/storage"
	"github.com/DtronicE/menu-magic-offline/internal/ws"
)

func main() {
	config.Load()

	hub := ws.NewHub()
	go hub.Run()

	var menuRepo service.MenuRepository
	var orderRepo service.OrderRepository

	if os.Getenv("DB_HOST") != "" {
		db := config.MustInitPostgres()
		defer db.Close()

		store := storage.NewPostgresStore(db)
		if err := store.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		if err := store.SeedMenu(storage.DefaultMenu()); err != nil {
			log.Fatal("Failed to seed menu:", err)
		}
		menuRepo, orderRepo = store, store
		log.Println("Using Postgres table store")
	} else {
		rdb := config.MustInitRedis()
		defer rdb.Close()

		store := storage.NewRedisStore(rdb)
		if err := store.Seed(storage.DefaultMenu()); err != nil {
			log.Fatal("Failed to seed menu:", err)
		}
		menuRepo, orderRepo = store, store
		log.Println("No database configured, using Redis fallback store")
	}

	topic := config.Getenv("KAFKA_TOPIC", "store-changes")

	var publisher service.ChangePublisher
	var consumer service.ChangeConsumer
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter(topic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)

		reader := config.NewKafkaReader(topic, "menu-magic-dispatch")
		defer reader.Close()
		consumer = storage.NewKafkaConsumer(reader)
	}

	catalogSvc := service.NewCatalogService(menuRepo, publisher)
	orderSvc := service.NewOrderService(orderRepo, menuRepo, publisher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := service.NewDispatcher(consumer, catalogSvc, orderSvc, hub)
	go dispatcher.Run(ctx)

	handler := httpapi.NewHandler(catalogSvc, orderSvc, service.DefaultQRGenerator{}, hub)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Getenv("PORT", "8080"), router)
}
