package main

import (
	"context"
	"log"

	"retail_inventory/internal/application/analytics"
	"retail_inventory/internal/application/inventory"
	"retail_inventory/internal/config"
	ginserver "retail_inventory/internal/infrastructure/http/gin"
	kafkainfra "retail_inventory/internal/infrastructure/messaging/kafka"
	"retail_inventory/internal/infrastructure/persistence/memory"
	"retail_inventory/internal/interfaces/http/handler"
	"retail_inventory/internal/interfaces/http/router"
	"retail_inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zapLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("create logger failed: %v", err)
	}
	defer zapLog.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := memory.NewStore(nil)

	// Kafka là optional: không có broker thì chạy standalone, event bị bỏ qua
	var publisher inventory.Publisher = inventory.NopPublisher{}
	if cfg.Kafka.Enabled() {
		producer, err := kafkainfra.NewOrderEventProducer(cfg.Kafka, zapLog)
		if err != nil {
			zapLog.Fatal("create kafka producer failed", logger.Error(err))
		}
		defer producer.Close(ctx)
		publisher = producer
	}

	inventoryService := inventory.NewService(store, publisher, zapLog, nil, cfg.Inventory.LowStockThreshold)
	analyticsService := analytics.NewService(store)

	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine, inventoryHandler, analyticsHandler)

	server := ginserver.NewServer(cfg.Server, engine)
	zapLog.Info("server starting", logger.String("addr", cfg.Server.Address()))
	if err := server.Run(); err != nil {
		zapLog.Fatal("server run failed", logger.Error(err))
	}
}
