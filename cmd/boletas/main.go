package main

import (
	"transcontrol/internal/boletas/handler"
	"transcontrol/internal/boletas/repository"
	"transcontrol/internal/boletas/service"
	"transcontrol/internal/boletas/validator"
	"transcontrol/pkg/app"
	"transcontrol/pkg/config"
	"transcontrol/pkg/kafka"
	kafka_config "transcontrol/pkg/kafka/config"
)

func main() {
	cfg := config.Load("boletas")
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	publisher := initPublisher(cfg)
	if producer, ok := publisher.(*kafka.Producer); ok {
		defer producer.Close()
	}

	boletaRepo := repository.NewMongoBoletaRepository(cfg)
	boletaValidator := validator.NewBoletaValidator()
	boletaService := service.NewBoletaService(boletaRepo, boletaValidator, publisher, cfg)
	boletaHandler := handler.NewBoletaHandler(boletaService, cfg.Log)

	application := app.New(cfg)
	application.Setup(boletaHandler)
	application.Run()
}

// initPublisher returns nil when no brokers are configured; the service
// then skips event publishing entirely.
func initPublisher(cfg *config.Config) service.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka publishing disabled: no brokers configured")
		return nil
	}

	producer, err := kafka.NewProducer(kafka_config.Default(cfg.KafkaBrokers), cfg.KafkaTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka publishing enabled", "topic", cfg.KafkaTopic)
	return producer
}
