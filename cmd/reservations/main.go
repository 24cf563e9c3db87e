package main

import (
	"context"

	"tavolo/internal/availability"
	"tavolo/internal/reservations/handler"
	resservice "tavolo/internal/reservations/service"
	resvalidator "tavolo/internal/reservations/validator"
	"tavolo/internal/restaurants/repository"
	restservice "tavolo/internal/restaurants/service"
	"tavolo/internal/zenchef"
	"tavolo/pkg/app"
	"tavolo/pkg/config"
	"tavolo/pkg/kafka"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	cfg.LogConfiguration()

	cfg.Log.Info("Starting Reservations service")

	mongoClient := connectMongo(cfg)
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			cfg.Log.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	producer := initProducer(cfg)
	if producer != nil {
		defer func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		}()
	}

	restaurantSvc, availabilitySvc, reservationSvc := initServices(cfg, mongoClient, producer)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(mongoClient, cfg.Log),
		handler.NewReservationHandler(restaurantSvc, availabilitySvc, reservationSvc, cfg.Log),
	)
	serverApp.Run()
}

func connectMongo(cfg *config.Config) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		cfg.Log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		cfg.Log.Fatal("Failed to ping MongoDB", "error", err)
	}

	cfg.Log.Info("Connected to MongoDB", "database", cfg.MongoDatabaseName)
	return client
}

func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg := kafka.Load()
	if !kafkaCfg.Enabled {
		cfg.Log.Info("Kafka publishing disabled")
		return nil
	}

	producer, err := kafka.NewProducer(kafkaCfg)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	cfg.Log.Info("Kafka producer initialized", "topic", kafkaCfg.Topic)
	return producer
}

func initServices(cfg *config.Config, mongoClient *mongo.Client, producer *kafka.Producer) (restservice.RestaurantService, availability.Service, resservice.ReservationService) {
	restaurantRepo := repository.NewMongoRestaurantRepository(mongoClient, cfg)
	restaurantSvc := restservice.NewRestaurantService(restaurantRepo, cfg)

	zenchefClient := zenchef.NewClient(cfg.ZenchefBaseURL, cfg.ZenchefTimeout, cfg.Log)
	availabilitySvc := availability.NewService(zenchefClient, cfg)

	reservationValidator := resvalidator.NewReservationValidator(cfg.Log)

	// A nil interface must stay nil: wrapping a nil *kafka.Producer in the
	// interface would defeat the publisher's disabled check.
	var events resservice.EventPublisher
	if producer != nil {
		events = producer
	}
	reservationSvc := resservice.NewReservationService(zenchefClient, reservationValidator, events, cfg)

	cfg.Log.Info("Reservation services initialized", "zenchef_base_url", cfg.ZenchefBaseURL)
	return restaurantSvc, availabilitySvc, reservationSvc
}
