package repository

import (
	"context"
	"errors"
	"fmt"

	restauranterrors "tavolo/internal/restaurants/errors"
	"tavolo/pkg/config"
	"tavolo/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	RestaurantsCollection  = "Restaurants"
	SeatingAreasCollection = "SeatingAreas"
)

type RestaurantRepository interface {
	FindByID(ctx context.Context, id string) (*model.Restaurant, error)
	FindSeatingAreas(ctx context.Context, restaurantID string) ([]model.SeatingArea, error)
}

type mongoRestaurantRepository struct {
	cfg          *config.Config
	restaurants  *mongo.Collection
	seatingAreas *mongo.Collection
}

func NewMongoRestaurantRepository(client *mongo.Client, cfg *config.Config) RestaurantRepository {
	db := client.Database(cfg.MongoDatabaseName)
	return &mongoRestaurantRepository{
		cfg:          cfg,
		restaurants:  db.Collection(RestaurantsCollection),
		seatingAreas: db.Collection(SeatingAreasCollection),
	}
}

func (r *mongoRestaurantRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.cfg.ReadTimeout)
}

func (r *mongoRestaurantRepository) FindByID(ctx context.Context, id string) (*model.Restaurant, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", restauranterrors.ErrInvalidID, id)
	}

	var restaurant model.Restaurant
	err = r.restaurants.FindOne(ctx, bson.M{"_id": objectID}).Decode(&restaurant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, restauranterrors.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to find restaurant: %w", err)
	}

	return &restaurant, nil
}

func (r *mongoRestaurantRepository) FindSeatingAreas(ctx context.Context, restaurantID string) ([]model.SeatingArea, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.seatingAreas.Find(ctx, bson.M{"restaurant_id": restaurantID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find seating areas: %w", err)
	}
	defer func() {
		if closeErr := cursor.Close(ctx); closeErr != nil {
			r.cfg.Log.Warn("Failed to close seating areas cursor", "error", closeErr)
		}
	}()

	var areas []model.SeatingArea
	if err := cursor.All(ctx, &areas); err != nil {
		return nil, fmt.Errorf("failed to decode seating areas: %w", err)
	}

	return areas, nil
}
