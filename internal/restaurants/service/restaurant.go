package service

import (
	"context"
	"errors"

	restauranterrors "tavolo/internal/restaurants/errors"
	"tavolo/internal/restaurants/repository"
	"tavolo/pkg/config"
	apperrors "tavolo/pkg/errors"
	"tavolo/pkg/model"
)

// RestaurantService loads the per-restaurant configuration the orchestration
// engine needs: the restaurant record plus its seating areas, bundled so
// downstream code performs no hidden reads.
type RestaurantService interface {
	Context(ctx context.Context, restaurantID string) (model.RestaurantContext, error)
}

type restaurantService struct {
	repo repository.RestaurantRepository
	cfg  *config.Config
}

func NewRestaurantService(repo repository.RestaurantRepository, cfg *config.Config) RestaurantService {
	return &restaurantService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *restaurantService) Context(ctx context.Context, restaurantID string) (model.RestaurantContext, error) {
	restaurant, err := s.repo.FindByID(ctx, restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, restauranterrors.ErrInvalidID):
			return model.RestaurantContext{}, apperrors.InvalidInput("invalid restaurant id")
		case errors.Is(err, restauranterrors.ErrRestaurantNotFound):
			return model.RestaurantContext{}, apperrors.NotFoundWithID("restaurant", restaurantID)
		default:
			return model.RestaurantContext{}, apperrors.Internal("Failed to load restaurant", err)
		}
	}

	areas, err := s.repo.FindSeatingAreas(ctx, restaurantID)
	if err != nil {
		return model.RestaurantContext{}, apperrors.Internal("Failed to load seating areas", err)
	}

	return model.RestaurantContext{
		Restaurant:   *restaurant,
		SeatingAreas: areas,
	}, nil
}
