package service

import (
	"errors"
	"strconv"

	"foodcourt/internal/domain"
)

var (
	ErrBadRestaurantID    = errors.New("invalid restaurant id")
	ErrNoRestaurantsFound = errors.New("no restaurants found")
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) CreateRestaurant(rest *domain.Restaurant) error {
	if rest.Name == "" {
		return errors.New("restaurant name is required")
	}
	return s.repo.CreateRestaurant(rest)
}

func (s *CatalogService) CreateDish(dish *domain.Dish) error {
	if dish.Name == "" || dish.Price.IsNegative() {
		return errors.New("invalid dish payload")
	}
	return s.repo.CreateDish(dish)
}

// ListRestaurants filters by dish name substring and/or restaurant id,
// both taken raw from the query string.
func (s *CatalogService) ListRestaurants(dishName, restaurantID string) ([]domain.Restaurant, error) {
	id := 0
	if restaurantID != "" {
		parsed, err := strconv.Atoi(restaurantID)
		if err != nil || parsed <= 0 {
			return nil, ErrBadRestaurantID
		}
		id = parsed
	}

	restaurants, err := s.repo.ListRestaurants(dishName, id)
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return nil, ErrNoRestaurantsFound
	}
	return restaurants, nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
