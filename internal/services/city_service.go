package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clero/internal/models/db_models"
	"clero/internal/models/request_models"
	"clero/internal/models/response_models"
	"clero/internal/repositories"
	"clero/pkg/utils"
)

type CityServiceInterface interface {
	Create(ctx context.Context, request request_models.CityRequest) (*response_models.CityResponse, error)
	Update(ctx context.Context, cityID uuid.UUID, request request_models.CityRequest) (*response_models.CityResponse, error)
	Delete(ctx context.Context, cityID uuid.UUID) error
	List(ctx context.Context) ([]response_models.CityResponse, error)
}

type CityService struct {
	cityRepo repositories.CityRepository
}

func NewCityService(cityRepo repositories.CityRepository) CityServiceInterface {
	return &CityService{cityRepo: cityRepo}
}

func (s *CityService) Create(ctx context.Context, request request_models.CityRequest) (*response_models.CityResponse, error) {
	count, err := s.cityRepo.CountByName(ctx, request.Name, uuid.Nil)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, utils.ErrConflict
	}

	city := &db_models.City{Name: request.Name, State: request.State}
	if err := s.cityRepo.Insert(ctx, city); err != nil {
		// The unique index stays the arbiter under concurrent writers.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrConflict
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CityResponse{
		ID:    city.ID.String(),
		Name:  city.Name,
		State: city.State,
	}, nil
}

func (s *CityService) Update(ctx context.Context, cityID uuid.UUID, request request_models.CityRequest) (*response_models.CityResponse, error) {
	city, err := s.cityRepo.FindByID(ctx, cityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrNotFound
	}

	count, err := s.cityRepo.CountByName(ctx, request.Name, cityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, utils.ErrConflict
	}

	city.Name = request.Name
	city.State = request.State
	if err := s.cityRepo.Update(ctx, city); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrConflict
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CityResponse{
		ID:    city.ID.String(),
		Name:  city.Name,
		State: city.State,
	}, nil
}

func (s *CityService) Delete(ctx context.Context, cityID uuid.UUID) error {
	city, err := s.cityRepo.FindByID(ctx, cityID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if city == nil {
		return utils.ErrNotFound
	}

	parishes, err := s.cityRepo.CountParishes(ctx, cityID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if parishes > 0 {
		return utils.ErrInvalidState
	}

	if err := s.cityRepo.Delete(ctx, cityID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CityService) List(ctx context.Context) ([]response_models.CityResponse, error) {
	cities, err := s.cityRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CityResponse, 0, len(cities))
	for _, city := range cities {
		responses = append(responses, response_models.CityResponse{
			ID:          city.ID.String(),
			Name:        city.Name,
			State:       city.State,
			ParishCount: len(city.Parishes),
		})
	}
	return responses, nil
}
