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

type ParishServiceInterface interface {
	Create(ctx context.Context, request request_models.ParishRequest) (*response_models.ParishResponse, error)
	Update(ctx context.Context, parishID uuid.UUID, request request_models.ParishRequest) (*response_models.ParishResponse, error)
	Delete(ctx context.Context, parishID uuid.UUID) error
	List(ctx context.Context) ([]response_models.ParishResponse, error)
}

type ParishService struct {
	parishRepo repositories.ParishRepository
	cityRepo   repositories.CityRepository
}

func NewParishService(parishRepo repositories.ParishRepository, cityRepo repositories.CityRepository) ParishServiceInterface {
	return &ParishService{
		parishRepo: parishRepo,
		cityRepo:   cityRepo,
	}
}

func (s *ParishService) Create(ctx context.Context, request request_models.ParishRequest) (*response_models.ParishResponse, error) {
	cityID, err := parseUUID(request.CityID)
	if err != nil {
		return nil, err
	}

	city, err := s.cityRepo.FindByID(ctx, cityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrValidation
	}

	// Parish names are unique per city, not globally.
	count, err := s.parishRepo.CountByNameInCity(ctx, request.Name, cityID, uuid.Nil)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, utils.ErrConflict
	}

	parish := &db_models.Parish{
		Name:    request.Name,
		CityID:  cityID,
		Address: request.Address,
		Phone:   request.Phone,
		Email:   request.Email,
	}
	if err := s.parishRepo.Insert(ctx, parish); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrConflict
		}
		return nil, utils.ErrDatabaseError
	}

	parish.City = city
	response := toParishResponse(parish)
	return &response, nil
}

func (s *ParishService) Update(ctx context.Context, parishID uuid.UUID, request request_models.ParishRequest) (*response_models.ParishResponse, error) {
	parish, err := s.parishRepo.FindByID(ctx, parishID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parish == nil {
		return nil, utils.ErrNotFound
	}

	cityID, err := parseUUID(request.CityID)
	if err != nil {
		return nil, err
	}

	city, err := s.cityRepo.FindByID(ctx, cityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrValidation
	}

	count, err := s.parishRepo.CountByNameInCity(ctx, request.Name, cityID, parishID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, utils.ErrConflict
	}

	parish.Name = request.Name
	parish.CityID = cityID
	parish.Address = request.Address
	parish.Phone = request.Phone
	parish.Email = request.Email
	if err := s.parishRepo.Update(ctx, parish); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrConflict
		}
		return nil, utils.ErrDatabaseError
	}

	parish.City = city
	response := toParishResponse(parish)
	return &response, nil
}

func (s *ParishService) Delete(ctx context.Context, parishID uuid.UUID) error {
	parish, err := s.parishRepo.FindByID(ctx, parishID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if parish == nil {
		return utils.ErrNotFound
	}

	priests, err := s.parishRepo.CountPriests(ctx, parishID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if priests > 0 {
		return utils.ErrInvalidState
	}

	if err := s.parishRepo.Delete(ctx, parishID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ParishService) List(ctx context.Context) ([]response_models.ParishResponse, error) {
	parishes, err := s.parishRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ParishResponse, 0, len(parishes))
	for i := range parishes {
		responses = append(responses, toParishResponse(&parishes[i]))
	}
	return responses, nil
}

func toParishResponse(parish *db_models.Parish) response_models.ParishResponse {
	response := response_models.ParishResponse{
		ID:      parish.ID.String(),
		Name:    parish.Name,
		CityID:  parish.CityID.String(),
		Address: parish.Address,
		Phone:   parish.Phone,
		Email:   parish.Email,
	}
	if parish.City != nil {
		response.CityName = parish.City.Name
	}
	return response
}
