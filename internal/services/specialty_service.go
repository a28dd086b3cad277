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

type SpecialtyServiceInterface interface {
	Create(ctx context.Context, request request_models.SpecialtyRequest) (*response_models.SpecialtyResponse, error)
	Update(ctx context.Context, specialtyID uuid.UUID, request request_models.SpecialtyRequest) (*response_models.SpecialtyResponse, error)
	Delete(ctx context.Context, specialtyID uuid.UUID) error
	List(ctx context.Context) ([]response_models.SpecialtyResponse, error)
}

type SpecialtyService struct {
	specialtyRepo repositories.SpecialtyRepository
}

func NewSpecialtyService(specialtyRepo repositories.SpecialtyRepository) SpecialtyServiceInterface {
	return &SpecialtyService{specialtyRepo: specialtyRepo}
}

func (s *SpecialtyService) Create(ctx context.Context, request request_models.SpecialtyRequest) (*response_models.SpecialtyResponse, error) {
	count, err := s.specialtyRepo.CountByName(ctx, request.Name, uuid.Nil)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, utils.ErrConflict
	}

	specialty := &db_models.Specialty{Name: request.Name, Description: request.Description}
	if err := s.specialtyRepo.Insert(ctx, specialty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrConflict
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SpecialtyResponse{
		ID:          specialty.ID.String(),
		Name:        specialty.Name,
		Description: specialty.Description,
	}, nil
}

func (s *SpecialtyService) Update(ctx context.Context, specialtyID uuid.UUID, request request_models.SpecialtyRequest) (*response_models.SpecialtyResponse, error) {
	specialty, err := s.specialtyRepo.FindByID(ctx, specialtyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if specialty == nil {
		return nil, utils.ErrNotFound
	}

	count, err := s.specialtyRepo.CountByName(ctx, request.Name, specialtyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, utils.ErrConflict
	}

	specialty.Name = request.Name
	specialty.Description = request.Description
	if err := s.specialtyRepo.Update(ctx, specialty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrConflict
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SpecialtyResponse{
		ID:          specialty.ID.String(),
		Name:        specialty.Name,
		Description: specialty.Description,
	}, nil
}

func (s *SpecialtyService) Delete(ctx context.Context, specialtyID uuid.UUID) error {
	specialty, err := s.specialtyRepo.FindByID(ctx, specialtyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if specialty == nil {
		return utils.ErrNotFound
	}

	linked, err := s.specialtyRepo.CountLinkedPriests(ctx, specialtyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if linked > 0 {
		return utils.ErrInvalidState
	}

	if err := s.specialtyRepo.Delete(ctx, specialtyID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SpecialtyService) List(ctx context.Context) ([]response_models.SpecialtyResponse, error) {
	specialties, err := s.specialtyRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.SpecialtyResponse, 0, len(specialties))
	for _, specialty := range specialties {
		responses = append(responses, response_models.SpecialtyResponse{
			ID:          specialty.ID.String(),
			Name:        specialty.Name,
			Description: specialty.Description,
		})
	}
	return responses, nil
}
