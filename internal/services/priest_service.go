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

const (
	DecisionApprove = "APPROVE"
	DecisionReject  = "REJECT"
)

type PriestServiceInterface interface {
	ListPending(ctx context.Context) ([]response_models.PriestResponse, error)
	Get(ctx context.Context, priestID uuid.UUID) (*response_models.PriestResponse, error)
	Decide(ctx context.Context, priestID uuid.UUID, decision string, adminID uuid.UUID) error
	Update(ctx context.Context, priestID uuid.UUID, request request_models.UpdatePriestRequest) (*response_models.PriestResponse, error)
}

type PriestService struct {
	priestRepo repositories.PriestRepository
	parishRepo repositories.ParishRepository
}

func NewPriestService(priestRepo repositories.PriestRepository, parishRepo repositories.ParishRepository) PriestServiceInterface {
	return &PriestService{
		priestRepo: priestRepo,
		parishRepo: parishRepo,
	}
}

func (p *PriestService) ListPending(ctx context.Context) ([]response_models.PriestResponse, error) {
	priests, err := p.priestRepo.ListByStatus(ctx, db_models.StatusPending)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PriestResponse, 0, len(priests))
	for i := range priests {
		responses = append(responses, toPriestResponse(&priests[i]))
	}
	return responses, nil
}

func (p *PriestService) Get(ctx context.Context, priestID uuid.UUID) (*response_models.PriestResponse, error) {
	priest, err := p.priestRepo.FindByID(ctx, priestID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if priest == nil {
		return nil, utils.ErrNotFound
	}

	response := toPriestResponse(priest)
	return &response, nil
}

// Decide resolves a pending registration. Approval also promotes the
// linked account to the PRIEST role; both writes commit together.
func (p *PriestService) Decide(ctx context.Context, priestID uuid.UUID, decision string, adminID uuid.UUID) error {
	if decision != DecisionApprove && decision != DecisionReject {
		return utils.ErrValidation
	}

	priest, err := p.priestRepo.FindByID(ctx, priestID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if priest == nil {
		return utils.ErrNotFound
	}

	decided, err := p.priestRepo.Decide(ctx, priest.ID, priest.AccountID, decision == DecisionApprove, adminID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !decided {
		// Already processed, possibly by a concurrent admin action.
		return utils.ErrInvalidState
	}

	return nil
}

// Update is the admin direct edit: the only path that may change the
// parish reference or re-shape a decided record.
func (p *PriestService) Update(ctx context.Context, priestID uuid.UUID, request request_models.UpdatePriestRequest) (*response_models.PriestResponse, error) {
	priest, err := p.priestRepo.FindByID(ctx, priestID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if priest == nil {
		return nil, utils.ErrNotFound
	}

	priest.FirstName = request.FirstName
	priest.LastName = request.LastName
	priest.Phone = request.Phone
	priest.Biography = request.Biography
	priest.ProfileImageURL = request.ProfileImageURL

	ordained, err := parseDate(request.OrdainedDate)
	if err != nil {
		return nil, err
	}
	priest.OrdainedDate = ordained

	priest.ParishID = nil
	if request.ParishID != "" {
		parishID, err := parseUUID(request.ParishID)
		if err != nil {
			return nil, err
		}
		parish, err := p.parishRepo.FindByID(ctx, parishID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if parish == nil {
			return nil, utils.ErrValidation
		}
		priest.ParishID = &parishID
	}

	specialtyIDs, err := parseUUIDs(request.SpecialtyIDs)
	if err != nil {
		return nil, err
	}

	if err := p.priestRepo.Update(ctx, priest, specialtyIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrValidation
		}
		return nil, utils.ErrDatabaseError
	}

	return p.Get(ctx, priestID)
}

func toPriestResponse(priest *db_models.Priest) response_models.PriestResponse {
	response := response_models.PriestResponse{
		ID:              priest.ID.String(),
		FirstName:       priest.FirstName,
		LastName:        priest.LastName,
		Phone:           priest.Phone,
		OrdainedDate:    formatDate(priest.OrdainedDate),
		Biography:       priest.Biography,
		ProfileImageURL: priest.ProfileImageURL,
		Specialties:     specialtyNames(priest.Specialties),
		Status:          priest.Status,
		ApprovedAt:      formatTime(priest.ApprovedAt),
	}

	if priest.Account != nil {
		response.Email = priest.Account.Email
	}
	if priest.Parish != nil {
		response.ParishID = priest.Parish.ID.String()
		response.ParishName = priest.Parish.Name
		if priest.Parish.City != nil {
			response.CityName = priest.Parish.City.Name
		}
	}

	return response
}
