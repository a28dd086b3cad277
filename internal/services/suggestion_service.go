package services

import (
	"context"

	"github.com/google/uuid"

	"clero/internal/models/db_models"
	"clero/internal/models/request_models"
	"clero/internal/models/response_models"
	"clero/internal/repositories"
	"clero/pkg/utils"
)

type SuggestionServiceInterface interface {
	Submit(ctx context.Context, accountID uuid.UUID, request request_models.SubmitSuggestionRequest) (*response_models.SuggestionResponse, error)
	ListMine(ctx context.Context, accountID uuid.UUID) ([]response_models.SuggestionResponse, error)
	ListByStatus(ctx context.Context, status string) ([]response_models.SuggestionResponse, error)
	Decide(ctx context.Context, suggestionID uuid.UUID, decision string, adminID uuid.UUID) error
}

type SuggestionService struct {
	suggestionRepo repositories.SuggestionRepository
	priestRepo     repositories.PriestRepository
}

func NewSuggestionService(suggestionRepo repositories.SuggestionRepository, priestRepo repositories.PriestRepository) SuggestionServiceInterface {
	return &SuggestionService{
		suggestionRepo: suggestionRepo,
		priestRepo:     priestRepo,
	}
}

// Submit files a single-field change proposal. The current value is
// snapshotted here so the review screen shows what was true at
// submission time, whatever happens to the profile afterwards.
func (s *SuggestionService) Submit(ctx context.Context, accountID uuid.UUID, request request_models.SubmitSuggestionRequest) (*response_models.SuggestionResponse, error) {
	if !db_models.IsSuggestionField(request.Field) {
		return nil, utils.ErrValidation
	}

	priest, err := s.priestRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if priest == nil || priest.Status != db_models.StatusApproved {
		return nil, utils.ErrForbidden
	}

	suggestion := &db_models.ProfileSuggestion{
		PriestID:       priest.ID,
		Field:          request.Field,
		CurrentValue:   snapshotFieldValue(priest, request.Field),
		SuggestedValue: request.SuggestedValue,
		Reason:         request.Reason,
		Status:         db_models.StatusPending,
	}

	if err := s.suggestionRepo.Insert(ctx, suggestion); err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toSuggestionResponse(suggestion)
	return &response, nil
}

func (s *SuggestionService) ListMine(ctx context.Context, accountID uuid.UUID) ([]response_models.SuggestionResponse, error) {
	priest, err := s.priestRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if priest == nil {
		return nil, utils.ErrForbidden
	}

	suggestions, err := s.suggestionRepo.ListByPriest(ctx, priest.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toSuggestionResponses(suggestions), nil
}

func (s *SuggestionService) ListByStatus(ctx context.Context, status string) ([]response_models.SuggestionResponse, error) {
	if status == "" {
		status = db_models.StatusPending
	}
	switch status {
	case db_models.StatusPending, db_models.StatusApproved, db_models.StatusRejected:
	default:
		return nil, utils.ErrValidation
	}

	suggestions, err := s.suggestionRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toSuggestionResponses(suggestions), nil
}

// Decide resolves a pending suggestion. Approval writes the suggested
// value verbatim into the priest profile in the same transaction.
// Structural fields (parish, specialties) are never written this way:
// free text cannot be coerced into a foreign key, so those suggestions
// can only be resolved through a direct admin edit.
func (s *SuggestionService) Decide(ctx context.Context, suggestionID uuid.UUID, decision string, adminID uuid.UUID) error {
	if decision != DecisionApprove && decision != DecisionReject {
		return utils.ErrValidation
	}

	suggestion, err := s.suggestionRepo.FindByID(ctx, suggestionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if suggestion == nil {
		return utils.ErrNotFound
	}
	if suggestion.Status != db_models.StatusPending {
		return utils.ErrInvalidState
	}

	if decision == DecisionReject {
		rejected, err := s.suggestionRepo.Reject(ctx, suggestion.ID, adminID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if !rejected {
			return utils.ErrInvalidState
		}
		return nil
	}

	if db_models.IsStructuralField(suggestion.Field) {
		return utils.ErrInvalidState
	}

	column, ok := suggestionFieldColumn(suggestion.Field)
	if !ok {
		return utils.ErrValidation
	}

	approved, err := s.suggestionRepo.ApproveWithFieldWrite(ctx, suggestion.ID, suggestion.PriestID, column, suggestion.SuggestedValue, adminID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !approved {
		return utils.ErrInvalidState
	}

	return nil
}

// suggestionFieldColumn maps a free-text suggestion field to the priest
// column it writes. Structural fields are deliberately absent.
func suggestionFieldColumn(field string) (string, bool) {
	switch field {
	case db_models.FieldFirstName:
		return "first_name", true
	case db_models.FieldLastName:
		return "last_name", true
	case db_models.FieldPhone:
		return "phone", true
	case db_models.FieldBiography:
		return "biography", true
	case db_models.FieldProfileImage:
		return "profile_image_url", true
	}
	return "", false
}

func snapshotFieldValue(priest *db_models.Priest, field string) string {
	switch field {
	case db_models.FieldFirstName:
		return priest.FirstName
	case db_models.FieldLastName:
		return priest.LastName
	case db_models.FieldPhone:
		return priest.Phone
	case db_models.FieldBiography:
		return priest.Biography
	case db_models.FieldProfileImage:
		return priest.ProfileImageURL
	case db_models.FieldParish:
		if priest.Parish != nil {
			return priest.Parish.Name
		}
		return ""
	case db_models.FieldSpecialties:
		return joinSpecialtyNames(priest.Specialties)
	}
	return ""
}

func toSuggestionResponse(suggestion *db_models.ProfileSuggestion) response_models.SuggestionResponse {
	response := response_models.SuggestionResponse{
		ID:             suggestion.ID.String(),
		PriestID:       suggestion.PriestID.String(),
		Field:          suggestion.Field,
		CurrentValue:   suggestion.CurrentValue,
		SuggestedValue: suggestion.SuggestedValue,
		Reason:         suggestion.Reason,
		Status:         suggestion.Status,
		ReviewedAt:     formatTime(suggestion.ReviewedAt),
		CreatedAt:      suggestion.CreatedAt,
	}
	if suggestion.Priest != nil {
		response.PriestName = suggestion.Priest.FirstName + " " + suggestion.Priest.LastName
	}
	return response
}

func toSuggestionResponses(suggestions []db_models.ProfileSuggestion) []response_models.SuggestionResponse {
	responses := make([]response_models.SuggestionResponse, 0, len(suggestions))
	for i := range suggestions {
		responses = append(responses, toSuggestionResponse(&suggestions[i]))
	}
	return responses
}
