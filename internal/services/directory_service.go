package services

import (
	"context"

	"clero/internal/models/db_models"
	"clero/internal/models/response_models"
	"clero/internal/repositories"
	"clero/pkg/utils"
)

type DirectoryServiceInterface interface {
	Internal(ctx context.Context) ([]response_models.PriestResponse, error)
	Public(ctx context.Context, filter repositories.DirectoryFilter) ([]response_models.PublicPriestResponse, error)
	PublicParishes(ctx context.Context) ([]response_models.ParishOption, error)
}

type DirectoryService struct {
	directoryRepo repositories.DirectoryRepository
}

func NewDirectoryService(directoryRepo repositories.DirectoryRepository) DirectoryServiceInterface {
	return &DirectoryService{directoryRepo: directoryRepo}
}

// Internal returns the full listing, contact fields included. Access
// is restricted at the route level to admins and approved priests.
func (d *DirectoryService) Internal(ctx context.Context) ([]response_models.PriestResponse, error) {
	priests, err := d.directoryRepo.ListApproved(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PriestResponse, 0, len(priests))
	for i := range priests {
		responses = append(responses, toPriestResponse(&priests[i]))
	}
	return responses, nil
}

// Public returns the stripped listing: phone, email and biography never
// appear in the response shape at all.
func (d *DirectoryService) Public(ctx context.Context, filter repositories.DirectoryFilter) ([]response_models.PublicPriestResponse, error) {
	priests, err := d.directoryRepo.SearchApproved(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PublicPriestResponse, 0, len(priests))
	for i := range priests {
		responses = append(responses, toPublicPriestResponse(&priests[i]))
	}
	return responses, nil
}

func (d *DirectoryService) PublicParishes(ctx context.Context) ([]response_models.ParishOption, error) {
	parishes, err := d.directoryRepo.ParishesWithApprovedPriests(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	options := make([]response_models.ParishOption, 0, len(parishes))
	for _, parish := range parishes {
		options = append(options, response_models.ParishOption{
			ID:   parish.ID.String(),
			Name: parish.Name,
		})
	}
	return options, nil
}

func toPublicPriestResponse(priest *db_models.Priest) response_models.PublicPriestResponse {
	response := response_models.PublicPriestResponse{
		ID:              priest.ID.String(),
		FirstName:       priest.FirstName,
		LastName:        priest.LastName,
		ProfileImageURL: priest.ProfileImageURL,
		Specialties:     specialtyNames(priest.Specialties),
	}
	if priest.Parish != nil {
		response.ParishName = priest.Parish.Name
		if priest.Parish.City != nil {
			response.CityName = priest.Parish.City.Name
		}
	}
	return response
}
