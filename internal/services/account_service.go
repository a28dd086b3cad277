package services

import (
	"context"
	"encoding/base64"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clero/internal/models/db_models"
	"clero/internal/models/request_models"
	"clero/internal/models/response_models"
	"clero/internal/repositories"
	"clero/pkg/imagestore"
	"clero/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterPriestRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	Me(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	priestRepo  repositories.PriestRepository
	parishRepo  repositories.ParishRepository
	images      imagestore.Uploader
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	priestRepo repositories.PriestRepository,
	parishRepo repositories.ParishRepository,
	images imagestore.Uploader,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		priestRepo:  priestRepo,
		parishRepo:  parishRepo,
		images:      images,
	}
}

// Register creates the account (UNPRIVILEGED) and the pending priest
// profile in one transaction. The profile image upload happens after
// the commit and never fails the registration.
func (a *AccountService) Register(ctx context.Context, request request_models.RegisterPriestRequest) (*response_models.AccountResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrConflict
	}

	priest := &db_models.Priest{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
		Biography: request.Biography,
		Status:    db_models.StatusPending,
	}

	if request.ParishID != "" {
		parishID, err := parseUUID(request.ParishID)
		if err != nil {
			return nil, err
		}
		parish, err := a.parishRepo.FindByID(ctx, parishID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if parish == nil {
			return nil, utils.ErrValidation
		}
		priest.ParishID = &parishID
	}

	ordained, err := parseDate(request.OrdainedDate)
	if err != nil {
		return nil, err
	}
	priest.OrdainedDate = ordained

	specialtyIDs, err := parseUUIDs(request.SpecialtyIDs)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		DisplayName:  request.FirstName + " " + request.LastName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUnprivileged,
	}

	if err := a.priestRepo.CreateWithAccount(ctx, account, priest, specialtyIDs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrConflict
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrValidation
		}
		return nil, utils.ErrDatabaseError
	}

	a.uploadProfileImage(ctx, priest.ID, request.ImageName, request.ImageData)

	return &response_models.AccountResponse{
		ID:           account.ID.String(),
		DisplayName:  account.DisplayName,
		Email:        account.Email,
		Role:         account.Role,
		PriestID:     priest.ID.String(),
		PriestStatus: priest.Status,
	}, nil
}

// uploadProfileImage is best-effort: failures are logged and the
// priest record simply keeps an empty image URL.
func (a *AccountService) uploadProfileImage(ctx context.Context, priestID uuid.UUID, name string, data string) {
	if data == "" {
		return
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		log.Printf("Skipping profile image for priest %s: %v", priestID, err)
		return
	}

	if name == "" {
		name = "profile.jpg"
	}

	url, err := a.images.Upload(priestID.String(), name, raw)
	if err != nil {
		log.Printf("Profile image upload failed for priest %s: %v", priestID, err)
		return
	}

	if err := a.priestRepo.SetProfileImageURL(ctx, priestID, url); err != nil {
		log.Printf("Failed to store image URL for priest %s: %v", priestID, err)
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	priestStatus := ""
	if account.Priest != nil {
		priestStatus = account.Priest.Status
	}

	token, err := utils.CreateToken(account.ID, account.Role, priestStatus)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token:        token,
		Role:         account.Role,
		PriestStatus: priestStatus,
	}, nil
}

func (a *AccountService) Me(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrNotFound
	}

	response := &response_models.AccountResponse{
		ID:          account.ID.String(),
		DisplayName: account.DisplayName,
		Email:       account.Email,
		Role:        account.Role,
	}
	if account.Priest != nil {
		response.PriestID = account.Priest.ID.String()
		response.PriestStatus = account.Priest.Status
	}

	return response, nil
}
