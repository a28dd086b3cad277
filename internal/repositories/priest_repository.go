package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clero/internal/models/db_models"
)

type PriestRepository interface {
	// CreateWithAccount inserts the account, the pending priest and the
	// specialty links in a single transaction.
	CreateWithAccount(ctx context.Context, account *db_models.Account, priest *db_models.Priest, specialtyIDs []uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Priest, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Priest, error)
	ListByStatus(ctx context.Context, status string) ([]db_models.Priest, error)

	// Decide flips a PENDING priest to APPROVED or REJECTED and, on
	// approval, promotes the linked account to PRIEST in the same
	// transaction. Returns false when the priest was no longer PENDING.
	Decide(ctx context.Context, priestID uuid.UUID, accountID uuid.UUID, approve bool, adminID uuid.UUID) (bool, error)

	// Update saves the priest row and replaces the specialty set.
	Update(ctx context.Context, priest *db_models.Priest, specialtyIDs []uuid.UUID) error

	SetProfileImageURL(ctx context.Context, priestID uuid.UUID, url string) error
}

type priestRepository struct {
	db *gorm.DB
}

func NewPriestRepository(db *gorm.DB) PriestRepository {
	return &priestRepository{db: db}
}

func (r *priestRepository) CreateWithAccount(ctx context.Context, account *db_models.Account, priest *db_models.Priest, specialtyIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}

		priest.AccountID = account.ID
		if err := tx.Create(priest).Error; err != nil {
			return err
		}

		if len(specialtyIDs) == 0 {
			return nil
		}

		var specialties []db_models.Specialty
		if err := tx.Find(&specialties, "id IN ?", specialtyIDs).Error; err != nil {
			return err
		}
		if len(specialties) != len(specialtyIDs) {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(priest).Association("Specialties").Append(&specialties)
	})
}

func (r *priestRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Priest, error) {
	var priest db_models.Priest
	err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Parish").
		Preload("Parish.City").
		Preload("Specialties").
		First(&priest, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &priest, nil
}

func (r *priestRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Priest, error) {
	var priest db_models.Priest
	err := r.db.WithContext(ctx).
		Preload("Parish").
		Preload("Specialties").
		First(&priest, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &priest, nil
}

func (r *priestRepository) ListByStatus(ctx context.Context, status string) ([]db_models.Priest, error) {
	var priests []db_models.Priest
	err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Parish").
		Preload("Parish.City").
		Preload("Specialties").
		Where("status = ?", status).
		Order("last_name asc, first_name asc").
		Find(&priests).Error
	if err != nil {
		return nil, err
	}
	return priests, nil
}

func (r *priestRepository) Decide(ctx context.Context, priestID uuid.UUID, accountID uuid.UUID, approve bool, adminID uuid.UUID) (bool, error) {
	decided := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		updates := map[string]interface{}{
			"status":                 db_models.StatusRejected,
			"approved_at":            nil,
			"approved_by_account_id": nil,
		}
		if approve {
			updates["status"] = db_models.StatusApproved
			updates["approved_at"] = now
			updates["approved_by_account_id"] = adminID
		}

		// Guarded update: the status predicate makes the transition
		// one-shot even under concurrent admin actions.
		result := tx.Model(&db_models.Priest{}).
			Where("id = ? AND status = ?", priestID, db_models.StatusPending).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		decided = true

		if !approve {
			return nil
		}

		return tx.Model(&db_models.Account{}).
			Where("id = ?", accountID).
			Update("role", db_models.RolePriest).Error
	})

	return decided, err
}

func (r *priestRepository) Update(ctx context.Context, priest *db_models.Priest, specialtyIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Specialties", "Account", "Parish").Save(priest).Error; err != nil {
			return err
		}

		var specialties []db_models.Specialty
		if len(specialtyIDs) > 0 {
			if err := tx.Find(&specialties, "id IN ?", specialtyIDs).Error; err != nil {
				return err
			}
			if len(specialties) != len(specialtyIDs) {
				return gorm.ErrRecordNotFound
			}
		}

		// Replace-all semantics: the link set is rebuilt, not diffed.
		return tx.Model(priest).Association("Specialties").Replace(&specialties)
	})
}

func (r *priestRepository) SetProfileImageURL(ctx context.Context, priestID uuid.UUID, url string) error {
	return r.db.WithContext(ctx).Model(&db_models.Priest{}).
		Where("id = ?", priestID).
		Update("profile_image_url", url).Error
}
