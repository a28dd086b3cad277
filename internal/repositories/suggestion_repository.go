package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clero/internal/models/db_models"
)

type SuggestionRepository interface {
	Insert(ctx context.Context, suggestion *db_models.ProfileSuggestion) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.ProfileSuggestion, error)
	ListByStatus(ctx context.Context, status string) ([]db_models.ProfileSuggestion, error)
	ListByPriest(ctx context.Context, priestID uuid.UUID) ([]db_models.ProfileSuggestion, error)

	// Reject flips a PENDING suggestion to REJECTED. Returns false when
	// the suggestion was already decided.
	Reject(ctx context.Context, id uuid.UUID, adminID uuid.UUID) (bool, error)

	// ApproveWithFieldWrite flips a PENDING suggestion to APPROVED and
	// writes the suggested value into the named priest column, both in
	// one transaction. Returns false when the suggestion was already
	// decided; in that case nothing is written.
	ApproveWithFieldWrite(ctx context.Context, id uuid.UUID, priestID uuid.UUID, column string, value string, adminID uuid.UUID) (bool, error)
}

type suggestionRepository struct {
	db *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

func (r *suggestionRepository) Insert(ctx context.Context, suggestion *db_models.ProfileSuggestion) error {
	return r.db.WithContext(ctx).Create(suggestion).Error
}

func (r *suggestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.ProfileSuggestion, error) {
	var suggestion db_models.ProfileSuggestion
	err := r.db.WithContext(ctx).
		Preload("Priest").
		First(&suggestion, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &suggestion, nil
}

func (r *suggestionRepository) ListByStatus(ctx context.Context, status string) ([]db_models.ProfileSuggestion, error) {
	var suggestions []db_models.ProfileSuggestion
	err := r.db.WithContext(ctx).
		Preload("Priest").
		Where("status = ?", status).
		Order("created_at asc").
		Find(&suggestions).Error
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *suggestionRepository) ListByPriest(ctx context.Context, priestID uuid.UUID) ([]db_models.ProfileSuggestion, error) {
	var suggestions []db_models.ProfileSuggestion
	err := r.db.WithContext(ctx).
		Where("priest_id = ?", priestID).
		Order("created_at desc").
		Find(&suggestions).Error
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *suggestionRepository) Reject(ctx context.Context, id uuid.UUID, adminID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&db_models.ProfileSuggestion{}).
		Where("id = ? AND status = ?", id, db_models.StatusPending).
		Updates(map[string]interface{}{
			"status":                 db_models.StatusRejected,
			"reviewed_by_account_id": adminID,
			"reviewed_at":            time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *suggestionRepository) ApproveWithFieldWrite(ctx context.Context, id uuid.UUID, priestID uuid.UUID, column string, value string, adminID uuid.UUID) (bool, error) {
	approved := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&db_models.ProfileSuggestion{}).
			Where("id = ? AND status = ?", id, db_models.StatusPending).
			Updates(map[string]interface{}{
				"status":                 db_models.StatusApproved,
				"reviewed_by_account_id": adminID,
				"reviewed_at":            time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		approved = true

		return tx.Model(&db_models.Priest{}).
			Where("id = ?", priestID).
			Update(column, value).Error
	})

	return approved, err
}
