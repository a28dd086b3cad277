package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clero/internal/models/db_models"
)

type ParishRepository interface {
	Insert(ctx context.Context, parish *db_models.Parish) error
	Update(ctx context.Context, parish *db_models.Parish) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Parish, error)
	List(ctx context.Context) ([]db_models.Parish, error)
	CountByNameInCity(ctx context.Context, name string, cityID uuid.UUID, excludeID uuid.UUID) (int64, error)
	CountPriests(ctx context.Context, parishID uuid.UUID) (int64, error)
}

type parishRepository struct {
	db *gorm.DB
}

func NewParishRepository(db *gorm.DB) ParishRepository {
	return &parishRepository{db: db}
}

func (r *parishRepository) Insert(ctx context.Context, parish *db_models.Parish) error {
	return r.db.WithContext(ctx).Create(parish).Error
}

func (r *parishRepository) Update(ctx context.Context, parish *db_models.Parish) error {
	return r.db.WithContext(ctx).Omit("City", "Priests").Save(parish).Error
}

func (r *parishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Parish{}, "id = ?", id).Error
}

func (r *parishRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Parish, error) {
	var parish db_models.Parish
	err := r.db.WithContext(ctx).Preload("City").First(&parish, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parish, nil
}

func (r *parishRepository) List(ctx context.Context) ([]db_models.Parish, error) {
	var parishes []db_models.Parish
	err := r.db.WithContext(ctx).
		Preload("City").
		Order("name asc").
		Find(&parishes).Error
	if err != nil {
		return nil, err
	}
	return parishes, nil
}

func (r *parishRepository) CountByNameInCity(ctx context.Context, name string, cityID uuid.UUID, excludeID uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&db_models.Parish{}).
		Where("name = ? AND city_id = ?", name, cityID)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *parishRepository) CountPriests(ctx context.Context, parishID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Priest{}).
		Where("parish_id = ?", parishID).
		Count(&count).Error
	return count, err
}
