package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clero/internal/models/db_models"
)

type SpecialtyRepository interface {
	Insert(ctx context.Context, specialty *db_models.Specialty) error
	Update(ctx context.Context, specialty *db_models.Specialty) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Specialty, error)
	List(ctx context.Context) ([]db_models.Specialty, error)
	CountByName(ctx context.Context, name string, excludeID uuid.UUID) (int64, error)
	CountLinkedPriests(ctx context.Context, specialtyID uuid.UUID) (int64, error)
}

type specialtyRepository struct {
	db *gorm.DB
}

func NewSpecialtyRepository(db *gorm.DB) SpecialtyRepository {
	return &specialtyRepository{db: db}
}

func (r *specialtyRepository) Insert(ctx context.Context, specialty *db_models.Specialty) error {
	return r.db.WithContext(ctx).Create(specialty).Error
}

func (r *specialtyRepository) Update(ctx context.Context, specialty *db_models.Specialty) error {
	return r.db.WithContext(ctx).Omit("Priests").Save(specialty).Error
}

func (r *specialtyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Specialty{}, "id = ?", id).Error
}

func (r *specialtyRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Specialty, error) {
	var specialty db_models.Specialty
	err := r.db.WithContext(ctx).First(&specialty, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) List(ctx context.Context) ([]db_models.Specialty, error) {
	var specialties []db_models.Specialty
	err := r.db.WithContext(ctx).Order("name asc").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) CountByName(ctx context.Context, name string, excludeID uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&db_models.Specialty{}).Where("name = ?", name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *specialtyRepository) CountLinkedPriests(ctx context.Context, specialtyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("priest_specialties").
		Where("specialty_id = ?", specialtyID).
		Count(&count).Error
	return count, err
}
