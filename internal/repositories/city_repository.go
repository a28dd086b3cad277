package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clero/internal/models/db_models"
)

type CityRepository interface {
	Insert(ctx context.Context, city *db_models.City) error
	Update(ctx context.Context, city *db_models.City) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.City, error)
	List(ctx context.Context) ([]db_models.City, error)
	CountByName(ctx context.Context, name string, excludeID uuid.UUID) (int64, error)
	CountParishes(ctx context.Context, cityID uuid.UUID) (int64, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) Insert(ctx context.Context, city *db_models.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *cityRepository) Update(ctx context.Context, city *db_models.City) error {
	return r.db.WithContext(ctx).Save(city).Error
}

func (r *cityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.City{}, "id = ?", id).Error
}

func (r *cityRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.City, error) {
	var city db_models.City
	err := r.db.WithContext(ctx).First(&city, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) List(ctx context.Context) ([]db_models.City, error) {
	var cities []db_models.City
	err := r.db.WithContext(ctx).
		Preload("Parishes").
		Order("name asc").
		Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) CountByName(ctx context.Context, name string, excludeID uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&db_models.City{}).Where("name = ?", name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *cityRepository) CountParishes(ctx context.Context, cityID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Parish{}).
		Where("city_id = ?", cityID).
		Count(&count).Error
	return count, err
}
