package repositories

import (
	"context"

	"gorm.io/gorm"

	"clero/internal/models/db_models"
)

// DirectoryFilter narrows the public listing. Substring filters are
// case-insensitive; ParishExact matches the parish name verbatim.
type DirectoryFilter struct {
	Name          string
	ParishName    string
	SpecialtyName string
	ParishExact   string
	Limit         int
}

type DirectoryRepository interface {
	ListApproved(ctx context.Context) ([]db_models.Priest, error)
	SearchApproved(ctx context.Context, filter DirectoryFilter) ([]db_models.Priest, error)
	ParishesWithApprovedPriests(ctx context.Context) ([]db_models.Parish, error)
}

type directoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) DirectoryRepository {
	return &directoryRepository{db: db}
}

func (r *directoryRepository) ListApproved(ctx context.Context) ([]db_models.Priest, error) {
	var priests []db_models.Priest
	err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Parish").
		Preload("Parish.City").
		Preload("Specialties").
		Where("status = ?", db_models.StatusApproved).
		Order("last_name asc, first_name asc").
		Find(&priests).Error
	if err != nil {
		return nil, err
	}
	return priests, nil
}

func (r *directoryRepository) SearchApproved(ctx context.Context, filter DirectoryFilter) ([]db_models.Priest, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Priest{}).
		Distinct("priests.*").
		Where("priests.status = ?", db_models.StatusApproved)

	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		query = query.Where("priests.first_name ILIKE ? OR priests.last_name ILIKE ?", pattern, pattern)
	}

	if filter.ParishName != "" || filter.ParishExact != "" {
		query = query.Joins("JOIN parishes ON parishes.id = priests.parish_id")
		if filter.ParishName != "" {
			query = query.Where("parishes.name ILIKE ?", "%"+filter.ParishName+"%")
		}
		if filter.ParishExact != "" {
			query = query.Where("parishes.name = ?", filter.ParishExact)
		}
	}

	if filter.SpecialtyName != "" {
		query = query.
			Joins("JOIN priest_specialties ON priest_specialties.priest_id = priests.id").
			Joins("JOIN specialties ON specialties.id = priest_specialties.specialty_id").
			Where("specialties.name ILIKE ?", "%"+filter.SpecialtyName+"%")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var priests []db_models.Priest
	err := query.
		Preload("Parish").
		Preload("Parish.City").
		Preload("Specialties").
		Order("priests.last_name asc, priests.first_name asc").
		Find(&priests).Error
	if err != nil {
		return nil, err
	}
	return priests, nil
}

func (r *directoryRepository) ParishesWithApprovedPriests(ctx context.Context) ([]db_models.Parish, error) {
	var parishes []db_models.Parish
	err := r.db.WithContext(ctx).
		Joins("JOIN priests ON priests.parish_id = parishes.id").
		Where("priests.status = ?", db_models.StatusApproved).
		Distinct("parishes.*").
		Order("parishes.name asc").
		Find(&parishes).Error
	if err != nil {
		return nil, err
	}
	return parishes, nil
}
