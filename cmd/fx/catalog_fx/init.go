package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clero/internal/repositories"
	"clero/internal/services"
)

var Module = fx.Provide(
	provideCityRepo, provideCityService,
	provideParishRepo, provideParishService,
	provideSpecialtyRepo, provideSpecialtyService)

func provideCityRepo(db *gorm.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db)
}

func provideCityService(cityRepo repositories.CityRepository) services.CityServiceInterface {
	return services.NewCityService(cityRepo)
}

func provideParishRepo(db *gorm.DB) repositories.ParishRepository {
	return repositories.NewParishRepository(db)
}

func provideParishService(parishRepo repositories.ParishRepository, cityRepo repositories.CityRepository) services.ParishServiceInterface {
	return services.NewParishService(parishRepo, cityRepo)
}

func provideSpecialtyRepo(db *gorm.DB) repositories.SpecialtyRepository {
	return repositories.NewSpecialtyRepository(db)
}

func provideSpecialtyService(specialtyRepo repositories.SpecialtyRepository) services.SpecialtyServiceInterface {
	return services.NewSpecialtyService(specialtyRepo)
}
