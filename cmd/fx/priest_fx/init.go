package priest_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clero/internal/repositories"
	"clero/internal/services"
)

var Module = fx.Provide(
	providePriestRepo, providePriestService)

func providePriestRepo(db *gorm.DB) repositories.PriestRepository {
	return repositories.NewPriestRepository(db)
}

func providePriestService(priestRepo repositories.PriestRepository, parishRepo repositories.ParishRepository) services.PriestServiceInterface {
	return services.NewPriestService(priestRepo, parishRepo)
}
