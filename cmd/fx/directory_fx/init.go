package directory_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clero/internal/repositories"
	"clero/internal/services"
)

var Module = fx.Provide(
	provideDirectoryRepo, provideDirectoryService)

func provideDirectoryRepo(db *gorm.DB) repositories.DirectoryRepository {
	return repositories.NewDirectoryRepository(db)
}

func provideDirectoryService(directoryRepo repositories.DirectoryRepository) services.DirectoryServiceInterface {
	return services.NewDirectoryService(directoryRepo)
}
