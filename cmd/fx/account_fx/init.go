package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clero/internal/repositories"
	"clero/internal/services"
	"clero/pkg/imagestore"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	priestRepo repositories.PriestRepository,
	parishRepo repositories.ParishRepository,
	images imagestore.Uploader,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, priestRepo, parishRepo, images)
}
