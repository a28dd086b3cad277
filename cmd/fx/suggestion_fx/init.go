package suggestion_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clero/internal/repositories"
	"clero/internal/services"
)

var Module = fx.Provide(
	provideSuggestionRepo, provideSuggestionService)

func provideSuggestionRepo(db *gorm.DB) repositories.SuggestionRepository {
	return repositories.NewSuggestionRepository(db)
}

func provideSuggestionService(suggestionRepo repositories.SuggestionRepository, priestRepo repositories.PriestRepository) services.SuggestionServiceInterface {
	return services.NewSuggestionService(suggestionRepo, priestRepo)
}
