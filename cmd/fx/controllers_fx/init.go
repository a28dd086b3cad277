package controllers_fx

import (
	"go.uber.org/fx"

	"clero/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPriestController),
	fx.Provide(controllers.NewSuggestionController),
	fx.Provide(controllers.NewCityController),
	fx.Provide(controllers.NewParishController),
	fx.Provide(controllers.NewSpecialtyController),
	fx.Provide(controllers.NewDirectoryController))
