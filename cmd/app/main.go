package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"clero/cmd/fx/account_fx"
	"clero/cmd/fx/catalog_fx"
	"clero/cmd/fx/controllers_fx"
	"clero/cmd/fx/db_fx"
	"clero/cmd/fx/directory_fx"
	"clero/cmd/fx/imagestore_fx"
	"clero/cmd/fx/priest_fx"
	"clero/cmd/fx/suggestion_fx"
	"clero/internal/api/controllers"
	"clero/internal/models/db_models"
	"clero/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		imagestore_fx.Module,
		account_fx.Module,
		priest_fx.Module,
		suggestion_fx.Module,
		catalog_fx.Module,
		directory_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	priestController *controllers.PriestController,
	suggestionController *controllers.SuggestionController,
	cityController *controllers.CityController,
	parishController *controllers.ParishController,
	specialtyController *controllers.SpecialtyController,
	directoryController *controllers.DirectoryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		priestController,
		suggestionController,
		cityController,
		parishController,
		specialtyController,
		directoryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	priestController *controllers.PriestController,
	suggestionController *controllers.SuggestionController,
	cityController *controllers.CityController,
	parishController *controllers.ParishController,
	specialtyController *controllers.SpecialtyController,
	directoryController *controllers.DirectoryController) {

	auth := middleware.JWTAuthMiddleware()
	adminOnly := middleware.RequireRole(db_models.RoleAdmin)
	// The PRIEST role is only ever granted by approval, so this gate
	// admits exactly admins and approved priests.
	clergyOrAdmin := middleware.RequireRole(db_models.RoleAdmin, db_models.RolePriest)
	priestOnly := middleware.RequireRole(db_models.RolePriest)

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", auth, accountController.Me)

	priests := r.Group("/priests", auth, adminOnly)
	priests.GET("/pending", priestController.ListPending)
	priests.GET("/:id", priestController.Get)
	priests.POST("/:id/decision", priestController.Decide)
	priests.PUT("/:id", priestController.Update)

	suggestions := r.Group("/suggestions", auth)
	suggestions.POST("", priestOnly, suggestionController.Submit)
	suggestions.GET("/mine", priestOnly, suggestionController.ListMine)
	suggestions.GET("", adminOnly, suggestionController.List)
	suggestions.PATCH("/:id", adminOnly, suggestionController.Decide)

	cities := r.Group("/cities", auth, adminOnly)
	cities.GET("", cityController.List)
	cities.POST("", cityController.Create)
	cities.PUT("/:id", cityController.Update)
	cities.DELETE("/:id", cityController.Delete)

	parishes := r.Group("/parishes", auth, adminOnly)
	parishes.GET("", parishController.List)
	parishes.POST("", parishController.Create)
	parishes.PUT("/:id", parishController.Update)
	parishes.DELETE("/:id", parishController.Delete)

	specialties := r.Group("/specialties", auth, adminOnly)
	specialties.GET("", specialtyController.List)
	specialties.POST("", specialtyController.Create)
	specialties.PUT("/:id", specialtyController.Update)
	specialties.DELETE("/:id", specialtyController.Delete)

	directory := r.Group("/directory")
	directory.GET("", auth, clergyOrAdmin, directoryController.Internal)
	directory.GET("/public", directoryController.Public)
	directory.GET("/public/parishes", directoryController.PublicParishes)
}
