// Command admincli bootstraps an ADMIN account directly in the
// database. It replaces any network-reachable "create admin" path: run
// it once at deploy time, from the same environment as the server.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"clero/internal/infra"
	"clero/internal/models/db_models"
	"clero/internal/repositories"
	"clero/pkg/utils"
)

func main() {
	var (
		email       = flag.String("email", "", "admin email (required)")
		password    = flag.String("password", "", "admin password, min 6 chars (required)")
		displayName = flag.String("name", "Administrator", "display name")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		log.Fatal("email and password are required")
	}
	if len(*password) < 6 {
		log.Fatal("password must be at least 6 characters")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)
	infra.Migrate(db)

	ctx := context.Background()
	accountRepo := repositories.NewAccountRepository(db)

	existing, err := accountRepo.FindByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("Failed to check existing account: %v", err)
	}
	if existing != nil {
		log.Fatalf("An account with email %s already exists", *email)
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	account := &db_models.Account{
		DisplayName:  *displayName,
		Email:        *email,
		PasswordHash: hash,
		Role:         db_models.RoleAdmin,
	}
	if err := accountRepo.Insert(ctx, account); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("Admin account %s created (id %s)", account.Email, account.ID)
}
