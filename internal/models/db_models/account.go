package db_models

// Coarse roles. Role changes happen only through the approval workflow
// or a direct admin edit.
const (
	RoleUnprivileged = "UNPRIVILEGED"
	RolePriest       = "PRIEST"
	RoleAdmin        = "ADMIN"
)

type Account struct {
	BaseModel
	DisplayName  string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"default:UNPRIVILEGED"`
	Priest       *Priest
}
