package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Approval statuses shared by Priest and ProfileSuggestion. A decided
// record is never re-decided through the approval path.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Priest struct {
	BaseModel
	AccountID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Account             *Account
	FirstName           string
	LastName            string
	ParishID            *uuid.UUID `gorm:"type:uuid"`
	Parish              *Parish
	Phone               string
	OrdainedDate        *time.Time
	Biography           string
	ProfileImageURL     string
	Status              string `gorm:"default:PENDING;index"`
	ApprovedAt          *time.Time
	ApprovedByAccountID *uuid.UUID  `gorm:"type:uuid"`
	Specialties         []Specialty `gorm:"many2many:priest_specialties"`
}
