package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Fields a priest may propose to change. Parish and specialties are
// structural references: suggestions naming them are accepted for
// review but can only be resolved through a direct admin edit.
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldParish       = "parish"
	FieldPhone        = "phone"
	FieldSpecialties  = "specialties"
	FieldBiography    = "biography"
	FieldProfileImage = "profileImage"
)

func IsSuggestionField(field string) bool {
	switch field {
	case FieldFirstName, FieldLastName, FieldParish, FieldPhone,
		FieldSpecialties, FieldBiography, FieldProfileImage:
		return true
	}
	return false
}

// IsStructuralField reports whether the field is a relational reference
// that cannot be written from a free-text suggested value.
func IsStructuralField(field string) bool {
	return field == FieldParish || field == FieldSpecialties
}

type ProfileSuggestion struct {
	BaseModel
	PriestID            uuid.UUID `gorm:"type:uuid;index"`
	Priest              *Priest
	Field               string
	CurrentValue        string
	SuggestedValue      string
	Reason              string
	Status              string `gorm:"default:PENDING;index"`
	ReviewedByAccountID *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt          *time.Time
}
