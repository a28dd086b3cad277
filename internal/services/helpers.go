package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"clero/internal/models/db_models"
	"clero/pkg/utils"
)

func parseUUID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, utils.ErrValidation
	}
	return id, nil
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		id, err := parseUUID(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, utils.ErrValidation
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func specialtyNames(specialties []db_models.Specialty) []string {
	names := make([]string, 0, len(specialties))
	for _, s := range specialties {
		names = append(names, s.Name)
	}
	return names
}

func joinSpecialtyNames(specialties []db_models.Specialty) string {
	return strings.Join(specialtyNames(specialties), ", ")
}
