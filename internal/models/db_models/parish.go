package db_models

import "github.com/google/uuid"

type Parish struct {
	BaseModel
	Name    string    `gorm:"uniqueIndex:idx_parish_name_city"`
	CityID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_parish_name_city"`
	City    *City
	Address string
	Phone   string
	Email   string
	Priests []Priest `gorm:"foreignKey:ParishID"`
}
