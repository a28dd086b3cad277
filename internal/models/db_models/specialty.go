package db_models

type Specialty struct {
	BaseModel
	Name        string `gorm:"uniqueIndex"`
	Description string
	Priests     []Priest `gorm:"many2many:priest_specialties"`
}
