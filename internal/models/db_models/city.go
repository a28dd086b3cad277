package db_models

type City struct {
	BaseModel
	Name     string `gorm:"uniqueIndex"`
	State    string
	Parishes []Parish `gorm:"foreignKey:CityID"`
}
