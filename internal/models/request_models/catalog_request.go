package request_models

type CityRequest struct {
	Name  string `json:"name" binding:"required"`
	State string `json:"state" binding:"required"`
}

type ParishRequest struct {
	Name    string `json:"name" binding:"required"`
	CityID  string `json:"city_id" binding:"required,uuid"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type SpecialtyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
