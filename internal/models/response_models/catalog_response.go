package response_models

type CityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	State       string `json:"state"`
	ParishCount int    `json:"parish_count"`
}

type ParishResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CityID   string `json:"city_id"`
	CityName string `json:"city_name,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

type SpecialtyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
