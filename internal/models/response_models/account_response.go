package response_models

type LoginResponse struct {
	Token        string `json:"token"`
	Role         string `json:"role"`
	PriestStatus string `json:"priest_status,omitempty"`
}

type AccountResponse struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PriestID     string `json:"priest_id,omitempty"`
	PriestStatus string `json:"priest_status,omitempty"`
}
