package response_models

type SuggestionResponse struct {
	ID             string `json:"id"`
	PriestID       string `json:"priest_id"`
	PriestName     string `json:"priest_name,omitempty"`
	Field          string `json:"field"`
	CurrentValue   string `json:"current_value"`
	SuggestedValue string `json:"suggested_value"`
	Reason         string `json:"reason,omitempty"`
	Status         string `json:"status"`
	ReviewedAt     string `json:"reviewed_at,omitempty"`
	CreatedAt      int64  `json:"created_at"`
}
