package request_models

type SubmitSuggestionRequest struct {
	Field          string `json:"field" binding:"required"`
	SuggestedValue string `json:"suggested_value" binding:"required"`
	Reason         string `json:"reason"`
}
