package request_models

// DecisionRequest carries an APPROVE or REJECT verdict for a pending
// priest or suggestion.
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=APPROVE REJECT"`
}

// UpdatePriestRequest is the admin direct edit. The specialty set is
// replaced wholesale with the IDs given here.
type UpdatePriestRequest struct {
	FirstName       string   `json:"first_name" binding:"required"`
	LastName        string   `json:"last_name" binding:"required"`
	ParishID        string   `json:"parish_id"`
	Phone           string   `json:"phone"`
	OrdainedDate    string   `json:"ordained_date"`
	Biography       string   `json:"biography"`
	ProfileImageURL string   `json:"profile_image_url"`
	SpecialtyIDs    []string `json:"specialty_ids"`
}
