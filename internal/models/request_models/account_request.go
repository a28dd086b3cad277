package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterPriestRequest creates the account and the pending priest
// profile in one call. Ministry fields are optional; the profile image
// is sent base64-encoded and uploaded out-of-band of the transaction.
type RegisterPriestRequest struct {
	Email        string   `json:"email" binding:"required,email"`
	Password     string   `json:"password" binding:"required,min=6"`
	FirstName    string   `json:"first_name" binding:"required"`
	LastName     string   `json:"last_name" binding:"required"`
	ParishID     string   `json:"parish_id"`
	Phone        string   `json:"phone"`
	SpecialtyIDs []string `json:"specialty_ids"`
	OrdainedDate string   `json:"ordained_date"` // RFC 3339 date, e.g. 2008-06-15
	Biography    string   `json:"biography"`
	ImageName    string   `json:"image_name"`
	ImageData    string   `json:"image_data"` // base64
}
