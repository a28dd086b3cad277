package response_models

// PriestResponse is the full profile shown to admins and to the priest
// themselves.
type PriestResponse struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	ParishID        string   `json:"parish_id,omitempty"`
	ParishName      string   `json:"parish_name,omitempty"`
	CityName        string   `json:"city_name,omitempty"`
	OrdainedDate    string   `json:"ordained_date,omitempty"`
	Biography       string   `json:"biography,omitempty"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	Specialties     []string `json:"specialties"`
	Status          string   `json:"status"`
	ApprovedAt      string   `json:"approved_at,omitempty"`
}

// PublicPriestResponse is the stripped directory entry: no phone,
// email or biography ever leaves through this shape.
type PublicPriestResponse struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	ParishName      string   `json:"parish_name,omitempty"`
	CityName        string   `json:"city_name,omitempty"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	Specialties     []string `json:"specialties"`
}

// ParishOption feeds the public directory's parish filter control.
type ParishOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
