package dto

type ProfileStatusResponse struct {
	HasProfile    bool     `json:"has_profile"`
	MissingFields []string `json:"missing_fields"`
	Redirect      string   `json:"redirect,omitempty"`
}
