package model

// Professional is read-only roster data seeded at startup.
type Professional struct {
	Base
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	AvatarURL string `json:"avatar_url"`
}
