package model

// Service is a catalog entry. Sessions, when greater than one, marks the
// service as a package: buying one unit grants that many redeemable credits
// instead of reserving a slot.
type Service struct {
	Base
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // in minutes
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Sessions    int     `json:"sessions,omitempty"`
}

// SessionsPerUnit returns how many credits one purchased unit grants.
func (s *Service) SessionsPerUnit() int {
	if s.Sessions < 1 {
		return 1
	}
	return s.Sessions
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Sessions    int     `json:"sessions" binding:"omitempty,gte=1"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration" binding:"omitempty,gt=0"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url"`
	Category    *string  `json:"category"`
	Sessions    *int     `json:"sessions" binding:"omitempty,gte=1"`
}
