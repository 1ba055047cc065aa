package http

import (
	"time"

	"github.com/zenithcamp/medcamp-backend/internal/camp"
)

// CampResponse is the shape of camp data returned in API responses.
type CampResponse struct {
	ID                     string     `json:"_id"`
	Name                   string     `json:"name"`
	Image                  string     `json:"image"`
	Fees                   float64    `json:"fees"`
	DateTime               *time.Time `json:"dateTime"`
	Location               string     `json:"location"`
	HealthcareProfessional string     `json:"healthcareProfessional"`
	ParticipantCount       int        `json:"participantCount"`
	Description            string     `json:"description"`
	ContributorUID         string     `json:"contributorUid"`
	PostTime               time.Time  `json:"postTime"`
}

func NewCampResponse(c *camp.Camp) CampResponse {
	return CampResponse{
		ID:                     c.ID,
		Name:                   c.Name,
		Image:                  c.Image,
		Fees:                   c.Fees,
		DateTime:               c.DateTime,
		Location:               c.Location,
		HealthcareProfessional: c.HealthcareProfessional,
		ParticipantCount:       c.ParticipantCount,
		Description:            c.Description,
		ContributorUID:         c.ContributorUID,
		PostTime:               c.PostTime,
	}
}

func newCampList(camps []*camp.Camp) []CampResponse {
	items := make([]CampResponse, len(camps))
	for i, c := range camps {
		items[i] = NewCampResponse(c)
	}
	return items
}

// ListCampsRequest binds GET /camps query parameters.
type ListCampsRequest struct {
	Sort string `form:"sort" binding:"omitempty,oneof=asc desc"`
}

// SearchRequest binds GET /search query parameters.
type SearchRequest struct {
	V string `form:"v" binding:"max=256"`
}

// CreateCampRequest is the payload for POST /camps.
type CreateCampRequest struct {
	Name                   string     `json:"name" binding:"required,max=256"`
	Image                  string     `json:"image"`
	Fees                   float64    `json:"fees" binding:"gte=0"`
	DateTime               *time.Time `json:"dateTime"`
	Location               string     `json:"location"`
	HealthcareProfessional string     `json:"healthcareProfessional"`
	Description            string     `json:"description"`
	ContributorUID         string     `json:"contributorUid"`
}

func (r *CreateCampRequest) toDomain() *camp.Camp {
	return &camp.Camp{
		Name:                   r.Name,
		Image:                  r.Image,
		Fees:                   r.Fees,
		DateTime:               r.DateTime,
		Location:               r.Location,
		HealthcareProfessional: r.HealthcareProfessional,
		Description:            r.Description,
		ContributorUID:         r.ContributorUID,
	}
}

// UpdateCampRequest defines fields allowed to be updated via PATCH /update-camp/:id.
type UpdateCampRequest struct {
	Name                   *string    `json:"name" binding:"omitempty,max=256"`
	Image                  *string    `json:"image"`
	Fees                   *float64   `json:"fees" binding:"omitempty,gte=0"`
	DateTime               *time.Time `json:"dateTime"`
	Location               *string    `json:"location"`
	HealthcareProfessional *string    `json:"healthcareProfessional"`
	Description            *string    `json:"description"`
}

// PopularCampsResponse wraps the popular camps in a success envelope.
type PopularCampsResponse struct {
	Success bool           `json:"success"`
	Data    []CampResponse `json:"data"`
}

// ParticipantCountResponse answers PATCH /participant-count/inc/:id.
type ParticipantCountResponse struct {
	ParticipantCount int `json:"participantCount"`
}

// DeleteResponse reports the number of removed records.
type DeleteResponse struct {
	DeletedCount int `json:"deletedCount"`
}
