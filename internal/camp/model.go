package camp

import (
	"net/http"
	"time"

	"github.com/zenithcamp/medcamp-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "camp not found")
	ErrNameRequired   = apperror.New(http.StatusBadRequest, "camp name is required")
	ErrInvalidFees    = apperror.New(http.StatusBadRequest, "camp fees cannot be negative")
	ErrInvalidPattern = apperror.New(http.StatusBadRequest, "invalid search pattern")
)

// PopularLimit caps GET /camps/popular.
const PopularLimit = 4

// Camp is a scheduled medical camp.
type Camp struct {
	ID                     string
	Name                   string
	Image                  string
	Fees                   float64
	DateTime               *time.Time
	Location               string
	HealthcareProfessional string
	ParticipantCount       int
	Description            string
	ContributorUID         string
	PostTime               time.Time
}

// Sort orders for listing by post time. SortNone keeps storage order.
const (
	SortNone = ""
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filter defines parameters for listing camps.
type Filter struct {
	Sort string
}

// UpdateRequest carries the fields of a partial camp update. Nil means unchanged.
type UpdateRequest struct {
	Name                   *string
	Image                  *string
	Fees                   *float64
	DateTime               *time.Time
	Location               *string
	HealthcareProfessional *string
	Description            *string
}
