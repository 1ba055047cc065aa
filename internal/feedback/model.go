package feedback

import (
	"net/http"
	"time"

	"github.com/zenithcamp/medcamp-backend/internal/pkg/apperror"
)

var (
	ErrInvalidRating    = apperror.New(http.StatusBadRequest, "rating must be between 1 and 5")
	ErrUIDRequired      = apperror.New(http.StatusBadRequest, "participant uid is required")
	ErrReferenceMissing = apperror.New(http.StatusNotFound, "camp or registration not found")
)

// PublicNameLength is how many characters of a participant's name the public list reveals.
const PublicNameLength = 3

// Feedback is a participant's review of a camp they attended.
type Feedback struct {
	ID               string
	RegistrationID   *string
	CampID           *string
	CampName         string
	ParticipantUID   string
	ParticipantName  string
	ParticipantPhoto string
	Rating           int
	Comment          string
	PostTime         time.Time
}
