package registration

import (
	"net/http"
	"time"

	"github.com/zenithcamp/medcamp-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "registration not found")
	ErrCampNotFound        = apperror.New(http.StatusNotFound, "camp not found")
	ErrParticipantRequired = apperror.New(http.StatusBadRequest, "participant uid is required")
	ErrInvalidAge          = apperror.New(http.StatusBadRequest, "age must be between 0 and 150")
)

// Registration links a participant to a camp. Camp details are copied at
// registration time so the record survives later camp edits.
type Registration struct {
	ID                     string
	CampID                 *string
	CampName               string
	CampFees               float64
	Location               string
	HealthcareProfessional string
	ParticipantUID         string
	ParticipantName        string
	ParticipantEmail       string
	Age                    int
	Phone                  string
	Gender                 string
	EmergencyContact       string
	PaymentStatus          bool
	ConfirmationStatus     bool
	FeedbackStatus         bool
	RegisteredAt           time.Time
}

// Status flags that can be raised on a registration. They never go back to false.
type Status string

const (
	StatusPaid         Status = "payment_status"
	StatusConfirmed    Status = "confirmation_status"
	StatusFeedbackGave Status = "feedback_status"
)

// Filter defines parameters for listing registrations.
type Filter struct {
	ParticipantUID string
}
