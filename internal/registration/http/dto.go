package http

import (
	"time"

	"github.com/zenithcamp/medcamp-backend/internal/registration"
)

// RegistrationResponse is the shape of registration data returned in API responses.
type RegistrationResponse struct {
	ID                     string    `json:"_id"`
	CampID                 *string   `json:"campId"`
	CampName               string    `json:"campName"`
	CampFees               float64   `json:"campFees"`
	Location               string    `json:"location"`
	HealthcareProfessional string    `json:"healthcareProfessional"`
	ParticipantUID         string    `json:"participantUid"`
	ParticipantName        string    `json:"participantName"`
	ParticipantEmail       string    `json:"participantEmail"`
	Age                    int       `json:"age"`
	Phone                  string    `json:"phone"`
	Gender                 string    `json:"gender"`
	EmergencyContact       string    `json:"emergencyContact"`
	PaymentStatus          bool      `json:"paymentStatus"`
	ConfirmationStatus     bool      `json:"confirmationStatus"`
	FeedbackStatus         bool      `json:"feedbackStatus"`
	RegisteredAt           time.Time `json:"registeredAt"`
}

func NewRegistrationResponse(r *registration.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:                     r.ID,
		CampID:                 r.CampID,
		CampName:               r.CampName,
		CampFees:               r.CampFees,
		Location:               r.Location,
		HealthcareProfessional: r.HealthcareProfessional,
		ParticipantUID:         r.ParticipantUID,
		ParticipantName:        r.ParticipantName,
		ParticipantEmail:       r.ParticipantEmail,
		Age:                    r.Age,
		Phone:                  r.Phone,
		Gender:                 r.Gender,
		EmergencyContact:       r.EmergencyContact,
		PaymentStatus:          r.PaymentStatus,
		ConfirmationStatus:     r.ConfirmationStatus,
		FeedbackStatus:         r.FeedbackStatus,
		RegisteredAt:           r.RegisteredAt,
	}
}

func newRegistrationList(regs []*registration.Registration) []RegistrationResponse {
	items := make([]RegistrationResponse, len(regs))
	for i, r := range regs {
		items[i] = NewRegistrationResponse(r)
	}
	return items
}

// CreateRegistrationRequest is the payload for POST /reg-camps.
type CreateRegistrationRequest struct {
	CampID                 string  `json:"campId" binding:"required,uuid"`
	CampName               string  `json:"campName"`
	CampFees               float64 `json:"campFees" binding:"gte=0"`
	Location               string  `json:"location"`
	HealthcareProfessional string  `json:"healthcareProfessional"`
	ParticipantUID         string  `json:"participantUid" binding:"max=128"`
	ParticipantName        string  `json:"participantName"`
	ParticipantEmail       string  `json:"participantEmail" binding:"omitempty,email"`
	Age                    int     `json:"age" binding:"gte=0,lte=150"`
	Phone                  string  `json:"phone"`
	Gender                 string  `json:"gender"`
	EmergencyContact       string  `json:"emergencyContact"`
}

func (r *CreateRegistrationRequest) toDomain() *registration.Registration {
	campID := r.CampID
	return &registration.Registration{
		CampID:                 &campID,
		CampName:               r.CampName,
		CampFees:               r.CampFees,
		Location:               r.Location,
		HealthcareProfessional: r.HealthcareProfessional,
		ParticipantUID:         r.ParticipantUID,
		ParticipantName:        r.ParticipantName,
		ParticipantEmail:       r.ParticipantEmail,
		Age:                    r.Age,
		Phone:                  r.Phone,
		Gender:                 r.Gender,
		EmergencyContact:       r.EmergencyContact,
	}
}

// DeleteResponse reports the number of removed records.
type DeleteResponse struct {
	DeletedCount int `json:"deletedCount"`
}
