package http

import (
	"time"

	"github.com/zenithcamp/medcamp-backend/internal/feedback"
)

// FeedbackResponse is the shape of feedback data returned in API responses.
type FeedbackResponse struct {
	ID               string    `json:"_id"`
	RegistrationID   *string   `json:"registrationId"`
	CampID           *string   `json:"campId"`
	CampName         string    `json:"campName"`
	ParticipantUID   string    `json:"participantUid"`
	ParticipantName  string    `json:"participantName"`
	ParticipantPhoto string    `json:"participantPhoto"`
	Rating           int       `json:"rating"`
	Comment          string    `json:"comment"`
	PostTime         time.Time `json:"postTime"`
}

func NewFeedbackResponse(f *feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:               f.ID,
		RegistrationID:   f.RegistrationID,
		CampID:           f.CampID,
		CampName:         f.CampName,
		ParticipantUID:   f.ParticipantUID,
		ParticipantName:  f.ParticipantName,
		ParticipantPhoto: f.ParticipantPhoto,
		Rating:           f.Rating,
		Comment:          f.Comment,
		PostTime:         f.PostTime,
	}
}

// CreateFeedbackRequest is the payload for POST /feedback.
// The participant is always the caller.
type CreateFeedbackRequest struct {
	RegistrationID   *string `json:"registrationId" binding:"omitempty,uuid"`
	CampID           *string `json:"campId" binding:"omitempty,uuid"`
	CampName         string  `json:"campName"`
	ParticipantName  string  `json:"participantName"`
	ParticipantPhoto string  `json:"participantPhoto"`
	Rating           int     `json:"rating" binding:"required,min=1,max=5"`
	Comment          string  `json:"comment" binding:"max=2000"`
}

func (r *CreateFeedbackRequest) toDomain(uid string) *feedback.Feedback {
	return &feedback.Feedback{
		RegistrationID:   r.RegistrationID,
		CampID:           r.CampID,
		CampName:         r.CampName,
		ParticipantUID:   uid,
		ParticipantName:  r.ParticipantName,
		ParticipantPhoto: r.ParticipantPhoto,
		Rating:           r.Rating,
		Comment:          r.Comment,
	}
}
