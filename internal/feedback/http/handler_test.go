package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
	"github.com/zenithcamp/medcamp-backend/internal/feedback"
)

type fakeService struct {
	created *feedback.Feedback
	listErr error
}

func (f *fakeService) Create(ctx context.Context, fb *feedback.Feedback) (*feedback.Feedback, error) {
	fb.ID = "fb1"
	f.created = fb
	return fb, nil
}

func (f *fakeService) List(ctx context.Context) ([]*feedback.Feedback, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []*feedback.Feedback{{ID: "fb1", ParticipantName: "Ali", Rating: 4}}, nil
}

func setup(svc *fakeService) (*gin.Engine, *auth.JWTManager) {
	gin.SetMode(gin.TestMode)
	m := auth.NewJWTManager("secret")
	r := gin.New()
	RegisterRoutes(r.Group(""), NewHandler(svc), auth.AuthRequired(m, auth.HeaderTransport))
	return r, m
}

func post(r *gin.Engine, m *auth.JWTManager, body any, uid string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/feedback", &buf)
	req.Header.Set("Content-Type", "application/json")
	if uid != "" {
		token, _ := m.GenerateAccessToken(uid)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateFeedbackUsesCaller(t *testing.T) {
	svc := &fakeService{}
	r, m := setup(svc)

	w := post(r, m, map[string]any{"rating": 5, "comment": "ok", "participantUid": "spoof"}, "u1")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "u1", svc.created.ParticipantUID)
}

func TestCreateFeedbackValidation(t *testing.T) {
	r, m := setup(&fakeService{})

	assert.Equal(t, http.StatusBadRequest, post(r, m, map[string]any{"rating": 9}, "u1").Code)
	assert.Equal(t, http.StatusBadRequest, post(r, m, map[string]any{"rating": 3, "campId": "x"}, "u1").Code)
	assert.Equal(t, http.StatusUnauthorized, post(r, m, map[string]any{"rating": 3}, "").Code)
}

func TestListFeedback(t *testing.T) {
	r, _ := setup(&fakeService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feedback", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var items []FeedbackResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Ali", items[0].ParticipantName)
}

func TestListFeedbackStoreFault(t *testing.T) {
	r, _ := setup(&fakeService{listErr: errors.New("connection reset")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feedback", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}
