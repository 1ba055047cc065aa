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
	"github.com/zenithcamp/medcamp-backend/internal/payment"
)

type fakeProvider struct {
	calls  int
	amount int64
	err    error
}

func (f *fakeProvider) CreateIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error) {
	f.calls++
	f.amount = amount
	if f.err != nil {
		return nil, f.err
	}
	return &payment.Intent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: amount, Currency: currency}, nil
}

func setup(p *fakeProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	noLimit := func(c *gin.Context) { c.Next() }
	RegisterRoutes(r.Group(""), NewHandler(payment.NewService(p, "usd")), noLimit)
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateIntent(t *testing.T) {
	p := &fakeProvider{}
	r := setup(p)

	w := post(r, `{"price": 10}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1000), p.amount)

	var resp CreateIntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_1_secret", resp.ClientSecret)
	assert.Equal(t, int64(1000), resp.Amount)
}

func TestCreateIntentWithoutPrice(t *testing.T) {
	p := &fakeProvider{}
	r := setup(p)

	assert.Equal(t, http.StatusBadRequest, post(r, `{"price": 0}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(r, `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(r, `{"price": "ten"}`).Code)
	assert.Zero(t, p.calls)
}

func TestCreateIntentProviderFault(t *testing.T) {
	p := &fakeProvider{err: errors.New("stripe: api key expired")}
	r := setup(p)

	w := post(r, `{"price": 3}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "api key")
}
