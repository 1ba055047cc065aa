package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimitPerIP(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Every(time.Hour), 2)
	r := gin.New()
	r.POST("/limited", RateLimit(limiter), func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/limited", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))

	assert.Equal(t, http.StatusOK, call("10.0.0.2"))
}

func TestRateLimiterForgetsIdleIPs(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Every(time.Second), 1)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	limiter.GetLimiter("10.0.0.1")
	limiter.GetLimiter("10.0.0.2")
	assert.Equal(t, 2, limiter.Len())

	now = now.Add(idleTTL + time.Minute)
	limiter.GetLimiter("10.0.0.3")
	assert.Equal(t, 1, limiter.Len())
}
