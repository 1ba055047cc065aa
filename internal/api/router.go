package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/zenithcamp/medcamp-backend/internal/auth"
	authHttp "github.com/zenithcamp/medcamp-backend/internal/auth/http"
	"github.com/zenithcamp/medcamp-backend/internal/banner"
	bannerHttp "github.com/zenithcamp/medcamp-backend/internal/banner/http"
	"github.com/zenithcamp/medcamp-backend/internal/camp"
	campHttp "github.com/zenithcamp/medcamp-backend/internal/camp/http"
	"github.com/zenithcamp/medcamp-backend/internal/feedback"
	feedbackHttp "github.com/zenithcamp/medcamp-backend/internal/feedback/http"
	"github.com/zenithcamp/medcamp-backend/internal/payment"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/logger"
	paymentHttp "github.com/zenithcamp/medcamp-backend/internal/payment/http"
	"github.com/zenithcamp/medcamp-backend/internal/registration"
	registrationHttp "github.com/zenithcamp/medcamp-backend/internal/registration/http"
	"github.com/zenithcamp/medcamp-backend/internal/transaction"
	transactionHttp "github.com/zenithcamp/medcamp-backend/internal/transaction/http"
	"github.com/zenithcamp/medcamp-backend/internal/user"
	userHttp "github.com/zenithcamp/medcamp-backend/internal/user/http"
)

// LivenessMessage is returned by GET /.
const LivenessMessage = "medical camp server is running"

// Config holds the dependencies needed to build the router.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	TrustedProxies   []string
	TokenTransport   auth.Transport
	CookieSecure     bool
	RegListAdminOnly bool

	JWTManager          *auth.JWTManager
	UserService         user.Service
	CampService         camp.Service
	RegistrationService registration.Service
	FeedbackService     feedback.Service
	TransactionService  transaction.Service
	PaymentService      payment.Service
	BannerService       banner.Service

	// Optional; sensible per-IP defaults are used when nil.
	SignInLimiter  *IPRateLimiter
	PaymentLimiter *IPRateLimiter
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Rate limiting keys on ClientIP, so X-Forwarded-For is only honored from
	// the configured proxies. With none, the socket peer is the client.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error().Err(err).Strs("proxies", cfg.TrustedProxies).Msg("invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}

	// Global Middleware:
	// - RequestID: tags every request and response with X-Request-ID.
	// - RequestLogger: structured access log.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(RequestID(), RequestLogger(), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	// authMiddleware: Validates the token carried by the configured transport.
	authMiddleware := auth.AuthRequired(cfg.JWTManager, cfg.TokenTransport)
	// adminMiddleware: Further checks that the caller holds the admin role.
	adminMiddleware := RequireAdmin(cfg.UserService)

	signInLimiter := cfg.SignInLimiter
	if signInLimiter == nil {
		// 20 requests per minute, bursts of 10
		signInLimiter = NewIPRateLimiter(rate.Every(3*time.Second), 10)
	}
	paymentLimiter := cfg.PaymentLimiter
	if paymentLimiter == nil {
		// 30 requests per minute, bursts of 5
		paymentLimiter = NewIPRateLimiter(rate.Every(2*time.Second), 5)
	}

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := authHttp.NewHandler(cfg.JWTManager, cfg.TokenTransport, cfg.CookieSecure)
	userHandler := userHttp.NewHandler(cfg.UserService)
	campHandler := campHttp.NewHandler(cfg.CampService)
	regHandler := registrationHttp.NewHandler(cfg.RegistrationService)
	feedbackHandler := feedbackHttp.NewHandler(cfg.FeedbackService)
	txHandler := transactionHttp.NewHandler(cfg.TransactionService)
	paymentHandler := paymentHttp.NewHandler(cfg.PaymentService)
	bannerHandler := bannerHttp.NewHandler(cfg.BannerService)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, LivenessMessage)
	})

	root := r.Group("")
	{
		authHttp.RegisterRoutes(root, authHandler, RateLimit(signInLimiter))
		userHttp.RegisterRoutes(root, userHandler, authMiddleware, adminMiddleware)
		campHttp.RegisterRoutes(root, campHandler, authMiddleware, adminMiddleware)
		registrationHttp.RegisterRoutes(root, regHandler, authMiddleware, adminMiddleware, cfg.RegListAdminOnly)
		feedbackHttp.RegisterRoutes(root, feedbackHandler, authMiddleware)
		transactionHttp.RegisterRoutes(root, txHandler, authMiddleware)
		paymentHttp.RegisterRoutes(root, paymentHandler, RateLimit(paymentLimiter))
		bannerHttp.RegisterRoutes(root, bannerHandler, authMiddleware, adminMiddleware)
	}

	return r
}

// corsConfig allows the configured production origins, or local dev servers
// outside production. Credentials are allowed so the token cookie travels.
func corsConfig(cfg Config) cors.Config {
	config := cors.DefaultConfig()
	if cfg.IsProduction {
		config.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		config.AllowOrigins = []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:3000",
		}
	}
	if len(config.AllowOrigins) == 0 {
		// cors.New panics on an empty origin list with AllowAllOrigins unset.
		config.AllowOrigins = []string{"http://localhost"}
	}
	config.AllowCredentials = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}
	return config
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
