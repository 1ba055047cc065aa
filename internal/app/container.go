package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zenithcamp/medcamp-backend/internal/api"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
	"github.com/zenithcamp/medcamp-backend/internal/banner"
	"github.com/zenithcamp/medcamp-backend/internal/camp"
	"github.com/zenithcamp/medcamp-backend/internal/feedback"
	"github.com/zenithcamp/medcamp-backend/internal/payment"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/storage"
	"github.com/zenithcamp/medcamp-backend/internal/registration"
	"github.com/zenithcamp/medcamp-backend/internal/transaction"
	"github.com/zenithcamp/medcamp-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	TrustedProxies   []string
	DBPool           *pgxpool.Pool
	JWTSecret        string
	TokenTransport   auth.Transport
	CookieSecure     bool
	RegListAdminOnly bool
	PaymentCurrency  string

	// PaymentProvider may be nil, in which case payment intents are refused.
	PaymentProvider payment.Provider
	Storage         storage.Storage

	// Optional rate limiter overrides.
	SignInLimiter  *api.IPRateLimiter
	PaymentLimiter *api.IPRateLimiter
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router      *gin.Engine
	JWTManager  *auth.JWTManager
	UserService user.Service
	CampService camp.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	jwtManager := auth.NewJWTManager(cfg.JWTSecret)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Camp Module
	campRepo := camp.NewPgxRepository(cfg.DBPool)
	campService := camp.NewService(campRepo)

	// Registration Module
	regRepo := registration.NewPgxRepository(cfg.DBPool)
	regService := registration.NewService(regRepo)

	// Feedback Module
	feedbackRepo := feedback.NewPgxRepository(cfg.DBPool)
	feedbackService := feedback.NewService(feedbackRepo)

	// Transaction Module
	txRepo := transaction.NewPgxRepository(cfg.DBPool)
	txService := transaction.NewService(txRepo)

	// Payment Module
	paymentService := payment.NewService(cfg.PaymentProvider, cfg.PaymentCurrency)

	// Banner Module
	bannerRepo := banner.NewRepository(cfg.DBPool)
	bannerService := banner.NewService(bannerRepo, cfg.Storage)

	// API Router Config
	routerParams := api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		TrustedProxies:      cfg.TrustedProxies,
		TokenTransport:      cfg.TokenTransport,
		CookieSecure:        cfg.CookieSecure,
		RegListAdminOnly:    cfg.RegListAdminOnly,
		JWTManager:          jwtManager,
		UserService:         userService,
		CampService:         campService,
		RegistrationService: regService,
		FeedbackService:     feedbackService,
		TransactionService:  txService,
		PaymentService:      paymentService,
		BannerService:       bannerService,
		SignInLimiter:       cfg.SignInLimiter,
		PaymentLimiter:      cfg.PaymentLimiter,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:      router,
		JWTManager:  jwtManager,
		UserService: userService,
		CampService: campService,
	}
}
