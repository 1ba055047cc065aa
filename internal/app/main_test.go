package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/zenithcamp/medcamp-backend/internal/app"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
	"github.com/zenithcamp/medcamp-backend/internal/db"
	"github.com/zenithcamp/medcamp-backend/internal/payment"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/storage"
)

var (
	testRouter   *gin.Engine
	testPool     *pgxpool.Pool
	jwtManager   *auth.JWTManager
	testProvider = &recordingProvider{}
)

// recordingProvider stands in for Stripe and remembers the last amount.
type recordingProvider struct {
	calls  int
	amount int64
}

func (p *recordingProvider) CreateIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error) {
	p.calls++
	p.amount = amount
	return &payment.Intent{ID: "pi_test", ClientSecret: "pi_test_secret", Amount: amount, Currency: currency}, nil
}

func TestMain(m *testing.M) {
	// Attempt to load .env from the repository root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("No .env file found or failed to load: %v", err)
	}

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		log.Printf("TEST_DB_DSN not set, skipping database integration tests")
		os.Exit(0)
	}

	ctx := context.Background()
	var err error
	testPool, err = db.NewPool(ctx, dsn, 10)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	if err := db.Migrate(ctx, testPool); err != nil {
		log.Fatalf("Unable to migrate database: %v\n", err)
	}

	uploadDir, err := os.MkdirTemp("", "medcamp-uploads-*")
	if err != nil {
		log.Fatalf("Unable to create upload dir: %v\n", err)
	}
	store, err := storage.NewLocalStorage(uploadDir)
	if err != nil {
		log.Fatalf("Unable to init storage: %v\n", err)
	}

	// Cookie transport, as deployed by default.
	appContainer := app.NewContainer(app.Config{
		DBPool:           testPool,
		JWTSecret:        "integration-secret",
		TokenTransport:   auth.CookieTransport,
		RegListAdminOnly: true,
		PaymentCurrency:  "usd",
		PaymentProvider:  testProvider,
		Storage:          store,
	})

	testRouter = appContainer.Router
	jwtManager = appContainer.JWTManager

	gin.SetMode(gin.TestMode)

	exitCode := m.Run()

	testPool.Close()
	os.RemoveAll(uploadDir)
	os.Exit(exitCode)
}

func clearTables() {
	ctx := context.Background()
	queries := []string{
		"TRUNCATE TABLE public.transactions, public.feedback, public.registrations, public.camps, public.banners CASCADE",
		"TRUNCATE TABLE public.users CASCADE",
	}
	for _, q := range queries {
		if _, err := testPool.Exec(ctx, q); err != nil {
			log.Printf("Failed to clean table: %v", err)
		}
	}
}

// executeRequest sends body as JSON. A non-empty token travels in the token cookie.
func executeRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
	}

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func generateToken(uid string) string {
	token, _ := jwtManager.GenerateAccessToken(uid)
	return token
}

func createTestUser(t *testing.T, uid string, admin bool) string {
	t.Helper()
	w := executeRequest(http.MethodPost, "/users/google-sign-in", map[string]string{
		"uid":   uid,
		"name":  "User " + uid,
		"email": uid + "@example.com",
	}, "")
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, w.Code)

	if admin {
		_, err := testPool.Exec(context.Background(), "UPDATE public.users SET role = 'admin' WHERE uid = $1", uid)
		require.NoError(t, err)
	}
	return generateToken(uid)
}

func createTestCamp(t *testing.T, adminToken string, name string) string {
	t.Helper()
	w := executeRequest(http.MethodPost, "/camps", map[string]any{
		"name":                   name,
		"fees":                   25.5,
		"location":               "Dhaka",
		"healthcareProfessional": "Dr. Rahman",
		"description":            "General health checkup",
	}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["_id"].(string)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
