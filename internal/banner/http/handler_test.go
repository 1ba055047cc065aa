package http

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenithcamp/medcamp-backend/internal/auth"
	"github.com/zenithcamp/medcamp-backend/internal/banner"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/storage"
)

type memRepo struct {
	banners map[string]*banner.Banner
}

func (m *memRepo) Create(ctx context.Context, b *banner.Banner) error {
	m.banners[b.ID] = b
	return nil
}

func (m *memRepo) List(ctx context.Context) ([]*banner.Banner, error) {
	out := make([]*banner.Banner, 0, len(m.banners))
	for _, b := range m.banners {
		out = append(out, b)
	}
	return out, nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*banner.Banner, error) {
	b, ok := m.banners[id]
	if !ok {
		return nil, banner.ErrNotFound
	}
	return b, nil
}

func (m *memRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.banners[id]; !ok {
		return banner.ErrNotFound
	}
	delete(m.banners, id)
	return nil
}

type testEnv struct {
	router *gin.Engine
	repo   *memRepo
	jwt    *auth.JWTManager
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	repo := &memRepo{banners: map[string]*banner.Banner{}}
	m := auth.NewJWTManager("secret")
	adminOnly := func(c *gin.Context) {
		if auth.GetUserID(c) != "admin" {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}

	r := gin.New()
	RegisterRoutes(r, NewHandler(banner.NewService(repo, store)), auth.AuthRequired(m, auth.HeaderTransport), adminOnly)
	return &testEnv{router: r, repo: repo, jwt: m}
}

func (e *testEnv) upload(t *testing.T, uid string, withImage bool) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Free checkup"))
	require.NoError(t, mw.WriteField("description", "Every Sunday"))
	if withImage {
		fw, err := mw.CreateFormFile(ImageField, "hero.png")
		require.NoError(t, err)
		require.NoError(t, png.Encode(fw, image.NewRGBA(image.Rect(0, 0, 64, 32))))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/home/banner/carousel", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if uid != "" {
		token, _ := e.jwt.GenerateAccessToken(uid)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestUploadAndServeBanner(t *testing.T) {
	env := setup(t)

	w := env.upload(t, "admin", true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created BannerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Free checkup", created.Title)
	assert.Equal(t, banner.ImageURL(created.ID), created.ImageURL)
	require.NotNil(t, created.ThumbnailURL)

	w = env.get("/home/banner/carousel")
	require.Equal(t, http.StatusOK, w.Code)
	var items []BannerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)

	w = env.get(created.ImageURL)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	_, err := png.Decode(io.Reader(w.Body))
	assert.NoError(t, err)

	w = env.get(*created.ThumbnailURL)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
}

func TestUploadBannerAccess(t *testing.T) {
	env := setup(t)

	assert.Equal(t, http.StatusUnauthorized, env.upload(t, "", true).Code)
	assert.Equal(t, http.StatusForbidden, env.upload(t, "u1", true).Code)
	assert.Equal(t, http.StatusBadRequest, env.upload(t, "admin", false).Code)
	assert.Empty(t, env.repo.banners)
}

func TestDeleteBanner(t *testing.T) {
	env := setup(t)

	w := env.upload(t, "admin", true)
	require.Equal(t, http.StatusCreated, w.Code)
	var created BannerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	del := func(uid string) int {
		req := httptest.NewRequest(http.MethodDelete, "/home/banner/carousel/"+created.ID, nil)
		token, _ := env.jwt.GenerateAccessToken(uid)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusForbidden, del("u1"))
	assert.Equal(t, http.StatusOK, del("admin"))
	assert.Equal(t, http.StatusNotFound, del("admin"))
	assert.Equal(t, http.StatusNotFound, env.get(created.ImageURL).Code)
}

func TestServeBannerBadID(t *testing.T) {
	env := setup(t)

	assert.Equal(t, http.StatusBadRequest, env.get("/files/banners/not-a-uuid").Code)
	assert.Equal(t, http.StatusNotFound, env.get("/files/banners/5b0e5a60-0d3c-4f5e-9a10-3c2b1a0f9e8d/thumbnail").Code)
}
