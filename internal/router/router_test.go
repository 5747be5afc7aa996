package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"voxbill/internal/config"
	"voxbill/internal/handler"
	"voxbill/internal/router"
	"voxbill/mocks"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		CORS:     config.CORSConfig{AllowedOrigins: []string{"http://localhost:5000"}},
		Frontend: config.FrontendConfig{URL: "https://app.example.com"},
	}
	return router.Setup(
		cfg,
		new(mocks.MockSessionVerifier),
		handler.NewHealthHandler(),
		handler.NewAuthHandler(),
		handler.NewAudioHandler(new(mocks.MockInvoiceService)),
		handler.NewInvoiceHandler(new(mocks.MockInvoiceService), new(mocks.MockRenderService)),
		handler.NewContactHandler(new(mocks.MockContactService)),
		handler.NewRedirectHandler(&config.FrontendConfig{URL: "https://app.example.com"}),
	)
}

func TestRouter_HealthRoute(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ProtectedRequiresToken(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_PageRedirects(t *testing.T) {
	r := testRouter()

	for path, target := range map[string]string{
		"/invoice_tool": "https://app.example.com/tool.html",
		"/pricing":      "https://app.example.com/pricing.html",
		"/contact":      "https://app.example.com/contact.html",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, target, w.Header().Get("Location"), path)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
