package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mslopes/investsnap/config"
	"github.com/mslopes/investsnap/internal/yahoo"
)

func TestInitializeApp_HappyPath(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Stand-in upstream so the readiness probe has something to ping
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	old := providerFactory
	providerFactory = func(cfg config.Config) *yahoo.Client {
		return yahoo.NewClient(config.YahooConfig{QuoteSummaryURL: upstream.URL, UserAgent: "test"})
	}
	t.Cleanup(func() { providerFactory = old })

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: err=%v", err)
	}

	// Hit health endpoints
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w2.Code)
	}

	// Call cleanup and ensure it doesn't panic
	cleanup()
}

func TestInitializeApp_ReadyzDegraded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Point the client at a closed port so the ping fails
	old := providerFactory
	providerFactory = func(cfg config.Config) *yahoo.Client {
		return yahoo.NewClient(config.YahooConfig{QuoteSummaryURL: "http://127.0.0.1:1", UserAgent: "test"})
	}
	t.Cleanup(func() { providerFactory = old })

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	defer cleanup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz status=%d, want 503", w.Code)
	}
}
