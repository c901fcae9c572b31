package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/inshiratech/halal-compliance-demo/internal/config"
	"github.com/inshiratech/halal-compliance-demo/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.DefaultConfig()
	cfg.Data.DataDir = t.TempDir()

	s := NewServer(cfg)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestServerServesDashboardAndAPI(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "HalalDesk") {
		t.Fatal("dashboard page missing app title")
	}

	// 未知路径也回退到演示页面
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no/such/page", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("fallback: %d", w.Code)
	}

	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("api status: %d body=%s", w.Code, w.Body.String())
	}
}

func TestServerSeedsStoreOnStartup(t *testing.T) {
	s := newTestServer(t)

	certs, err := s.GetStore().ListCertificates(store.CertQueryOptions{})
	if err != nil {
		t.Fatalf("list certificates: %v", err)
	}
	if len(certs) != 8 {
		t.Fatalf("seeded certificates = %d, want 8", len(certs))
	}
}
