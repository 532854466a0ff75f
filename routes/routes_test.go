package routes

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/matchmerit/handlers"
	"github.com/Dosada05/matchmerit/repositories"
	"github.com/Dosada05/matchmerit/services"
	"github.com/go-chi/chi/v5"
)

func newRouter(t *testing.T) *chi.Mux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := repositories.NewMemoryUserRepository()
	groups := repositories.NewMemoryGroupRepository()
	matches := repositories.NewMemoryMatchRepository()
	groupService := services.NewGroupService(groups, users, logger)
	matchService := services.NewMatchService(matches, groups, nil, logger)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		Options{JWTSecret: "routes-test", AllowedOrigins: []string{"https://app.example"}},
		handlers.NewAuthHandler(services.NewAuthService(users), "routes-test", time.Hour),
		handlers.NewUserHandler(services.NewUserService(users)),
		handlers.NewGroupHandler(groupService, matchService),
		handlers.NewMatchHandler(matchService),
	)
	return router
}

func TestSetupRoutes(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"swagger spec", http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{"login is public", http.MethodPost, "/auth/login", http.StatusBadRequest},
		{"groups need a token", http.MethodGet, "/groups", http.StatusUnauthorized},
		{"participants need a token", http.MethodGet, "/matches/0b8f5d4e-2f6a-4c1e-9d3b-7a1c2e4f6a8b/participants", http.StatusUnauthorized},
		{"evaluation needs a token", http.MethodPatch, "/matches/0b8f5d4e-2f6a-4c1e-9d3b-7a1c2e4f6a8b/participants/0b8f5d4e-2f6a-4c1e-9d3b-7a1c2e4f6a8c/evaluation", http.StatusUnauthorized},
		{"unknown route", http.MethodGet, "/tournaments", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(""))
			router.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("%s %s: got %d, want %d", tt.method, tt.path, rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/groups", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Errorf("Access-Control-Allow-Origin: got %q", got)
	}
}
