package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/matchmerit/services"
	"github.com/go-chi/chi/v5"
)

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", services.ErrMatchNotFound, http.StatusNotFound, "MATCH_NOT_FOUND"},
		{"conflict", services.ErrAlreadyJoined, http.StatusConflict, "ALREADY_JOINED"},
		{"forbidden", services.ErrMatchLocked, http.StatusForbidden, "MATCH_LOCKED"},
		{"unauthorized", services.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"bad request", services.ErrMinimumOwnerRequired, http.StatusBadRequest, "MINIMUM_OWNER_REQUIRED"},
		{"wrapped", errors.Join(errors.New("context"), services.ErrInvalidTransition), http.StatusBadRequest, "INVALID_TRANSITION"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			mapServiceErrorToHTTP(rec, req, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			var body map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["error"] == nil {
				t.Error("body must carry an error message")
			}
			code, _ := body["code"].(string)
			if code != tt.wantCode {
				t.Errorf("code: got %q, want %q", code, tt.wantCode)
			}
			if tt.wantStatus == http.StatusInternalServerError && strings.Contains(rec.Body.String(), "connection reset") {
				t.Error("internal error details must not leak to the client")
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"name":"padel"}`, ""},
		{"empty", ``, "body must not be empty"},
		{"malformed", `{"name":`, "badly-formed JSON"},
		{"wrong type", `{"name":5}`, `incorrect JSON type for field "name"`},
		{"unknown field", `{"nickname":"x"}`, "unknown key"},
		{"two values", `{"name":"a"}{"name":"b"}`, "single JSON value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := readJSON(rec, req, &dst)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("readJSON: %v", err)
				}
				if dst.Name != "padel" {
					t.Errorf("name: got %q, want padel", dst.Name)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error: got %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetIDFromURL(t *testing.T) {
	const id = "0b8f5d4e-2f6a-4c1e-9d3b-7a1c2e4f6a8b"

	tests := []struct {
		name    string
		params  map[string]string
		want    string
		wantErr bool
	}{
		{"uuid", map[string]string{"matchID": id}, id, false},
		{"uppercase uuid", map[string]string{"matchID": strings.ToUpper(id)}, id, false},
		{"missing", map[string]string{}, "", true},
		{"not a uuid", map[string]string{"matchID": "42"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withURLParams(httptest.NewRequest(http.MethodGet, "/", nil), tt.params)
			got, err := getIDFromURL(req, "matchID")
			if (err != nil) != tt.wantErr {
				t.Fatalf("error: got %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("id: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServerErrorResponse_LogsThroughDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	r := httptest.NewRequest(http.MethodGet, "/matches/m1/participants", nil)
	w := httptest.NewRecorder()
	serverErrorResponse(w, r, errors.New("pq: connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("body leaks the cause: %s", w.Body.String())
	}
	logged := buf.String()
	for _, want := range []string{"internal server error", `"path":"/matches/m1/participants"`, "pq: connection refused"} {
		if !strings.Contains(logged, want) {
			t.Errorf("log %q: missing %q", logged, want)
		}
	}
}
