package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandler_NotFound(t *testing.T) {
	h := New()

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	rec := httptest.NewRecorder()

	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["error"] != "Route not found" {
		t.Errorf("unexpected error message: %s", response["error"])
	}
}

func TestFaultBoundary_ErrorBecomesOpaque500(t *testing.T) {
	fb := NewFaultBoundary(testLogger())

	failing := func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("db on fire: secret=hunter2")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	fb.Wrap(failing)(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["error"] != "Something went wrong!" {
		t.Errorf("unexpected error message: %s", response["error"])
	}

	if len(response) != 1 {
		t.Errorf("expected a single error field, got %v", response)
	}
}

func TestFaultBoundary_DoesNotLeakDetail(t *testing.T) {
	fb := NewFaultBoundary(testLogger())

	failing := func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("pgx: connection refused at 10.0.0.3:5432")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	fb.Wrap(failing)(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "connection refused") || strings.Contains(body, "10.0.0.3") {
		t.Errorf("internal detail leaked to client: %s", body)
	}
}

func TestFaultBoundary_SuccessPassesThrough(t *testing.T) {
	fb := NewFaultBoundary(testLogger())

	ok := func(w http.ResponseWriter, r *http.Request) error {
		writeJSON(w, http.StatusOK, map[string]string{"ok": "yes"})
		return nil
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	fb.Wrap(ok)(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}
