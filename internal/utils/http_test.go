package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shubhamkr/streamtube-backend/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteSuccess_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	WriteSuccess(w, http.StatusOK, map[string]string{"hello": "world"}, "ok")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var envelope models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if !envelope.Success {
		t.Error("expected success=true")
	}
	if envelope.StatusCode != http.StatusOK {
		t.Errorf("expected status_code %d, got %d", http.StatusOK, envelope.StatusCode)
	}
	if envelope.Message != "ok" {
		t.Errorf("expected message 'ok', got %q", envelope.Message)
	}
	if envelope.Data == nil {
		t.Error("expected non-nil data")
	}
}

func TestWriteError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusConflict, "username or email already exists", "email taken")

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}

	var envelope models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if envelope.Success {
		t.Error("expected success=false")
	}
	if envelope.Data != nil {
		t.Error("expected data to be omitted on failure")
	}
	if len(envelope.Errors) != 1 || envelope.Errors[0] != "email taken" {
		t.Errorf("unexpected errors list: %v", envelope.Errors)
	}
}
