package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, map[string]string{"status": "ok"}, http.StatusCreated)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected a non-empty body to be written")
	}

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected valid JSON body, got: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rr := httptest.NewRecorder()

	// channels are not serializable to JSON
	_, err := WriteJSON(rr, make(chan int), http.StatusOK)
	if err == nil {
		t.Fatal("expected error for unserializable data, got nil")
	}
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rr.Code)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	if _, err := WriteError(rr, "something went wrong", http.StatusNotFound); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected valid JSON body, got: %v", err)
	}
	if body["detail"] != "something went wrong" {
		t.Errorf("expected detail 'something went wrong', got %q", body["detail"])
	}
}
