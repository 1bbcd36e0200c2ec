package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]int{"n": 1})

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.Success || resp.Error != "" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestCreatedStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, nil, "created")
	if rec.Code != 201 {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, 429, "slow down")

	if rec.Code != 429 {
		t.Fatalf("status = %d, want 429", rec.Code)
	}

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Success || resp.Error != "slow down" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}
