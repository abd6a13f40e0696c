package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthReportsCredentialState(t *testing.T) {
	for _, hasKey := range []bool{true, false} {
		app := newTestApp(&stubEditor{hasKey: hasKey})
		rec := httptest.NewRecorder()
		app.Health(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["ok"] != true {
			t.Fatalf("ok = %v", body["ok"])
		}
		if body["hasFalKey"] != hasKey {
			t.Fatalf("hasFalKey = %v, want %v", body["hasFalKey"], hasKey)
		}
		if body["message"] == "" {
			t.Fatalf("expected a message")
		}
	}
}
