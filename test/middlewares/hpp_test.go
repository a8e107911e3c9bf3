package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	mw "github.com/5w1tchy/passcheck-api/internal/api/middlewares"
)

func TestHPPDefaultOptionsQueryFiltering(t *testing.T) {
	var seen url.Values
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	})

	wrapped := mw.HPP(mw.DefaultHPPOptions())(handler)

	// duplicate whitelisted param collapses to the first value;
	// non-whitelisted params are stripped entirely
	req := httptest.NewRequest("GET", "/test?length=16&length=32&debug=1", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if got := seen["length"]; len(got) != 1 || got[0] != "16" {
		t.Errorf("length values = %v, expected [16]", got)
	}
	if _, ok := seen["debug"]; ok {
		t.Errorf("non-whitelisted param survived: %v", seen)
	}
}
