package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCSRFSetsCookieOnGet(t *testing.T) {
	h := CSRF(false)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var token string
	for _, c := range rec.Result().Cookies() {
		if c.Name == CSRFCookieName {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("no CSRF cookie set on GET")
	}
	if len(token) != csrfTokenLength*2 {
		t.Errorf("token length = %d, want %d hex chars", len(token), csrfTokenLength*2)
	}
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	h := CSRF(false)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/portfolio/select", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "sometoken"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestCSRFAcceptsMatchingHeader(t *testing.T) {
	h := CSRF(false)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/portfolio/select", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "sometoken"})
	req.Header.Set(CSRFHeaderName, "sometoken")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestCSRFAcceptsMatchingFormField(t *testing.T) {
	h := CSRF(false)(okHandler())

	form := url.Values{CSRFFormField: {"sometoken"}}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "sometoken"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestCSRFRejectsMismatchedToken(t *testing.T) {
	h := CSRF(false)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/portfolio/unlock", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "sometoken"})
	req.Header.Set(CSRFHeaderName, "othertoken")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}
