package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"

	"framelight/internal/models"
	"framelight/internal/session"
)

func TestLoginRejectsWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	email := "__test_login_wrong@example.com"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	if _, err := env.Users.Create(email, "correct-horse", "Login Test", models.RolePortfolioAdmin); err != nil {
		t.Fatalf("create user: %v", err)
	}

	rec := httptest.NewRecorder()
	env.Auth.LoginSubmit(rec, postForm("/admin/login", url.Values{
		"email":    {email},
		"password": {"battery-staple"},
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid email or password.") {
		t.Error("wrong password should re-render the login form with an error")
	}
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	env := newTestEnv(t)

	email := "__test_login_disabled@example.com"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	user, err := env.Users.Create(email, "correct-horse", "Disabled Test", models.RolePortfolioAdmin)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := env.Users.SetActive(user.ID, false); err != nil {
		t.Fatalf("disable user: %v", err)
	}

	rec := httptest.NewRecorder()
	env.Auth.LoginSubmit(rec, postForm("/admin/login", url.Values{
		"email":    {email},
		"password": {"correct-horse"},
	}))

	// A disabled account fails exactly like a wrong password.
	if !strings.Contains(rec.Body.String(), "Invalid email or password.") {
		t.Error("disabled accounts must not reveal their status")
	}
}

func TestLoginRoutesNewUserToTwoFASetup(t *testing.T) {
	env := newTestEnv(t)

	email := "__test_login_setup@example.com"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	if _, err := env.Users.Create(email, "correct-horse", "Setup Test", models.RolePortfolioAdmin); err != nil {
		t.Fatalf("create user: %v", err)
	}

	rec := httptest.NewRecorder()
	env.Auth.LoginSubmit(rec, postForm("/admin/login", url.Values{
		"email":    {email},
		"password": {"correct-horse"},
	}))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/2fa/setup" {
		t.Errorf("location: got %q, want /admin/2fa/setup", loc)
	}

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("login should set a session cookie")
	}
}

func TestTwoFAVerifyCompletesFirstTimeSetup(t *testing.T) {
	env := newTestEnv(t)

	email := "__test_2fa_complete@example.com"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	user, err := env.Users.Create(email, "correct-horse", "TwoFA Test", models.RolePortfolioAdmin)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Simulate the setup page having stored a secret.
	key, err := totp.Generate(totp.GenerateOpts{Issuer: totpIssuer, AccountName: email})
	if err != nil {
		t.Fatalf("totp generate: %v", err)
	}
	if err := env.Users.SetTOTPSecret(user.ID, key.Secret()); err != nil {
		t.Fatalf("set secret: %v", err)
	}

	// A logged-in session that has not completed 2FA yet.
	sess := testSession(user.ID, email, string(models.RolePortfolioAdmin))
	sess.TwoFADone = false
	req := postForm("/admin/2fa/verify", url.Values{})
	rec := httptest.NewRecorder()
	id, err := env.Sessions.Create(req.Context(), rec, sess)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	if err != nil {
		t.Fatalf("generate code: %v", err)
	}

	req = postForm("/admin/2fa/verify", url.Values{"code": {code}})
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec = httptest.NewRecorder()
	env.Auth.TwoFAVerifySubmit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, body: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("location: got %q, want /admin", loc)
	}

	fresh, _ := env.Users.FindByID(user.ID)
	if fresh == nil || !fresh.TOTPEnabled {
		t.Error("first successful verification should enable TOTP on the account")
	}
}

func TestTwoFAVerifyRejectsBadCode(t *testing.T) {
	env := newTestEnv(t)

	email := "__test_2fa_badcode@example.com"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	user, err := env.Users.Create(email, "correct-horse", "BadCode Test", models.RolePortfolioAdmin)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	key, err := totp.Generate(totp.GenerateOpts{Issuer: totpIssuer, AccountName: email})
	if err != nil {
		t.Fatalf("totp generate: %v", err)
	}
	if err := env.Users.SetTOTPSecret(user.ID, key.Secret()); err != nil {
		t.Fatalf("set secret: %v", err)
	}
	if err := env.Users.EnableTOTP(user.ID); err != nil {
		t.Fatalf("enable totp: %v", err)
	}

	sess := testSession(user.ID, email, string(models.RolePortfolioAdmin))
	sess.TwoFADone = false
	req := postForm("/admin/2fa/verify", url.Values{"code": {"000000"}})
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	env.Auth.TwoFAVerifySubmit(rec, req)

	if !strings.Contains(rec.Body.String(), "Invalid code") {
		t.Error("bad code should re-render the verify form with an error")
	}
}
