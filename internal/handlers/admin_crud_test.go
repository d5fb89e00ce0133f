package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"framelight/internal/feed"
	"framelight/internal/models"
)

// postForm builds a POST request with form values.
func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestCategoryCreateAndProtectHandlers(t *testing.T) {
	env := newTestEnv(t)

	name := "__test_admin_cat"
	cleanCategories(t, env.DB, name)
	t.Cleanup(func() { cleanCategories(t, env.DB, name) })

	rec := httptest.NewRecorder()
	env.Admin.CategoryCreate(rec, postForm("/admin/categories", url.Values{"name": {name}}))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("create status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}

	c, err := env.Categories.FindByName(name)
	if err != nil || c == nil {
		t.Fatalf("category not created: %v", err)
	}
	if !c.IsActive {
		t.Error("new categories should start active")
	}

	// Protect it. The stored verifier is the base64 of the password.
	req := postForm("/admin/categories/"+c.ID.String()+"/protect", url.Values{
		"protected": {"1"},
		"password":  {"secret99"},
	})
	req = withChiURLParam(req, "id", c.ID.String())
	rec = httptest.NewRecorder()
	env.Admin.CategoryProtect(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("protect status: got %d", rec.Code)
	}

	c, _ = env.Categories.FindByName(name)
	if !c.IsPasswordProtected {
		t.Fatal("category should be protected")
	}
	if c.PasswordHash == nil || *c.PasswordHash != feed.EncodeVerifier("secret99") {
		t.Error("stored verifier should be the encoded password")
	}

	// Remove protection; the verifier must be cleared.
	req = postForm("/admin/categories/"+c.ID.String()+"/protect", url.Values{"protected": {"0"}})
	req = withChiURLParam(req, "id", c.ID.String())
	rec = httptest.NewRecorder()
	env.Admin.CategoryProtect(rec, req)

	c, _ = env.Categories.FindByName(name)
	if c.IsPasswordProtected || c.PasswordHash != nil {
		t.Error("removing protection should clear the verifier")
	}
}

func TestCategoryCreateRejectsReservedName(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Admin.CategoryCreate(rec, postForm("/admin/categories", url.Values{"name": {feed.AllCategory}}))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d", rec.Code)
	}

	c, err := env.Categories.FindByName(feed.AllCategory)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if c != nil {
		env.Categories.Delete(c.ID)
		t.Error("the aggregate filter name must not become a real category")
	}
}

func TestCategoryReorderHandler(t *testing.T) {
	env := newTestEnv(t)

	names := []string{"__test_reorder_a", "__test_reorder_b", "__test_reorder_c"}
	cleanCategories(t, env.DB, names...)
	t.Cleanup(func() { cleanCategories(t, env.DB, names...) })

	ids := make(map[string]string, len(names))
	for _, n := range names {
		c, err := env.Categories.Create(n)
		if err != nil {
			t.Fatalf("create category %s: %v", n, err)
		}
		ids[n] = c.ID.String()
	}

	// Reverse the order.
	rec := httptest.NewRecorder()
	env.Admin.CategoryReorder(rec, postForm("/admin/categories/reorder", url.Values{
		"order": {ids[names[2]], ids[names[1]], ids[names[0]]},
	}))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d", rec.Code)
	}

	all, err := env.Categories.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	pos := make(map[string]int)
	for i, c := range all {
		pos[c.Name] = i
	}
	if !(pos[names[2]] < pos[names[1]] && pos[names[1]] < pos[names[0]]) {
		t.Errorf("display order not applied: %v", pos)
	}
}

func TestPortfolioCreateHandlerParsesForm(t *testing.T) {
	env := newTestEnv(t)

	name := "__test_admin_items"
	cleanCategories(t, env.DB, name)
	t.Cleanup(func() { cleanCategories(t, env.DB, name) })
	if _, err := env.Categories.Create(name); err != nil {
		t.Fatalf("create category: %v", err)
	}

	rec := httptest.NewRecorder()
	env.Admin.PortfolioCreate(rec, postForm("/admin/portfolio", url.Values{
		"title":        {"Penthouse dusk"},
		"category":     {name},
		"image_url":    {"https://img.example.com/penthouse.jpg"},
		"video_url":    {"https://youtu.be/dQw4w9WgXcQ"},
		"caption":      {"Twilight exterior"},
		"tags":         {"exterior, twilight , drone"},
		"aspect_ratio": {"wide"},
		"is_featured":  {"1"},
	}))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d", rec.Code)
	}

	items, err := env.Portfolio.FeedPage(name, 10, 0)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected 1 item, got %d (err %v)", len(items), err)
	}
	item := items[0]
	if item.AspectRatio != models.AspectWide {
		t.Errorf("aspect ratio: got %q", item.AspectRatio)
	}
	if !item.IsFeatured {
		t.Error("featured flag not set")
	}
	if len(item.Tags) != 3 || item.Tags[1] != "twilight" {
		t.Errorf("tags not trimmed and split: %v", item.Tags)
	}
	if item.VideoURL == nil {
		t.Error("video URL not stored")
	}
}

func TestSettingsSaveRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Admin.SettingsSave(rec, postForm("/admin/settings", url.Values{
		"name":    {"Framelight Studio"},
		"tagline": {"Spaces in their best light"},
		"phone":   {"+40 700 000 000"},
		"email":   {"hello@framelight.example"},
		"address": {"Bucharest"},
	}))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d", rec.Code)
	}

	cfg, err := env.Settings.SiteConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "Framelight Studio" {
		t.Errorf("name: got %q", cfg.Name)
	}
	if cfg.Contact.Email != "hello@framelight.example" {
		t.Errorf("email: got %q", cfg.Contact.Email)
	}
}

func TestUserToggleBlocksSelf(t *testing.T) {
	env := newTestEnv(t)

	email := "__test_selftoggle@example.com"
	cleanUsers(t, env.DB, email)
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })

	user, err := env.Users.Create(email, "password123", "Self Toggle", models.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	sess := testSession(user.ID, email, string(models.RoleSuperAdmin))
	req := postForm("/admin/users/"+user.ID.String()+"/toggle", url.Values{})
	req = withChiURLParam(req, "id", user.ID.String())
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	env.Admin.UserToggle(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
	fresh, _ := env.Users.FindByID(user.ID)
	if fresh == nil || !fresh.IsActive {
		t.Error("self-toggle must not disable the account")
	}
}
