// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"framelight/internal/cache"
	"framelight/internal/feed"
	"framelight/internal/middleware"
	"framelight/internal/models"
	"framelight/internal/render"
	"framelight/internal/storage"
	"framelight/internal/store"
)

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer   *render.Renderer
	users      *store.AdminUserStore
	categories *store.CategoryStore
	portfolio  *store.PortfolioStore
	team       *store.TeamStore
	pricing    *store.PricingStore
	inquiries  *store.InquiryStore
	settings   *store.SettingStore
	mediaStore *store.MediaStore
	storage    *storage.Client
	pageCache  *cache.PageCache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// storage may be nil when S3 is not configured; the media library then
// renders without the upload form.
func NewAdmin(renderer *render.Renderer, users *store.AdminUserStore, categories *store.CategoryStore, portfolio *store.PortfolioStore, team *store.TeamStore, pricing *store.PricingStore, inquiries *store.InquiryStore, settings *store.SettingStore, mediaStore *store.MediaStore, storageClient *storage.Client, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:   renderer,
		users:      users,
		categories: categories,
		portfolio:  portfolio,
		team:       team,
		pricing:    pricing,
		inquiries:  inquiries,
		settings:   settings,
		mediaStore: mediaStore,
		storage:    storageClient,
		pageCache:  pageCache,
	}
}

// invalidatePublic clears the cached homepage after a mutation that
// changes what visitors see.
func (a *Admin) invalidatePublic(r *http.Request) {
	a.pageCache.InvalidateAll(r.Context())
}

// urlID parses the {id} route parameter. Writes a 400 and returns false
// on garbage.
func urlID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// Dashboard renders the admin dashboard with live stats.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	itemCount, _ := a.portfolio.Count()
	newInquiries, _ := a.inquiries.CountNew()
	mediaCount, _ := a.mediaStore.Count()

	recent, err := a.inquiries.List("")
	if err != nil {
		slog.Error("list inquiries failed", "error", err)
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}

	a.renderer.AdminPage(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"ItemCount":       itemCount,
			"NewInquiries":    newInquiries,
			"MediaCount":      mediaCount,
			"RecentInquiries": recent,
		},
	})
}

// --- Portfolio items ---

// PortfolioList renders the portfolio management page.
func (a *Admin) PortfolioList(w http.ResponseWriter, r *http.Request) {
	items, err := a.portfolio.List()
	if err != nil {
		slog.Error("list portfolio failed", "error", err)
	}
	categories, err := a.categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
	}

	a.renderer.AdminPage(w, r, "portfolio", &render.PageData{
		Title:   "Portfolio",
		Section: "portfolio",
		Data: map[string]any{
			"Items":      items,
			"Categories": categories,
		},
	})
}

// PortfolioCreate handles the add-item form submission.
func (a *Admin) PortfolioCreate(w http.ResponseWriter, r *http.Request) {
	item := &models.PortfolioItem{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Category:    r.FormValue("category"),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
		Caption:     strings.TrimSpace(r.FormValue("caption")),
		AspectRatio: models.AspectRatio(r.FormValue("aspect_ratio")),
		IsFeatured:  r.FormValue("is_featured") == "1",
	}
	if item.AspectRatio != models.AspectWide && item.AspectRatio != models.AspectTall {
		item.AspectRatio = models.AspectSquare
	}
	if v := strings.TrimSpace(r.FormValue("video_url")); v != "" {
		item.VideoURL = &v
	}
	for _, t := range strings.Split(r.FormValue("tags"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			item.Tags = append(item.Tags, t)
		}
	}

	if item.Title == "" || item.Category == "" || item.ImageURL == "" {
		http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
		return
	}

	if _, err := a.portfolio.Create(item); err != nil {
		slog.Error("create portfolio item failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
}

// PortfolioUpdate handles the edit-item form submission. The form always
// posts the full field set, so every column is rewritten.
func (a *Admin) PortfolioUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.portfolio.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	item.Title = strings.TrimSpace(r.FormValue("title"))
	item.Category = r.FormValue("category")
	item.ImageURL = strings.TrimSpace(r.FormValue("image_url"))
	item.Caption = strings.TrimSpace(r.FormValue("caption"))
	item.AspectRatio = models.AspectRatio(r.FormValue("aspect_ratio"))
	item.IsFeatured = r.FormValue("is_featured") == "1"
	if item.AspectRatio != models.AspectWide && item.AspectRatio != models.AspectTall {
		item.AspectRatio = models.AspectSquare
	}
	item.VideoURL = nil
	if v := strings.TrimSpace(r.FormValue("video_url")); v != "" {
		item.VideoURL = &v
	}
	item.Tags = nil
	for _, t := range strings.Split(r.FormValue("tags"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			item.Tags = append(item.Tags, t)
		}
	}
	if n, err := strconv.Atoi(r.FormValue("display_order")); err == nil {
		item.DisplayOrder = n
	}

	if item.Title == "" || item.Category == "" || item.ImageURL == "" {
		http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
		return
	}

	if err := a.portfolio.Update(item); err != nil {
		slog.Error("update portfolio item failed", "id", id, "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
}

// PortfolioToggleFeatured flips an item's featured flag, which moves it
// to the front of the feed ordering.
func (a *Admin) PortfolioToggleFeatured(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.portfolio.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err := a.portfolio.SetFeatured(id, !item.IsFeatured); err != nil {
		slog.Error("toggle featured failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
}

// PortfolioDelete removes a portfolio item.
func (a *Admin) PortfolioDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.portfolio.Delete(id); err != nil {
		slog.Error("delete portfolio item failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/portfolio", http.StatusSeeOther)
}

// --- Categories ---

// CategoriesList renders the category management page.
func (a *Admin) CategoriesList(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
	}

	a.renderer.AdminPage(w, r, "categories", &render.PageData{
		Title:   "Categories",
		Section: "categories",
		Data:    map[string]any{"Categories": categories},
	})
}

// CategoryCreate adds a new category at the end of the display order.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" || name == feed.AllCategory {
		http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
		return
	}
	if _, err := a.categories.Create(name); err != nil {
		slog.Error("create category failed", "name", name, "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// CategoryRename renames a category. Items referencing the old name are
// cascaded inside the store transaction.
func (a *Admin) CategoryRename(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" || name == feed.AllCategory {
		http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
		return
	}
	if err := a.categories.Rename(id, name); err != nil {
		slog.Error("rename category failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// CategoryToggle flips a category's active flag.
func (a *Admin) CategoryToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	c, err := a.categories.FindByID(id)
	if err != nil || c == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err := a.categories.SetActive(id, !c.IsActive); err != nil {
		slog.Error("toggle category failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// CategoryProtect sets or removes a category's password protection.
// Setting it derives the stored verifier from the submitted password;
// removing it clears the verifier.
func (a *Admin) CategoryProtect(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if r.FormValue("protected") == "1" {
		password := r.FormValue("password")
		if password == "" {
			http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
			return
		}
		verifier := feed.EncodeVerifier(password)
		if err := a.categories.SetProtection(id, true, &verifier); err != nil {
			slog.Error("protect category failed", "error", err)
		} else {
			a.invalidatePublic(r)
		}
	} else {
		if err := a.categories.SetProtection(id, false, nil); err != nil {
			slog.Error("unprotect category failed", "error", err)
		} else {
			a.invalidatePublic(r)
		}
	}
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// CategoryDelete removes a category. Items keep the orphaned name and
// simply stop appearing on the public site.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.categories.Delete(id); err != nil {
		slog.Error("delete category failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// CategoryReorder rewrites the display order from an ordered id list
// posted as repeated "order" form values.
func (a *Admin) CategoryReorder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var ids []uuid.UUID
	for _, raw := range r.Form["order"] {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
		return
	}

	if err := a.categories.Reorder(ids); err != nil {
		slog.Error("reorder categories failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// --- Team ---

// TeamList renders the team management page.
func (a *Admin) TeamList(w http.ResponseWriter, r *http.Request) {
	members, err := a.team.List()
	if err != nil {
		slog.Error("list team failed", "error", err)
	}

	a.renderer.AdminPage(w, r, "team", &render.PageData{
		Title:   "Team",
		Section: "team",
		Data:    map[string]any{"Members": members},
	})
}

// TeamCreate adds a team member.
func (a *Admin) TeamCreate(w http.ResponseWriter, r *http.Request) {
	m := &models.TeamMember{
		Name:       strings.TrimSpace(r.FormValue("name")),
		Role:       strings.TrimSpace(r.FormValue("role")),
		Experience: strings.TrimSpace(r.FormValue("experience")),
		ImageURL:   strings.TrimSpace(r.FormValue("image_url")),
		IsActive:   true,
	}
	if bio := strings.TrimSpace(r.FormValue("bio")); bio != "" {
		m.Bio = &bio
	}
	if m.Name == "" || m.Role == "" || m.ImageURL == "" {
		http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
		return
	}

	if _, err := a.team.Create(m); err != nil {
		slog.Error("create team member failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// TeamUpdate handles the edit-member form submission.
func (a *Admin) TeamUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	m, err := a.team.FindByID(id)
	if err != nil || m == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	m.Name = strings.TrimSpace(r.FormValue("name"))
	m.Role = strings.TrimSpace(r.FormValue("role"))
	m.Experience = strings.TrimSpace(r.FormValue("experience"))
	m.ImageURL = strings.TrimSpace(r.FormValue("image_url"))
	m.Bio = nil
	if bio := strings.TrimSpace(r.FormValue("bio")); bio != "" {
		m.Bio = &bio
	}
	if n, err := strconv.Atoi(r.FormValue("display_order")); err == nil {
		m.DisplayOrder = n
	}
	if m.Name == "" || m.Role == "" || m.ImageURL == "" {
		http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
		return
	}

	if err := a.team.Update(m); err != nil {
		slog.Error("update team member failed", "id", id, "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// TeamToggle shows or hides a member on the public page.
func (a *Admin) TeamToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	m, err := a.team.FindByID(id)
	if err != nil || m == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	m.IsActive = !m.IsActive
	if err := a.team.Update(m); err != nil {
		slog.Error("toggle team member failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// TeamDelete removes a team member.
func (a *Admin) TeamDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.team.Delete(id); err != nil {
		slog.Error("delete team member failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// --- Pricing ---

// PricingList renders the pricing management page.
func (a *Admin) PricingList(w http.ResponseWriter, r *http.Request) {
	packages, err := a.pricing.List()
	if err != nil {
		slog.Error("list pricing failed", "error", err)
	}

	a.renderer.AdminPage(w, r, "pricing", &render.PageData{
		Title:   "Pricing",
		Section: "pricing",
		Data:    map[string]any{"Packages": packages},
	})
}

// PricingCreate adds a pricing package. Features arrive one per line.
func (a *Admin) PricingCreate(w http.ResponseWriter, r *http.Request) {
	p := &models.PricingPackage{
		Name:      strings.TrimSpace(r.FormValue("name")),
		Price:     strings.TrimSpace(r.FormValue("price")),
		IsPopular: r.FormValue("is_popular") == "1",
		IsVisible: true,
		IsActive:  true,
	}
	for _, line := range strings.Split(r.FormValue("features"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			p.Features = append(p.Features, line)
		}
	}
	if p.Name == "" || p.Price == "" {
		http.Redirect(w, r, "/admin/pricing", http.StatusSeeOther)
		return
	}

	if _, err := a.pricing.Create(p); err != nil {
		slog.Error("create pricing package failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/pricing", http.StatusSeeOther)
}

// PricingUpdate handles the edit-package form submission.
func (a *Admin) PricingUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	p, err := a.pricing.FindByID(id)
	if err != nil || p == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	p.Name = strings.TrimSpace(r.FormValue("name"))
	p.Price = strings.TrimSpace(r.FormValue("price"))
	p.IsPopular = r.FormValue("is_popular") == "1"
	p.Features = nil
	for _, line := range strings.Split(r.FormValue("features"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			p.Features = append(p.Features, line)
		}
	}
	if n, err := strconv.Atoi(r.FormValue("display_order")); err == nil {
		p.DisplayOrder = n
	}
	if p.Name == "" || p.Price == "" {
		http.Redirect(w, r, "/admin/pricing", http.StatusSeeOther)
		return
	}

	if err := a.pricing.Update(p); err != nil {
		slog.Error("update pricing package failed", "id", id, "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/pricing", http.StatusSeeOther)
}

// PricingToggle shows or hides a package on the public page.
func (a *Admin) PricingToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	p, err := a.pricing.FindByID(id)
	if err != nil || p == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	p.IsVisible = !p.IsVisible
	if err := a.pricing.Update(p); err != nil {
		slog.Error("toggle pricing package failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/pricing", http.StatusSeeOther)
}

// PricingDelete removes a pricing package.
func (a *Admin) PricingDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.pricing.Delete(id); err != nil {
		slog.Error("delete pricing package failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/pricing", http.StatusSeeOther)
}

// --- Inquiries ---

// InquiriesList renders the inquiry management page, optionally filtered
// by status (?status=new|contacted|closed).
func (a *Admin) InquiriesList(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("status")
	inquiries, err := a.inquiries.List(models.InquiryStatus(filter))
	if err != nil {
		slog.Error("list inquiries failed", "error", err)
	}

	a.renderer.AdminPage(w, r, "inquiries", &render.PageData{
		Title:   "Inquiries",
		Section: "inquiries",
		Data: map[string]any{
			"Filter":    filter,
			"Inquiries": inquiries,
		},
	})
}

// InquiryUpdateStatus moves an inquiry through the workflow.
func (a *Admin) InquiryUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	status := models.InquiryStatus(r.FormValue("status"))
	switch status {
	case models.InquiryNew, models.InquiryContacted, models.InquiryClosed:
	default:
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}
	if err := a.inquiries.UpdateStatus(id, status); err != nil {
		slog.Error("update inquiry status failed", "error", err)
	}
	http.Redirect(w, r, "/admin/inquiries", http.StatusSeeOther)
}

// InquiryUpdateNotes saves the internal notes on an inquiry.
func (a *Admin) InquiryUpdateNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.inquiries.UpdateNotes(id, strings.TrimSpace(r.FormValue("notes"))); err != nil {
		slog.Error("update inquiry notes failed", "error", err)
	}
	http.Redirect(w, r, "/admin/inquiries", http.StatusSeeOther)
}

// InquiryDelete removes an inquiry.
func (a *Admin) InquiryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.inquiries.Delete(id); err != nil {
		slog.Error("delete inquiry failed", "error", err)
	}
	http.Redirect(w, r, "/admin/inquiries", http.StatusSeeOther)
}

// --- Settings (super admin only) ---

// SettingsPage renders the site settings form.
func (a *Admin) SettingsPage(w http.ResponseWriter, r *http.Request) {
	cfg, err := a.settings.SiteConfig()
	if err != nil {
		slog.Error("load site config failed", "error", err)
		cfg = &models.SiteConfig{}
	}

	a.renderer.AdminPage(w, r, "settings", &render.PageData{
		Title:   "Settings",
		Section: "settings",
		Data:    map[string]any{"Config": cfg},
	})
}

// SettingsSave persists the site settings.
func (a *Admin) SettingsSave(w http.ResponseWriter, r *http.Request) {
	cfg := &models.SiteConfig{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Tagline: strings.TrimSpace(r.FormValue("tagline")),
		Contact: models.SiteContact{
			Phone:   strings.TrimSpace(r.FormValue("phone")),
			Email:   strings.TrimSpace(r.FormValue("email")),
			Address: strings.TrimSpace(r.FormValue("address")),
		},
	}
	if err := a.settings.SaveSiteConfig(cfg); err != nil {
		slog.Error("save site config failed", "error", err)
	} else {
		a.invalidatePublic(r)
	}
	http.Redirect(w, r, "/admin/settings", http.StatusSeeOther)
}

// --- Users (super admin only) ---

// UsersList renders the admin user management page.
func (a *Admin) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.List()
	if err != nil {
		slog.Error("list users failed", "error", err)
	}

	a.renderer.AdminPage(w, r, "users", &render.PageData{
		Title:   "Admin users",
		Section: "users",
		Data:    map[string]any{"Users": users},
	})
}

// UserCreate adds a panel user. The new user must complete 2FA setup on
// first login.
func (a *Admin) UserCreate(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	fullName := strings.TrimSpace(r.FormValue("full_name"))
	password := r.FormValue("password")
	role := models.Role(r.FormValue("role"))

	if email == "" || fullName == "" || len(password) < 8 {
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}
	if role != models.RoleSuperAdmin && role != models.RolePortfolioAdmin {
		role = models.RolePortfolioAdmin
	}

	existing, _ := a.users.FindByEmail(email)
	if existing != nil {
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	if _, err := a.users.Create(email, password, fullName, role); err != nil {
		slog.Error("create user failed", "error", err)
	} else {
		sess := middleware.SessionFromCtx(r.Context())
		slog.Info("admin user created", "admin", sess.Email, "new_user", email, "role", role)
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// UserToggle disables or re-enables another admin user. Self-service is
// blocked so an admin cannot lock themselves out.
func (a *Admin) UserToggle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if id == sess.UserID {
		http.Error(w, "Cannot change your own account", http.StatusForbidden)
		return
	}

	user, err := a.users.FindByID(id)
	if err != nil || user == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err := a.users.SetActive(id, !user.IsActive); err != nil {
		slog.Error("toggle user failed", "error", err)
	} else {
		slog.Info("admin user toggled", "admin", sess.Email, "target_user", user.Email, "active", !user.IsActive)
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// UserResetTwoFA resets another user's 2FA, forcing re-setup on next login.
func (a *Admin) UserResetTwoFA(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if id == sess.UserID {
		http.Error(w, "Cannot reset your own 2FA", http.StatusForbidden)
		return
	}

	if err := a.users.ResetTOTP(id); err != nil {
		slog.Error("reset 2fa failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("2fa reset by admin", "admin", sess.Email, "target_user", id)
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// UserDelete removes an admin account. Self-deletion is blocked.
func (a *Admin) UserDelete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if id == sess.UserID {
		http.Error(w, "Cannot delete your own account", http.StatusForbidden)
		return
	}

	if err := a.users.Delete(id); err != nil {
		slog.Error("delete user failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("admin user deleted", "admin", sess.Email, "target_user", id)
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}
