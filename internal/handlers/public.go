// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for both surfaces of the
// site: the public portfolio page with its HTMX-driven feed, and the
// admin panel behind authentication.
package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"framelight/internal/cache"
	"framelight/internal/feed"
	"framelight/internal/models"
	"framelight/internal/render"
	"framelight/internal/session"
	"framelight/internal/store"
)

// Public groups the handlers for the visitor-facing site.
type Public struct {
	renderer  *render.Renderer
	fetcher   *feed.Fetcher
	directory *feed.Directory
	visitors  *session.VisitorStore
	team      *store.TeamStore
	pricing   *store.PricingStore
	settings  *store.SettingStore
	inquiries *store.InquiryStore
	pages     *cache.PageCache
}

// NewPublic creates the public handler group.
func NewPublic(
	renderer *render.Renderer,
	fetcher *feed.Fetcher,
	directory *feed.Directory,
	visitors *session.VisitorStore,
	team *store.TeamStore,
	pricing *store.PricingStore,
	settings *store.SettingStore,
	inquiries *store.InquiryStore,
	pages *cache.PageCache,
) *Public {
	return &Public{
		renderer:  renderer,
		fetcher:   fetcher,
		directory: directory,
		visitors:  visitors,
		team:      team,
		pricing:   pricing,
		settings:  settings,
		inquiries: inquiries,
		pages:     pages,
	}
}

// Homepage serves the full public page. Fresh visitors (no stored feed
// state) can be served straight from the page cache because the rendered
// HTML carries no visitor-specific content; the CSRF token travels by
// cookie. Returning visitors restart at the top of the aggregate feed but
// keep the categories they have unlocked.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visitorID, err := p.visitors.ID(w, r)
	if err != nil {
		slog.Error("visitor id failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	st := feed.NewState()
	returning, err := p.visitors.Load(ctx, visitorID, st)
	if err != nil {
		slog.Warn("visitor state load failed", "error", err)
		returning = false
	}

	if !returning {
		if html, ok := p.pages.Get(ctx, cache.HomepageKey()); ok {
			// The cached page embeds page 1, so the visitor's cursor
			// starts at page 2.
			st = feed.NewState()
			st.NextPage = 2
			if err := p.visitors.Save(ctx, visitorID, st); err != nil {
				slog.Warn("visitor state save failed", "error", err)
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(html)
			return
		}
	}

	unlocked := st.Unlocked
	st = feed.NewState()
	st.Unlocked = unlocked

	page, err := p.fetcher.FetchPage(st.Active, 1)
	if err != nil {
		slog.Error("homepage feed fetch failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ctrl := feed.NewController(p.directory, st)
	ctrl.RecordPage(page.HasMore)

	options, err := p.directory.Options()
	if err != nil {
		slog.Error("filter options failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := &render.PageData{
		Data: map[string]any{
			"Site":    p.siteConfig(),
			"Team":    p.teamMembers(),
			"Pricing": p.pricingPackages(),
			"Options": options,
			"Active":  st.Active,
			"Page":    page,
		},
	}

	if err := p.visitors.Save(ctx, visitorID, st); err != nil {
		slog.Warn("visitor state save failed", "error", err)
	}

	// Fresh visitors see the default state, so the rendered page is
	// worth caching for the next one.
	if !returning {
		var buf bytes.Buffer
		if err := p.renderer.PublicHTML(&buf, data); err != nil {
			slog.Error("homepage render failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		p.pages.Set(ctx, cache.HomepageKey(), buf.Bytes())
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
		return
	}

	p.renderer.PublicPage(w, r, data)
}

// Feed serves one scroll-triggered feed page. The requested (category,
// page) pair is checked against the visitor's cursor; stale requests
// (the visitor switched category since the sentinel was rendered) and
// duplicates get 204 No Content so the sentinel disappears quietly.
func (p *Public) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := r.URL.Query().Get("category")
	pageNum, err := strconv.Atoi(r.URL.Query().Get("page"))
	if category == "" || err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	visitorID, st, ok := p.loadState(ctx, w, r)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	ctrl := feed.NewController(p.directory, st)
	if !ctrl.AcceptPage(category, pageNum) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	page, err := p.fetcher.FetchPage(category, pageNum)
	if err != nil {
		slog.Error("feed fetch failed", "category", category, "page", pageNum, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ctrl.RecordPage(page.HasMore)
	p.saveState(ctx, visitorID, st)

	p.renderer.Fragment(w, r, "feed_page", &render.PageData{
		Data: map[string]any{"Page": page},
	})
}

// Select handles a filter bar click. Responses are entirely out-of-band
// swaps (the buttons use hx-swap="none"): a switch replaces the feed and
// filter bar, a locked protected category opens the password prompt, and
// a no-op or rejected selection returns 204.
func (p *Public) Select(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := r.FormValue("category")
	if category == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	visitorID, err := p.visitors.ID(w, r)
	if err != nil {
		slog.Error("visitor id failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	st := feed.NewState()
	if _, err := p.visitors.Load(ctx, visitorID, st); err != nil {
		slog.Warn("visitor state load failed", "error", err)
	}

	ctrl := feed.NewController(p.directory, st)
	outcome, err := ctrl.Select(category)
	if err != nil {
		// Unknown, inactive, or undeterminable: do not switch.
		slog.Warn("category select rejected", "category", category, "error", err)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch outcome {
	case feed.Unchanged:
		w.WriteHeader(http.StatusNoContent)
	case feed.PromptRequired:
		p.saveState(ctx, visitorID, st)
		p.renderer.Fragment(w, r, "prompt", &render.PageData{
			Data: map[string]any{"PromptFor": st.PromptFor, "OOB": true},
		})
	case feed.Switched:
		p.respondFeedUpdate(ctx, w, r, visitorID, ctrl)
	}
}

// Unlock resolves an open password prompt. A wrong password re-renders
// the prompt with an error; a verifier lookup failure denies the unlock
// the same way. Success switches to the unlocked category.
func (p *Public) Unlock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visitorID, st, ok := p.loadState(ctx, w, r)
	if !ok || st.PromptFor == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	promptFor := st.PromptFor

	ctrl := feed.NewController(p.directory, st)
	granted, err := ctrl.SubmitPassword(r.FormValue("password"))
	if !granted {
		// A lookup failure denies with the exact same response as a wrong
		// password so the client cannot tell the cases apart.
		if err != nil {
			slog.Warn("unlock denied", "category", promptFor, "error", err)
		}
		p.renderer.Fragment(w, r, "prompt", &render.PageData{
			Data: map[string]any{
				"PromptFor": promptFor,
				"Error":     "Wrong password.",
				"OOB":       true,
			},
		})
		return
	}

	p.respondFeedUpdate(ctx, w, r, visitorID, ctrl)
}

// ClosePrompt dismisses the password prompt without switching.
func (p *Public) ClosePrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visitorID, st, ok := p.loadState(ctx, w, r)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	ctrl := feed.NewController(p.directory, st)
	ctrl.ClosePrompt()
	p.saveState(ctx, visitorID, st)

	p.renderer.Fragment(w, r, "prompt_clear", &render.PageData{
		Data: map[string]any{"OOB": true},
	})
}

// Contact accepts the contact form and stores the inquiry.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	message := strings.TrimSpace(r.FormValue("message"))

	if name == "" || email == "" || message == "" {
		p.renderer.Fragment(w, r, "contact_form", &render.PageData{
			Data: map[string]any{"Error": "Name, email, and message are required."},
		})
		return
	}

	var projectType *string
	if v := strings.TrimSpace(r.FormValue("project_type")); v != "" {
		projectType = &v
	}

	if _, err := p.inquiries.Create(name, email, projectType, message); err != nil {
		slog.Error("inquiry create failed", "error", err)
		p.renderer.Fragment(w, r, "contact_form", &render.PageData{
			Data: map[string]any{"Error": "Could not send your message. Please try again."},
		})
		return
	}

	p.renderer.Fragment(w, r, "contact_sent", &render.PageData{})
}

// Health returns a simple JSON health check response.
func (p *Public) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// respondFeedUpdate fetches page 1 of the (new) active selection, saves
// the visitor state, and sends the out-of-band feed, filter bar, and
// prompt-clear fragments.
func (p *Public) respondFeedUpdate(ctx context.Context, w http.ResponseWriter, r *http.Request, visitorID string, ctrl *feed.Controller) {
	page, err := p.fetcher.FetchPage(ctrl.State.Active, 1)
	if err != nil {
		slog.Error("feed fetch failed", "category", ctrl.State.Active, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ctrl.RecordPage(page.HasMore)
	p.saveState(ctx, visitorID, ctrl.State)

	options, err := p.directory.Options()
	if err != nil {
		slog.Error("filter options failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.renderer.Fragment(w, r, "feed_update", &render.PageData{
		Data: map[string]any{
			"Page":    page,
			"Options": options,
			"Active":  ctrl.State.Active,
			"OOB":     true,
		},
	})
}

// siteConfig loads the site settings for the public page. The page still
// renders with defaults when settings are missing or unreadable.
func (p *Public) siteConfig() *models.SiteConfig {
	cfg, err := p.settings.SiteConfig()
	if err != nil {
		slog.Warn("site config load failed", "error", err)
		return nil
	}
	return cfg
}

func (p *Public) teamMembers() []models.TeamMember {
	members, err := p.team.ListActive()
	if err != nil {
		slog.Warn("team list failed", "error", err)
		return nil
	}
	return members
}

func (p *Public) pricingPackages() []models.PricingPackage {
	packages, err := p.pricing.ListVisible()
	if err != nil {
		slog.Warn("pricing list failed", "error", err)
		return nil
	}
	return packages
}

// loadState reads the visitor's stored feed state. ok is false when the
// visitor has no state yet (the homepage was never loaded) or the load
// fails; callers treat both as "nothing to do".
func (p *Public) loadState(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, *feed.State, bool) {
	visitorID, err := p.visitors.ID(w, r)
	if err != nil {
		slog.Error("visitor id failed", "error", err)
		return "", nil, false
	}
	st := feed.NewState()
	found, err := p.visitors.Load(ctx, visitorID, st)
	if err != nil {
		slog.Warn("visitor state load failed", "error", err)
		return visitorID, nil, false
	}
	if !found {
		return visitorID, nil, false
	}
	return visitorID, st, true
}

// saveState persists the visitor's feed state, logging failures.
func (p *Public) saveState(ctx context.Context, visitorID string, st *feed.State) {
	if err := p.visitors.Save(ctx, visitorID, st); err != nil {
		slog.Warn("visitor state save failed", "error", err)
	}
}
