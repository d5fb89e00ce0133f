// Package router sets up all HTTP routes and middleware chains for the
// framelight server. Routes split into the public portfolio surface and
// the admin panel behind authentication.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"framelight/internal/handlers"
	"framelight/internal/middleware"
	"framelight/internal/session"
	"framelight/web"
)

// Limiters holds the per-endpoint rate limiters so the caller can stop
// their cleanup goroutines on shutdown.
type Limiters struct {
	Login   *middleware.RateLimiter
	Unlock  *middleware.RateLimiter
	Contact *middleware.RateLimiter
}

// NewLimiters creates the rate limiters for abuse-prone endpoints.
func NewLimiters() *Limiters {
	return &Limiters{
		Login:   middleware.NewRateLimiter(5, time.Minute),
		Unlock:  middleware.NewRateLimiter(10, time.Minute),
		Contact: middleware.NewRateLimiter(3, time.Minute),
	}
}

// Stop stops all limiter cleanup goroutines.
func (l *Limiters) Stop() {
	l.Login.Stop()
	l.Unlock.Stop()
	l.Contact.Stop()
}

// New creates the configured Chi router with all middleware and route
// groups wired up. secure controls cookie flags (set in production).
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, limiters *Limiters, secure bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CSRF(secure))

	// Health check — no session, no state.
	r.Get("/health", public.Health)

	// Static assets.
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Public portfolio surface.
	r.Get("/", public.Homepage)
	r.Get("/portfolio/feed", public.Feed)
	r.Post("/portfolio/select", public.Select)
	r.With(limiters.Unlock.Middleware).Post("/portfolio/unlock", public.Unlock)
	r.Post("/portfolio/close-prompt", public.ClosePrompt)
	r.With(limiters.Contact.Middleware).Post("/contact", public.Contact)

	// Admin panel.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.LoadSession(sessionStore))

		// Auth pages — accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.With(limiters.Login.Middleware).Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA — requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Post("/2fa/setup", auth.TwoFAVerifySubmit)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/", admin.Dashboard)

			// Portfolio admins manage items, categories, and the media
			// library; everything else is super-admin territory.
			r.Route("/portfolio", func(r chi.Router) {
				r.Get("/", admin.PortfolioList)
				r.Post("/", admin.PortfolioCreate)
				r.Post("/{id}", admin.PortfolioUpdate)
				r.Post("/{id}/feature", admin.PortfolioToggleFeatured)
				r.Post("/{id}/delete", admin.PortfolioDelete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", admin.CategoriesList)
				r.Post("/", admin.CategoryCreate)
				r.Post("/reorder", admin.CategoryReorder)
				r.Post("/{id}/rename", admin.CategoryRename)
				r.Post("/{id}/toggle", admin.CategoryToggle)
				r.Post("/{id}/protect", admin.CategoryProtect)
				r.Post("/{id}/delete", admin.CategoryDelete)
			})

			r.Route("/media", func(r chi.Router) {
				r.Get("/", admin.MediaLibrary)
				r.Post("/", admin.MediaUpload)
				r.Post("/{id}/delete", admin.MediaDelete)
			})

			// Super admin only.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSuperAdmin)

				r.Route("/team", func(r chi.Router) {
					r.Get("/", admin.TeamList)
					r.Post("/", admin.TeamCreate)
					r.Post("/{id}", admin.TeamUpdate)
					r.Post("/{id}/toggle", admin.TeamToggle)
					r.Post("/{id}/delete", admin.TeamDelete)
				})

				r.Route("/pricing", func(r chi.Router) {
					r.Get("/", admin.PricingList)
					r.Post("/", admin.PricingCreate)
					r.Post("/{id}", admin.PricingUpdate)
					r.Post("/{id}/toggle", admin.PricingToggle)
					r.Post("/{id}/delete", admin.PricingDelete)
				})

				r.Route("/inquiries", func(r chi.Router) {
					r.Get("/", admin.InquiriesList)
					r.Post("/{id}/status", admin.InquiryUpdateStatus)
					r.Post("/{id}/notes", admin.InquiryUpdateNotes)
					r.Post("/{id}/delete", admin.InquiryDelete)
				})

				r.Get("/settings", admin.SettingsPage)
				r.Post("/settings", admin.SettingsSave)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", admin.UsersList)
					r.Post("/", admin.UserCreate)
					r.Post("/{id}/toggle", admin.UserToggle)
					r.Post("/{id}/reset-2fa", admin.UserResetTwoFA)
					r.Post("/{id}/delete", admin.UserDelete)
				})
			})
		})
	})

	return r
}
