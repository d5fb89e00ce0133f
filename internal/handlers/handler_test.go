// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"framelight/internal/cache"
	"framelight/internal/database"
	"framelight/internal/feed"
	"framelight/internal/middleware"
	"framelight/internal/render"
	"framelight/internal/session"
	"framelight/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "framelight")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "framelight")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "visitor:*", "page:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB         *sql.DB
	Valkey     *redis.Client
	Renderer   *render.Renderer
	Sessions   *session.Store
	Visitors   *session.VisitorStore
	Users      *store.AdminUserStore
	Categories *store.CategoryStore
	Portfolio  *store.PortfolioStore
	Team       *store.TeamStore
	Pricing    *store.PricingStore
	Inquiries  *store.InquiryStore
	Settings   *store.SettingStore
	Media      *store.MediaStore
	PageCache  *cache.PageCache
	Fetcher    *feed.Fetcher
	Directory  *feed.Directory
	Admin      *Admin
	Auth       *Auth
	Public     *Public
}

// newTestEnv creates a complete test environment with all handler
// dependencies. S3 storage is left unconfigured.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	sessions := session.NewStore(vk, false)
	visitors := session.NewVisitorStore(vk, false)
	users := store.NewAdminUserStore(db)
	categories := store.NewCategoryStore(db)
	portfolio := store.NewPortfolioStore(db)
	team := store.NewTeamStore(db)
	pricing := store.NewPricingStore(db)
	inquiries := store.NewInquiryStore(db)
	settings := store.NewSettingStore(db)
	media := store.NewMediaStore(db)
	pageCache := cache.NewPageCache(vk, 1*time.Minute)
	fetcher := feed.NewFetcher(portfolio, categories)
	directory := feed.NewDirectory(categories)

	admin := NewAdmin(renderer, users, categories, portfolio, team, pricing, inquiries, settings, media, nil, pageCache)
	auth := NewAuth(renderer, sessions, users)
	public := NewPublic(renderer, fetcher, directory, visitors, team, pricing, settings, inquiries, pageCache)

	return &testEnv{
		DB:         db,
		Valkey:     vk,
		Renderer:   renderer,
		Sessions:   sessions,
		Visitors:   visitors,
		Users:      users,
		Categories: categories,
		Portfolio:  portfolio,
		Team:       team,
		Pricing:    pricing,
		Inquiries:  inquiries,
		Settings:   settings,
		Media:      media,
		PageCache:  pageCache,
		Fetcher:    fetcher,
		Directory:  directory,
		Admin:      admin,
		Auth:       auth,
		Public:     public,
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, email, role string) *session.Data {
	return &session.Data{
		UserID:    userID,
		Email:     email,
		FullName:  "Test User",
		Role:      role,
		TwoFADone: true,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withVisitor attaches a visitor cookie to a request.
func withVisitor(r *http.Request, id string) *http.Request {
	r.AddCookie(&http.Cookie{Name: session.VisitorCookieName, Value: id})
	return r
}

// cleanCategories removes test categories by name, along with their items.
func cleanCategories(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, n := range names {
		db.Exec("DELETE FROM portfolio_items WHERE category = $1", n)
		db.Exec("DELETE FROM portfolio_categories WHERE name = $1", n)
	}
}

// cleanInquiries removes test inquiries by email.
func cleanInquiries(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, e := range emails {
		db.Exec("DELETE FROM contact_inquiries WHERE email = $1", e)
	}
}

// cleanUsers removes test admin users by email.
func cleanUsers(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, e := range emails {
		db.Exec("DELETE FROM admin_users WHERE email = $1", e)
	}
}
