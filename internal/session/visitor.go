// visitor.go provides anonymous visitor sessions for the public portfolio
// feed. Unlike admin sessions there is no authentication: the session only
// carries the visitor's feed state (active category, pagination cursor,
// unlocked protected categories) as a JSON document owned by the caller.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// VisitorCookieName is the name of the anonymous visitor cookie.
	VisitorCookieName = "fl_visitor"

	// visitorTTL is how long visitor feed state survives inactivity.
	visitorTTL = 12 * time.Hour

	// visitorKeyPrefix namespaces visitor keys in Valkey.
	visitorKeyPrefix = "visitor:"
)

// VisitorStore persists per-visitor feed state in Valkey. The payload type
// is opaque to this package; callers marshal into and out of their own
// struct (the feed controller).
type VisitorStore struct {
	client *redis.Client
	secure bool
}

// NewVisitorStore creates a visitor store backed by the given Valkey client.
func NewVisitorStore(client *redis.Client, secure bool) *VisitorStore {
	return &VisitorStore{client: client, secure: secure}
}

// ID returns the visitor ID from the request cookie, creating a new one
// (and setting the cookie) when none exists.
func (s *VisitorStore) ID(w http.ResponseWriter, r *http.Request) (string, error) {
	if cookie, err := r.Cookie(VisitorCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("visitor id: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(visitorTTL.Seconds()),
	})
	return id, nil
}

// Load unmarshals the visitor's state into v. Returns false when no state
// is stored yet (v is left untouched).
func (s *VisitorStore) Load(ctx context.Context, id string, v any) (bool, error) {
	payload, err := s.client.Get(ctx, visitorKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("visitor get: %w", err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, fmt.Errorf("visitor unmarshal: %w", err)
	}
	return true, nil
}

// Save stores the visitor's state, resetting the TTL.
func (s *VisitorStore) Save(ctx context.Context, id string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("visitor marshal: %w", err)
	}
	if err := s.client.Set(ctx, visitorKeyPrefix+id, payload, visitorTTL).Err(); err != nil {
		return fmt.Errorf("visitor set: %w", err)
	}
	return nil
}
