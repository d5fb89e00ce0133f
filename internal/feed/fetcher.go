// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package feed implements the public portfolio feed: paged fetching with
// featured-then-recency ordering, the category filter directory with its
// synthetic "All" entry, and the per-visitor controller that gates
// password-protected categories and rejects stale page requests.
package feed

import (
	"fmt"

	"framelight/internal/models"
)

// PageSize is the number of items per feed page.
const PageSize = 12

// AllCategory is the synthetic filter entry that aggregates every active,
// non-protected category. It never exists in the database.
const AllCategory = "All"

// ItemSource is the slice of the portfolio store the fetcher needs.
type ItemSource interface {
	FeedPage(category string, limit, offset int) ([]models.PortfolioItem, error)
	FeedPageIn(categories []string, limit, offset int) ([]models.PortfolioItem, error)
}

// CategorySource is the slice of the category store the feed needs.
type CategorySource interface {
	ListActive() ([]models.PortfolioCategory, error)
	FindByName(name string) (*models.PortfolioCategory, error)
}

// Page is one fetched feed page.
type Page struct {
	Items    []models.PortfolioItem
	HasMore  bool
	Category string
	Number   int
}

// Fetcher loads feed pages from the portfolio store.
type Fetcher struct {
	items      ItemSource
	categories CategorySource
}

// NewFetcher creates a feed fetcher over the given sources.
func NewFetcher(items ItemSource, categories CategorySource) *Fetcher {
	return &Fetcher{items: items, categories: categories}
}

// FetchPage loads one page of the feed for a category. Pages are numbered
// from 1. The query probes one row past the page size to decide HasMore
// without a second count query.
//
// For AllCategory the scope is every active, non-protected category;
// protected content never leaks through the aggregate view, unlocked or
// not. When that scope is empty the page is empty without touching the
// item store.
func (f *Fetcher) FetchPage(category string, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	var (
		items []models.PortfolioItem
		err   error
	)
	if category == AllCategory {
		var scope []string
		scope, err = f.allScope()
		if err != nil {
			return nil, err
		}
		items, err = f.items.FeedPageIn(scope, PageSize+1, offset)
	} else {
		items, err = f.items.FeedPage(category, PageSize+1, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch feed page %d of %q: %w", page, category, err)
	}

	hasMore := len(items) > PageSize
	if hasMore {
		items = items[:PageSize]
	}

	return &Page{
		Items:    items,
		HasMore:  hasMore,
		Category: category,
		Number:   page,
	}, nil
}

// allScope resolves the category names covered by AllCategory: active and
// not password protected.
func (f *Fetcher) allScope() ([]string, error) {
	active, err := f.categories.ListActive()
	if err != nil {
		return nil, fmt.Errorf("resolve all-category scope: %w", err)
	}
	var names []string
	for _, c := range active {
		if !c.IsPasswordProtected {
			names = append(names, c.Name)
		}
	}
	return names, nil
}
