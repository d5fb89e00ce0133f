// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package feed

import (
	"crypto/subtle"
	"fmt"
)

// State is a visitor's feed state, stored as JSON in the visitor session.
// It tracks the active selection, the pagination cursor, the password
// prompt, and which protected categories this visitor has unlocked.
type State struct {
	// Active is the current feed selection (a category name or AllCategory).
	Active string `json:"active"`
	// NextPage is the page number the next scroll fetch should request.
	NextPage int `json:"next_page"`
	// Exhausted is set once a fetched page reports no more items; further
	// scroll fetches are rejected until the selection changes.
	Exhausted bool `json:"exhausted"`
	// PromptFor names the protected category awaiting a password, or "".
	PromptFor string `json:"prompt_for,omitempty"`
	// Unlocked lists protected categories this visitor has unlocked.
	Unlocked []string `json:"unlocked,omitempty"`
}

// NewState returns the initial visitor state: viewing AllCategory from the
// first page.
func NewState() *State {
	return &State{Active: AllCategory, NextPage: 1}
}

// IsUnlocked reports whether the visitor has unlocked a category.
func (s *State) IsUnlocked(name string) bool {
	for _, u := range s.Unlocked {
		if u == name {
			return true
		}
	}
	return false
}

// SelectOutcome is the result of a category selection.
type SelectOutcome int

const (
	// Switched means the selection changed and the feed restarts at page 1.
	Switched SelectOutcome = iota
	// PromptRequired means the category is protected and still locked; the
	// selection did not change and the password prompt is now open.
	PromptRequired
	// Unchanged means the selection was already active; nothing happened.
	Unchanged
)

// Controller applies feed operations to one visitor's state. It is not
// safe for concurrent use; callers serialize per visitor (the HTTP layer
// loads, mutates, and saves state within a single request).
type Controller struct {
	dir   *Directory
	State *State
}

// NewController wraps a visitor state with the category directory.
func NewController(dir *Directory, state *State) *Controller {
	if state == nil {
		state = NewState()
	}
	return &Controller{dir: dir, State: state}
}

// Select handles a filter bar click. Selecting the active category is a
// no-op. A locked protected category opens the password prompt and leaves
// the active selection in place; anything else switches immediately and
// resets pagination. Unknown or inactive names fail with an error rather
// than switching.
func (c *Controller) Select(name string) (SelectOutcome, error) {
	if name == c.State.Active && c.State.PromptFor == "" {
		return Unchanged, nil
	}

	ok, err := c.dir.IsSelectable(name)
	if err != nil {
		return Unchanged, err
	}
	if !ok {
		return Unchanged, fmt.Errorf("select %q: not a selectable category", name)
	}

	protected, err := c.dir.IsProtected(name)
	if err != nil {
		// Fail closed: if protection cannot be determined, do not switch.
		return Unchanged, err
	}
	if protected && !c.State.IsUnlocked(name) {
		c.State.PromptFor = name
		return PromptRequired, nil
	}

	c.switchTo(name)
	return Switched, nil
}

// SubmitPassword resolves an open password prompt. On a correct password
// the category is unlocked for this visitor and becomes the active
// selection. A wrong password keeps the prompt open and returns false.
// A verifier lookup failure denies the unlock (fail closed). Submitting
// for an already-unlocked category grants nothing new.
func (c *Controller) SubmitPassword(password string) (bool, error) {
	name := c.State.PromptFor
	if name == "" {
		return false, fmt.Errorf("submit password: no prompt open")
	}

	verifier, err := c.dir.Verifier(name)
	if err != nil {
		return false, err
	}
	if verifier == "" {
		// Protection was removed while the prompt was open; treat the
		// category as open and switch without recording an unlock.
		c.State.PromptFor = ""
		c.switchTo(name)
		return true, nil
	}

	submitted := EncodeVerifier(password)
	if subtle.ConstantTimeCompare([]byte(submitted), []byte(verifier)) != 1 {
		return false, nil
	}

	if !c.State.IsUnlocked(name) {
		c.State.Unlocked = append(c.State.Unlocked, name)
	}
	c.State.PromptFor = ""
	c.switchTo(name)
	return true, nil
}

// ClosePrompt dismisses an open password prompt without switching. The
// previous selection stays active and its pagination cursor is untouched.
func (c *Controller) ClosePrompt() {
	c.State.PromptFor = ""
}

// AcceptPage reports whether a scroll fetch for (category, page) is
// current. A fetch is stale when the visitor has since switched category,
// duplicated when the page is not the cursor's next page, and pointless
// when the feed is exhausted. Stale and duplicate fetches are discarded
// by the caller without touching the state.
func (c *Controller) AcceptPage(category string, page int) bool {
	if category != c.State.Active {
		return false
	}
	if c.State.Exhausted {
		return false
	}
	return page == c.State.NextPage
}

// RecordPage advances the pagination cursor after a page was fetched and
// delivered. hasMore=false marks the feed exhausted.
func (c *Controller) RecordPage(hasMore bool) {
	c.State.NextPage++
	c.State.Exhausted = !hasMore
}

// switchTo makes name the active selection, resets the pagination cursor
// (invalidating any in-flight fetches for the old selection), and
// dismisses any open prompt.
func (c *Controller) switchTo(name string) {
	c.State.Active = name
	c.State.NextPage = 1
	c.State.Exhausted = false
	c.State.PromptFor = ""
}
