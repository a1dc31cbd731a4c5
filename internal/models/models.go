// package models defines the canonical data shapes persisted by the catalog and session stores
package models

import (
	"fmt"
	"strings"
)

// RatingMax bounds Game.Rating. The catalog uses the 0-5 scale reported by RAWG.
const RatingMax = 5.0

// Game represents a single catalog entry.
//
// ID is unique within a catalog store instance and is assigned at creation
// when absent. Rating is bounded to [0, RatingMax] and Downloads is never
// negative; Validate enforces both.
type Game struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
	Rating      float64  `json:"rating"`
	Downloads   int      `json:"downloads"`
	ComingSoon  bool     `json:"comingSoon"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Platforms   []string `json:"platform,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Validate checks the game's invariants and returns an error describing the first violation.
func (g Game) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("game title must not be empty")
	}
	if g.Rating < 0 || g.Rating > RatingMax {
		return fmt.Errorf("game rating %.2f outside [0, %.0f]", g.Rating, RatingMax)
	}
	if g.Downloads < 0 {
		return fmt.Errorf("game downloads must not be negative")
	}
	return nil
}

// User represents a registered account in the user directory.
//
// Password is stored as provided. This is demo-only behavior; production
// deployments must substitute a hashing CredentialMatcher (see session package).
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// Validate checks the user's invariants.
func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("user name must not be empty")
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("user email %q is not an email address", u.Email)
	}
	if u.Password == "" {
		return fmt.Errorf("user password must not be empty")
	}
	return nil
}

// Public returns the user's public profile, suitable for persisting as the session value.
func (u User) Public() User {
	u.Password = ""
	return u
}
