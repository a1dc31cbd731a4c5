// Package models defines the domain entities shared across the application.
//
// The package contains two categories of types:
//
// 1. Catalog entries:
//   - [Game] : A single catalog item with release metadata, bounded rating, and popularity counters
//
// 2. Accounts:
//   - [User] : A registered account as stored in the user directory; [User.Public] strips the
//     credential secret for use as the persisted session value
//
// Both types carry a Validate method enforcing their invariants (non-empty title,
// rating within [0, RatingMax], non-negative downloads, well-formed email).
// Persistence is plain JSON; field tags match the durable-storage layout so a
// value round-trips unchanged across process restarts.
package models
