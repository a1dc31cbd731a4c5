// Package services defines the [Fetcher] interface for remote catalog providers and implements it for RAWG.
//
// # Fetcher Interface
//
// A Fetcher performs exactly one listing request and returns games already
// mapped into the canonical [models.Game] shape. Fetchers never write durable
// storage; the catalog store owns that decision. On failure the catalog store
// keeps its local copy, so fetcher errors degrade gracefully.
//
// # RAWG Implementation
//
// [RAWGService] calls GET /games on the RAWG database API, authenticated by
// API key in the query string. Requests carry an ordering directive and page
// size from configuration and are throttled with [rate.Limiter].
//
// # API Mappings
//
// RAWG records convert field-by-field:
//   - id (number) → ID (string)
//   - name → Title
//   - description → Description, placeholder when absent
//   - released → ReleaseDate; tba → ComingSoon
//   - rating (0-5) → Rating, clamped into bounds
//   - added → Downloads
//   - platforms[].platform.name → Platforms; tags[].name → Tags (first three)
//
// # Error Handling
//
// HTTP and decode failures wrap [shared.ErrAPIRequest] style sentinels with
// %w so callers can classify them without string matching.
package services
