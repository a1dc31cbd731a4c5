// Package catalog manages the authoritative local copy of the game catalog.
//
// # Lifecycle
//
// The store is constructed once at process start over its durable-storage key
// and passed by reference to every consumer; it is never reconstructed
// implicitly. [Store.Initialize] handles first run: an empty catalog is
// filled from the remote provider (feature flag plus fetcher required) or
// from the fixed [DefaultGames] seed, while a non-empty persisted catalog is
// loaded as-is.
//
// # Mutation
//
// Add, Remove, and Update follow read-current, compute-next, replace:
// every mutation persists synchronously and republishes to subscribers.
// Remove of an absent id and Update without a matching id are no-ops.
//
// # Derived views
//
// MostPopular, MostDownloaded, and ComingSoon are pure projections over the
// current snapshot. They are never persisted separately.
//
// # Remote refresh
//
// [Store.RefreshFromRemote] overwrites the catalog wholesale on success and
// degrades to the existing local sequence on any failure, logging a warning.
// Two overlapping refreshes resolve last-writer-wins; there is no
// single-flight guard.
package catalog
