// Package store implements a generic persistent reactive store: an in-memory
// authoritative value mirrored to durable storage with subscriber notification.
//
// # Contract
//
//   - [New] loads the persisted value at construction; absent or malformed
//     data falls back to a caller-supplied default and is never surfaced.
//   - [Store.Snapshot] reads the current value synchronously. It cannot fail.
//   - [Store.Replace] is the single mutation primitive: persist, then
//     broadcast. Higher-level operations are read-current, compute-next,
//     Replace(next).
//   - [Store.Subscribe] replays the current value immediately, then delivers
//     every subsequent value in order until the returned [Unsubscribe] runs.
//
// # Instances
//
// Two instances exist in the application: the catalog store
// (Store[[]models.Game]) and the session store (Store[*models.User], nil
// meaning anonymous). Each owns its own storage key.
package store
