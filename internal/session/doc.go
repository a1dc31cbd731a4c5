// Package session implements authentication over the persistent reactive store.
//
// Two durable keys are involved: the session key holds the current user's
// public profile (absent when anonymous) and the users key holds the
// [Directory], the JSON array of registered credentials. The directory is
// consulted only by this package.
//
// Login is a case-sensitive linear scan over the directory; Register enforces
// email uniqueness and never logs the new user in; Logout clears the session
// but not the directory. Invalid credentials and duplicate emails surface as
// boolean results, never as errors; errors are reserved for storage-write
// failures, which would otherwise break the memory/storage consistency
// invariant.
//
// Credential comparison sits behind [CredentialMatcher] so the plaintext
// demo scheme can be swapped for hashing without touching call sites.
package session
