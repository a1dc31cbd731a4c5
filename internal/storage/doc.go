// Package storage provides the durable key-value layer under the reactive stores.
//
// # Layout
//
// A single SQLite table holds one row per store key:
//
//	kv(key TEXT PRIMARY KEY, value BLOB, updated_at TIMESTAMP)
//
// Values are JSON documents written by the store package. Each store owns
// exactly one key (session, users, catalog), so no cross-store locking is
// needed at this layer.
//
// # Migrations
//
// Schema changes ship as embedded SQL files under sql/, named
// NNNN_description_{up,down}.sql. [RunMigrations] applies pending versions
// inside transactions and records them in schema_migrations;
// [RollbackMigration] reverts the most recent one.
//
// The [KV] interface is intentionally small (Get/Set/Delete with explicit
// presence reporting) so tests can substitute failing or in-memory
// implementations without a database.
package storage
