// Package ui implements an interactive terminal catalog browser using bubbletea's Elm architecture.
//
// The TUI provides two views:
//  1. [CatalogListView] : Browse the catalog, cycling between the full list
//     and the derived views (most popular, most downloaded, coming soon)
//  2. [DetailView] : Full metadata for one game
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. It
// subscribes to the catalog store at construction, so the replayed snapshot
// seeds the list and every later mutation re-renders it without polling.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, f, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
