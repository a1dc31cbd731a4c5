// package services defines interface Fetcher for remote catalog providers
package services

import (
	"context"

	"github.com/pixelthorn/gdx/internal/models"
)

// Fetcher retrieves a catalog listing from a remote provider and maps it into
// the canonical [models.Game] shape.
//
// Implementations perform the network call only; they never touch durable
// storage. The catalog store decides what to do with the result.
type Fetcher interface {
	// FetchPopular performs one listing request and returns the mapped games.
	FetchPopular(ctx context.Context) ([]models.Game, error)

	// Name returns the provider name (e.g., "RAWG")
	Name() string
}
