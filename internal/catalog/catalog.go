// package catalog implements the reactive catalog store over the generic persistent store
package catalog

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/pixelthorn/gdx/internal/models"
	"github.com/pixelthorn/gdx/internal/services"
	"github.com/pixelthorn/gdx/internal/shared"
	"github.com/pixelthorn/gdx/internal/storage"
	"github.com/pixelthorn/gdx/internal/store"
)

// PopularityThreshold is the download count above which a game counts as
// popular for the derived views.
const PopularityThreshold = 100000

// Store is the catalog store: a [store.Store] over the full game sequence,
// extended with seeding, remote refresh, and CRUD over the sequence.
//
// The sequence is ordered newest first; Add prepends.
type Store struct {
	store       *store.Store[[]models.Game]
	fetcher     services.Fetcher
	remoteFetch bool
	logger      *log.Logger
}

// Opts contains configuration options for creating a catalog [Store].
type Opts struct {
	KV          storage.KV
	Key         string           // durable-storage key, exclusively owned by this store
	Fetcher     services.Fetcher // optional remote provider
	RemoteFetch bool             // feature flag gating remote fetch on first run
	Logger      *log.Logger
}

// New creates a catalog store, loading any persisted catalog from storage.
func New(opts Opts) *Store {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Store{
		store:       store.New(opts.KV, opts.Key, []models.Game(nil), opts.Logger),
		fetcher:     opts.Fetcher,
		remoteFetch: opts.RemoteFetch,
		logger:      opts.Logger,
	}
}

// Initialize populates the catalog on first run.
//
// With an empty catalog it fetches from the remote provider when the feature
// flag and a fetcher are both present, and seeds the fixed default catalog
// otherwise. A non-empty persisted catalog is used as-is.
func (s *Store) Initialize(ctx context.Context) error {
	if len(s.store.Snapshot()) > 0 {
		return nil
	}

	if s.remoteFetch && s.fetcher != nil {
		s.RefreshFromRemote(ctx)
		return nil
	}

	return s.store.Replace(DefaultGames())
}

// Subscribe registers fn on the full game sequence. The current sequence is
// replayed immediately; see [store.Store.Subscribe] for the delivery contract.
func (s *Store) Subscribe(fn func([]models.Game)) store.Unsubscribe {
	return s.store.Subscribe(fn)
}

// Snapshot returns the current game sequence synchronously.
func (s *Store) Snapshot() []models.Game {
	return s.store.Snapshot()
}

// GetByID returns the game with the given id from the current snapshot.
func (s *Store) GetByID(id string) (models.Game, bool) {
	for _, g := range s.store.Snapshot() {
		if g.ID == id {
			return g, true
		}
	}
	return models.Game{}, false
}

// Add validates game, assigns a fresh unique identifier when it arrives
// without one, and prepends it to the sequence (newest first).
// The stored game is returned.
func (s *Store) Add(game models.Game) (models.Game, error) {
	if err := game.Validate(); err != nil {
		return models.Game{}, err
	}

	if game.ID == "" {
		game.ID = shared.GenerateID()
	}

	current := s.store.Snapshot()
	next := make([]models.Game, 0, len(current)+1)
	next = append(next, game)
	next = append(next, current...)

	if err := s.store.Replace(next); err != nil {
		return models.Game{}, err
	}
	return game, nil
}

// Remove filters id out of the sequence. Removing an absent id is a no-op,
// not an error; calling it twice leaves the same end state as once.
func (s *Store) Remove(id string) error {
	current := s.store.Snapshot()
	next := make([]models.Game, 0, len(current))
	for _, g := range current {
		if g.ID != id {
			next = append(next, g)
		}
	}
	return s.store.Replace(next)
}

// Update replaces the element whose identifier matches game.ID. When no
// element matches, Update is a no-op; it never inserts.
func (s *Store) Update(game models.Game) error {
	if err := game.Validate(); err != nil {
		return err
	}

	current := s.store.Snapshot()
	matched := false
	next := make([]models.Game, len(current))
	for i, g := range current {
		if g.ID == game.ID {
			next[i] = game
			matched = true
		} else {
			next[i] = g
		}
	}

	if !matched {
		return nil
	}
	return s.store.Replace(next)
}

// MostPopular returns the games above the popularity threshold that are
// already released. Pure projection over the snapshot, never persisted.
func (s *Store) MostPopular() []models.Game {
	var out []models.Game
	for _, g := range s.store.Snapshot() {
		if g.Downloads > PopularityThreshold && !g.ComingSoon {
			out = append(out, g)
		}
	}
	return out
}

// MostDownloaded returns the popular released games ordered by download
// count, highest first.
func (s *Store) MostDownloaded() []models.Game {
	games := s.MostPopular()
	// insertion sort; the catalog is small and the snapshot copy is ours
	for i := 1; i < len(games); i++ {
		for j := i; j > 0 && games[j].Downloads > games[j-1].Downloads; j-- {
			games[j], games[j-1] = games[j-1], games[j]
		}
	}
	return games
}

// ComingSoon returns the games flagged as not yet released.
func (s *Store) ComingSoon() []models.Game {
	var out []models.Game
	for _, g := range s.store.Snapshot() {
		if g.ComingSoon {
			out = append(out, g)
		}
	}
	return out
}

// RefreshFromRemote fetches the remote listing and overwrites the local
// catalog wholesale on success.
//
// On any failure the error is logged as a warning and the existing local
// sequence is returned unchanged; remote refresh never surfaces an error to
// its caller and never corrupts local state.
func (s *Store) RefreshFromRemote(ctx context.Context) []models.Game {
	if s.fetcher == nil {
		s.logger.Warn("remote refresh requested without a fetcher, keeping local catalog")
		return s.store.Snapshot()
	}

	games, err := s.fetcher.FetchPopular(ctx)
	if err != nil {
		s.logger.Warn("remote fetch failed, keeping local catalog", "provider", s.fetcher.Name(), "error", err)
		return s.store.Snapshot()
	}

	if err := s.store.Replace(games); err != nil {
		s.logger.Warn("failed to persist remote catalog, keeping local catalog", "error", err)
		return s.store.Snapshot()
	}

	s.logger.Info("catalog refreshed from remote", "provider", s.fetcher.Name(), "games", len(games))
	return games
}
