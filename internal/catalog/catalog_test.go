package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/pixelthorn/gdx/internal/models"
	"github.com/pixelthorn/gdx/internal/shared"
	gdxtest "github.com/pixelthorn/gdx/internal/testing"
)

func newTestStore(t *testing.T, opts Opts) (*Store, *gdxtest.MemKV) {
	t.Helper()
	kv := gdxtest.NewMemKV()
	if opts.KV == nil {
		opts.KV = kv
	} else {
		kv, _ = opts.KV.(*gdxtest.MemKV)
	}
	if opts.Key == "" {
		opts.Key = "local_games_demo"
	}
	opts.Logger = shared.NewLogger(nil)
	return New(opts), kv
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds default catalog when storage empty and remote disabled", func(t *testing.T) {
		s, kv := newTestStore(t, Opts{})

		if err := s.Initialize(ctx); err != nil {
			t.Fatalf("initialize failed: %v", err)
		}

		want := DefaultGames()
		if got := s.Snapshot(); len(got) != len(want) {
			t.Fatalf("expected %d seeded games, got %d", len(want), len(got))
		}

		// storage now contains exactly the seed
		raw, ok, _ := kv.Get("local_games_demo")
		if !ok {
			t.Fatal("expected catalog to be persisted")
		}
		var persisted []models.Game
		if err := json.Unmarshal(raw, &persisted); err != nil {
			t.Fatalf("persisted catalog is malformed: %v", err)
		}
		if !reflect.DeepEqual(persisted, want) {
			t.Error("persisted catalog should equal the seed")
		}
	})

	t.Run("loads persisted catalog as-is", func(t *testing.T) {
		kv := gdxtest.NewMemKV()
		existing := []models.Game{{ID: "x", Title: "Existing", Rating: 3}}
		raw, _ := json.Marshal(existing)
		kv.Seed("local_games_demo", raw)

		s, _ := newTestStore(t, Opts{KV: kv})
		if err := s.Initialize(ctx); err != nil {
			t.Fatalf("initialize failed: %v", err)
		}

		if got := s.Snapshot(); !reflect.DeepEqual(got, existing) {
			t.Errorf("expected persisted catalog untouched, got %v", got)
		}
	})

	t.Run("fetches remote when flag and fetcher present", func(t *testing.T) {
		fetched := []models.Game{{ID: "42", Title: "Remote Game", Rating: 4}}
		fetcher := &gdxtest.MockFetcher{Games: fetched}

		s, _ := newTestStore(t, Opts{Fetcher: fetcher, RemoteFetch: true})
		if err := s.Initialize(ctx); err != nil {
			t.Fatalf("initialize failed: %v", err)
		}

		if fetcher.Calls != 1 {
			t.Errorf("expected one fetch, got %d", fetcher.Calls)
		}
		if got := s.Snapshot(); !reflect.DeepEqual(got, fetched) {
			t.Errorf("expected remote catalog, got %v", got)
		}
	})

	t.Run("skips fetch when flag set but fetcher absent", func(t *testing.T) {
		s, _ := newTestStore(t, Opts{RemoteFetch: true})
		if err := s.Initialize(ctx); err != nil {
			t.Fatalf("initialize failed: %v", err)
		}
		// no fetcher wired: falls through to keeping the (empty) local value
		if got := s.Snapshot(); len(got) != 0 {
			t.Errorf("expected empty catalog, got %d games", len(got))
		}
	})
}

func TestCRUD(t *testing.T) {
	t.Run("Add assigns id and prepends", func(t *testing.T) {
		s, _ := newTestStore(t, Opts{})

		added, err := s.Add(models.Game{
			Title:       "X",
			Description: "...",
			ReleaseDate: "2025-01-01",
			ImageURL:    "http://x",
			Rating:      4,
			Downloads:   0,
			ComingSoon:  false,
		})
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}

		snap := s.Snapshot()
		if len(snap) != 1 {
			t.Fatalf("expected snapshot length 1, got %d", len(snap))
		}
		if added.ID == "" {
			t.Error("expected a fresh id to be assigned")
		}
		if snap[0].ID != added.ID {
			t.Error("new game should be the first element")
		}
	})

	t.Run("Add keeps caller-supplied id", func(t *testing.T) {
		s, _ := newTestStore(t, Opts{})
		added, err := s.Add(models.Game{ID: "keep-me", Title: "Y", Rating: 1})
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if added.ID != "keep-me" {
			t.Errorf("expected id keep-me, got %s", added.ID)
		}
	})

	t.Run("Add rejects invalid game", func(t *testing.T) {
		s, _ := newTestStore(t, Opts{})
		if _, err := s.Add(models.Game{Title: "", Rating: 1}); err == nil {
			t.Error("expected validation error")
		}
		if len(s.Snapshot()) != 0 {
			t.Error("failed add must not mutate the catalog")
		}
	})

	t.Run("Remove is idempotent", func(t *testing.T) {
		s, _ := newTestStore(t, Opts{})
		s.Add(models.Game{ID: "a", Title: "A", Rating: 1})
		s.Add(models.Game{ID: "b", Title: "B", Rating: 2})

		if err := s.Remove("a"); err != nil {
			t.Fatalf("remove failed: %v", err)
		}
		after := s.Snapshot()

		if err := s.Remove("a"); err != nil {
			t.Fatalf("second remove failed: %v", err)
		}
		if !reflect.DeepEqual(s.Snapshot(), after) {
			t.Error("removing the same id twice must leave the same end state")
		}
		if _, found := s.GetByID("a"); found {
			t.Error("removed game should be gone")
		}
	})

	t.Run("Update replaces matching element only", func(t *testing.T) {
		s, _ := newTestStore(t, Opts{})
		s.Add(models.Game{ID: "a", Title: "A", Rating: 1})

		if err := s.Update(models.Game{ID: "a", Title: "A2", Rating: 2}); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		got, _ := s.GetByID("a")
		if got.Title != "A2" || got.Rating != 2 {
			t.Errorf("expected updated game, got %+v", got)
		}
	})

	t.Run("Update without match is a no-op, never an insert", func(t *testing.T) {
		s, _ := newTestStore(t, Opts{})
		s.Add(models.Game{ID: "a", Title: "A", Rating: 1})

		before := s.Snapshot()
		if err := s.Update(models.Game{ID: "ghost", Title: "Ghost", Rating: 1}); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if !reflect.DeepEqual(s.Snapshot(), before) {
			t.Error("update without match must not change the catalog")
		}
	})

	t.Run("sequence of operations matches in-memory simulation", func(t *testing.T) {
		s, _ := newTestStore(t, Opts{})

		type op struct {
			kind string
			game models.Game
		}
		ops := []op{
			{"add", models.Game{ID: "1", Title: "One", Rating: 1}},
			{"add", models.Game{ID: "2", Title: "Two", Rating: 2}},
			{"add", models.Game{ID: "3", Title: "Three", Rating: 3}},
			{"remove", models.Game{ID: "2"}},
			{"update", models.Game{ID: "1", Title: "One!", Rating: 1.5}},
			{"remove", models.Game{ID: "missing"}},
		}

		var sim []models.Game
		for _, o := range ops {
			switch o.kind {
			case "add":
				if _, err := s.Add(o.game); err != nil {
					t.Fatalf("add failed: %v", err)
				}
				sim = append([]models.Game{o.game}, sim...)
			case "remove":
				if err := s.Remove(o.game.ID); err != nil {
					t.Fatalf("remove failed: %v", err)
				}
				var next []models.Game
				for _, g := range sim {
					if g.ID != o.game.ID {
						next = append(next, g)
					}
				}
				sim = next
			case "update":
				if err := s.Update(o.game); err != nil {
					t.Fatalf("update failed: %v", err)
				}
				for i, g := range sim {
					if g.ID == o.game.ID {
						sim[i] = o.game
					}
				}
			}
		}

		if got := s.Snapshot(); !reflect.DeepEqual(got, sim) {
			t.Errorf("store diverged from simulation:\n got %v\nwant %v", got, sim)
		}
	})
}

func TestDerivedViews(t *testing.T) {
	seed := []models.Game{
		{ID: "1", Title: "Hit", Rating: 4.5, Downloads: PopularityThreshold + 1},
		{ID: "2", Title: "Niche", Rating: 4.9, Downloads: 10},
		{ID: "3", Title: "Hyped", Rating: 0, Downloads: PopularityThreshold * 2, ComingSoon: true},
		{ID: "4", Title: "Classic", Rating: 4.0, Downloads: PopularityThreshold * 10},
	}

	setup := func(t *testing.T) *Store {
		s, _ := newTestStore(t, Opts{})
		for i := len(seed) - 1; i >= 0; i-- {
			if _, err := s.Add(seed[i]); err != nil {
				t.Fatalf("add failed: %v", err)
			}
		}
		return s
	}

	t.Run("MostPopular excludes unreleased and below-threshold", func(t *testing.T) {
		s := setup(t)

		got := s.MostPopular()
		ids := map[string]bool{}
		for _, g := range got {
			ids[g.ID] = true
			if g.ComingSoon {
				t.Errorf("coming-soon game %s leaked into MostPopular", g.ID)
			}
			if g.Downloads <= PopularityThreshold {
				t.Errorf("below-threshold game %s leaked into MostPopular", g.ID)
			}
		}
		if !ids["1"] || !ids["4"] || len(got) != 2 {
			t.Errorf("expected exactly games 1 and 4, got %v", got)
		}
	})

	t.Run("MostPopular tracks mutations", func(t *testing.T) {
		s := setup(t)

		s.Remove("1")
		for _, g := range s.MostPopular() {
			if g.ID == "1" {
				t.Error("removed game still visible in MostPopular")
			}
		}
	})

	t.Run("MostDownloaded sorts by downloads descending", func(t *testing.T) {
		s := setup(t)

		got := s.MostDownloaded()
		for i := 1; i < len(got); i++ {
			if got[i].Downloads > got[i-1].Downloads {
				t.Errorf("not sorted at %d: %v", i, got)
			}
		}
		if len(got) == 0 || got[0].ID != "4" {
			t.Errorf("expected Classic first, got %v", got)
		}
	})

	t.Run("ComingSoon includes only unreleased", func(t *testing.T) {
		s := setup(t)

		got := s.ComingSoon()
		if len(got) != 1 || got[0].ID != "3" {
			t.Errorf("expected only game 3, got %v", got)
		}
	})
}

func TestRefreshFromRemote(t *testing.T) {
	ctx := context.Background()

	t.Run("success overwrites wholesale", func(t *testing.T) {
		fetched := []models.Game{{ID: "r1", Title: "Remote", Rating: 4}}
		fetcher := &gdxtest.MockFetcher{Games: fetched}

		s, _ := newTestStore(t, Opts{Fetcher: fetcher})
		s.Add(models.Game{ID: "local", Title: "Local", Rating: 1})

		got := s.RefreshFromRemote(ctx)
		if !reflect.DeepEqual(got, fetched) {
			t.Errorf("expected remote result, got %v", got)
		}
		if _, found := s.GetByID("local"); found {
			t.Error("refresh must overwrite, not merge")
		}
	})

	t.Run("failure keeps local catalog and surfaces no error", func(t *testing.T) {
		fetcher := &gdxtest.MockFetcher{Err: errors.New("network down")}

		s, _ := newTestStore(t, Opts{Fetcher: fetcher})
		s.Add(models.Game{ID: "local", Title: "Local", Rating: 1})
		before := s.Snapshot()

		got := s.RefreshFromRemote(ctx)
		if !reflect.DeepEqual(got, before) {
			t.Errorf("expected pre-call snapshot, got %v", got)
		}
		if !reflect.DeepEqual(s.Snapshot(), before) {
			t.Error("failed refresh must not corrupt local state")
		}
	})

	t.Run("no fetcher keeps local catalog", func(t *testing.T) {
		s, _ := newTestStore(t, Opts{})
		s.Add(models.Game{ID: "local", Title: "Local", Rating: 1})

		got := s.RefreshFromRemote(ctx)
		if len(got) != 1 || got[0].ID != "local" {
			t.Errorf("expected local catalog, got %v", got)
		}
	})
}

func TestSubscribe(t *testing.T) {
	s, _ := newTestStore(t, Opts{})

	var lengths []int
	unsub := s.Subscribe(func(games []models.Game) {
		lengths = append(lengths, len(games))
	})
	defer unsub()

	s.Add(models.Game{ID: "a", Title: "A", Rating: 1})
	s.Add(models.Game{ID: "b", Title: "B", Rating: 2})
	s.Remove("a")

	want := []int{0, 1, 2, 1}
	if !reflect.DeepEqual(lengths, want) {
		t.Errorf("expected lengths %v, got %v", want, lengths)
	}
}
