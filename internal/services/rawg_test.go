package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRAWGService(t *testing.T) {
	t.Run("NewRAWGService", func(t *testing.T) {
		t.Run("applies defaults", func(t *testing.T) {
			svc := NewRAWGService(RAWGOpts{})
			if svc.baseURL != rawgBaseURL {
				t.Errorf("expected baseURL %s, got %s", rawgBaseURL, svc.baseURL)
			}
			if svc.pageSize != 12 {
				t.Errorf("expected page size 12, got %d", svc.pageSize)
			}
			if svc.ordering != "-rating" {
				t.Errorf("expected ordering -rating, got %s", svc.ordering)
			}
		})

		t.Run("keeps custom values", func(t *testing.T) {
			svc := NewRAWGService(RAWGOpts{BaseURL: "http://localhost:9000", PageSize: 40})
			if svc.baseURL != "http://localhost:9000" {
				t.Errorf("unexpected baseURL %s", svc.baseURL)
			}
			if svc.pageSize != 40 {
				t.Errorf("unexpected page size %d", svc.pageSize)
			}
		})
	})

	t.Run("Name", func(t *testing.T) {
		if svc := NewRAWGService(RAWGOpts{}); svc.Name() != "RAWG" {
			t.Errorf("expected name RAWG, got %s", svc.Name())
		}
	})

	t.Run("FetchPopular", func(t *testing.T) {
		listing := `{
			"count": 2,
			"results": [
				{
					"id": 3498,
					"name": "Grand Theft Auto V",
					"released": "2013-09-17",
					"background_image": "https://media.rawg.io/gta.jpg",
					"rating": 4.47,
					"added": 21000,
					"platforms": [
						{"platform": {"id": 4, "name": "PC", "slug": "pc"}},
						{"platform": {"id": 187, "name": "PlayStation 5", "slug": "ps5"}}
					],
					"tags": [
						{"id": 31, "name": "Singleplayer", "slug": "singleplayer"},
						{"id": 7, "name": "Multiplayer", "slug": "multiplayer"},
						{"id": 40847, "name": "Steam Achievements", "slug": "steam-achievements"},
						{"id": 13, "name": "Atmospheric", "slug": "atmospheric"}
					]
				},
				{
					"id": 9999,
					"name": "Mystery Title",
					"tba": true,
					"rating": 0
				}
			]
		}`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/games" {
				t.Errorf("expected path /games, got %s", r.URL.Path)
			}
			q := r.URL.Query()
			if q.Get("key") != "test-key" {
				t.Errorf("expected key query param, got %q", q.Get("key"))
			}
			if q.Get("ordering") != "-rating" {
				t.Errorf("expected ordering -rating, got %q", q.Get("ordering"))
			}
			if q.Get("page_size") != "12" {
				t.Errorf("expected page_size 12, got %q", q.Get("page_size"))
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(listing))
		}))
		defer server.Close()

		svc := NewRAWGService(RAWGOpts{BaseURL: server.URL, APIKey: "test-key"})

		games, err := svc.FetchPopular(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(games) != 2 {
			t.Fatalf("expected 2 games, got %d", len(games))
		}

		gta := games[0]
		if gta.ID != "3498" {
			t.Errorf("expected numeric id mapped to string, got %s", gta.ID)
		}
		if gta.Title != "Grand Theft Auto V" {
			t.Errorf("unexpected title %s", gta.Title)
		}
		if gta.Downloads != 21000 {
			t.Errorf("expected added count mapped to downloads, got %d", gta.Downloads)
		}
		if len(gta.Platforms) != 2 || gta.Platforms[1] != "PlayStation 5" {
			t.Errorf("unexpected platforms %v", gta.Platforms)
		}
		if len(gta.Tags) != 3 {
			t.Errorf("expected tags capped at 3, got %v", gta.Tags)
		}
		if gta.ComingSoon {
			t.Error("released game should not be coming soon")
		}

		tba := games[1]
		if tba.Description != descriptionPlaceholder {
			t.Errorf("expected placeholder description, got %q", tba.Description)
		}
		if !tba.ComingSoon {
			t.Error("tba game should map to coming soon")
		}
		if tba.Rating != 0 {
			t.Errorf("expected zero rating, got %f", tba.Rating)
		}
	})

	t.Run("FetchPopular error paths", func(t *testing.T) {
		t.Run("non-200 status", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusUnauthorized)
			}))
			defer server.Close()

			svc := NewRAWGService(RAWGOpts{BaseURL: server.URL})
			if _, err := svc.FetchPopular(context.Background()); err == nil {
				t.Error("expected error for 401 response")
			}
		})

		t.Run("malformed body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("{not json"))
			}))
			defer server.Close()

			svc := NewRAWGService(RAWGOpts{BaseURL: server.URL})
			if _, err := svc.FetchPopular(context.Background()); err == nil {
				t.Error("expected error for malformed body")
			}
		})

		t.Run("unreachable server", func(t *testing.T) {
			svc := NewRAWGService(RAWGOpts{BaseURL: "http://127.0.0.1:1"})
			if _, err := svc.FetchPopular(context.Background()); err == nil {
				t.Error("expected error for unreachable server")
			}
		})
	})

	t.Run("mapGame clamps rating into bounds", func(t *testing.T) {
		game := mapGame(RAWGGame{ID: 1, Name: "X", Rating: 9.7})
		if game.Rating != 5 {
			t.Errorf("expected rating clamped to 5, got %f", game.Rating)
		}
	})
}
