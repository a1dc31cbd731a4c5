package catalog

import "github.com/pixelthorn/gdx/internal/models"

// DefaultGames returns the fixed seed catalog used when durable storage is
// empty and remote fetch is unavailable. A fresh slice is returned on every
// call so callers can mutate freely.
func DefaultGames() []models.Game {
	return []models.Game{
		{
			ID:          "1",
			Title:       "The Legend of Zelda: Breath of the Wild",
			Description: "Explore a vast open world in this epic adventure",
			ReleaseDate: "2017-03-03",
			Rating:      4.9,
			Downloads:   31000000,
			ImageURL:    "https://images.unsplash.com/photo-1578303512597-81e6cc155b3e?w=400",
			Platforms:   []string{"Nintendo Switch", "Wii U"},
			Tags:        []string{"Adventure", "Action", "Open World"},
		},
		{
			ID:          "2",
			Title:       "Elden Ring",
			Description: "An epic action RPG from the creator of Dark Souls",
			ReleaseDate: "2022-02-25",
			Rating:      4.8,
			Downloads:   25000000,
			ImageURL:    "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=400",
			Platforms:   []string{"PC", "PS5", "Xbox Series X"},
			Tags:        []string{"RPG", "Action", "Souls-like"},
		},
		{
			ID:          "3",
			Title:       "God of War Ragnarök",
			Description: "Kratos and Atreus face Ragnarök in this epic sequel",
			ReleaseDate: "2022-11-09",
			Rating:      4.7,
			Downloads:   15000000,
			ImageURL:    "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=400",
			Platforms:   []string{"PS5", "PS4"},
			Tags:        []string{"Action", "Adventure", "Mythology"},
		},
		{
			ID:          "4",
			Title:       "Cyberpunk 2077",
			Description: "Live in Night City, a megalopolis obsessed with power",
			ReleaseDate: "2020-12-10",
			Rating:      4.3,
			Downloads:   25000000,
			ImageURL:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=400",
			Platforms:   []string{"PC", "PS5", "Xbox Series X"},
			Tags:        []string{"RPG", "Sci-Fi", "Open World"},
		},
		{
			ID:          "5",
			Title:       "Red Dead Redemption 2",
			Description: "An epic tale of the American wild west",
			ReleaseDate: "2018-10-26",
			Rating:      4.85,
			Downloads:   50000000,
			ImageURL:    "https://images.unsplash.com/photo-1509198397868-475647b2a1e5?w=400",
			Platforms:   []string{"PC", "PS4", "Xbox One"},
			Tags:        []string{"Adventure", "Action", "Open World"},
		},
		{
			ID:          "6",
			Title:       "Minecraft",
			Description: "Build, explore, and survive in an infinite block world",
			ReleaseDate: "2011-11-18",
			Rating:      4.6,
			Downloads:   300000000,
			ImageURL:    "https://images.unsplash.com/photo-1614680376573-df3480f0c6ff?w=400",
			Platforms:   []string{"Cross-platform"},
			Tags:        []string{"Sandbox", "Survival", "Building"},
		},
	}
}
