package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/pixelthorn/gdx/internal/models"
)

var _ list.Item = gameItem{}

// gameItem wraps [models.Game] to implement [list.Item].
type gameItem struct {
	game models.Game
}

func (i gameItem) FilterValue() string { return i.game.Title }
func (i gameItem) Title() string       { return i.game.Title }
func (i gameItem) Description() string {
	if i.game.ComingSoon {
		return "coming soon"
	}
	desc := fmt.Sprintf("%.1f★ • %d downloads", i.game.Rating, i.game.Downloads)
	if i.game.ReleaseDate != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.game.ReleaseDate)
	}
	return desc
}
