package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pixelthorn/gdx/internal/catalog"
	"github.com/pixelthorn/gdx/internal/models"
	"github.com/pixelthorn/gdx/internal/store"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CatalogListView ViewState = iota
	DetailView
)

// CatalogFilter selects which derived view of the catalog the list shows.
type CatalogFilter int

const (
	FilterAll CatalogFilter = iota
	FilterPopular
	FilterDownloaded
	FilterUpcoming
)

func (f CatalogFilter) String() string {
	switch f {
	case FilterPopular:
		return "Most Popular"
	case FilterDownloaded:
		return "Most Downloaded"
	case FilterUpcoming:
		return "Coming Soon"
	default:
		return "All Games"
	}
}

// catalogChangedMsg carries a fresh snapshot published by the catalog store.
type catalogChangedMsg []models.Game

// Model represents the TUI application state.
//
// The model subscribes to the catalog store, so any mutation made elsewhere
// in the process (or replayed at subscription) re-renders the list.
type Model struct {
	ctx      context.Context
	view     ViewState
	filter   CatalogFilter
	catalog  *catalog.Store
	width    int
	height   int
	gameList list.Model
	selected *models.Game
	updates  chan []models.Game
	unsub    store.Unsubscribe
	err      error
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model over the given catalog store.
func NewModel(ctx context.Context, cs *catalog.Store) *Model {
	m := &Model{
		ctx:     ctx,
		view:    CatalogListView,
		catalog: cs,
		updates: make(chan []models.Game, 16),
		help:    help.New(),
		keys:    newKeyMap(),
	}

	m.gameList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.gameList.Title = m.filter.String()

	// The store replays the current catalog on subscription, which seeds the
	// list without a separate fetch step. Dropped frames under a full buffer
	// are fine; the next publish supersedes them.
	m.unsub = cs.Subscribe(func(games []models.Game) {
		select {
		case m.updates <- games:
		default:
		}
	})

	return m
}

// Init starts listening for catalog updates.
func (m *Model) Init() tea.Cmd {
	return m.waitForCatalog()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.gameList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case CatalogListView:
			return m.handleListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}

	case catalogChangedMsg:
		m.refreshList([]models.Game(msg))
		return m, m.waitForCatalog()
	}

	var cmd tea.Cmd
	m.gameList, cmd = m.gameList.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case DetailView:
		return m.renderDetail()
	default:
		helpView := m.help.ShortHelpView(m.keys.ShortHelp())
		return fmt.Sprintf("%s\n\n%s", m.gameList.View(), helpView)
	}
}

// Close tears down the catalog subscription.
func (m *Model) Close() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "f":
		m.filter = (m.filter + 1) % 4
		m.refreshList(m.catalog.Snapshot())
		return m, nil
	case "enter":
		if selected := m.gameList.SelectedItem(); selected != nil {
			if item, ok := selected.(gameItem); ok {
				game := item.game
				m.selected = &game
				m.view = DetailView
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.gameList, cmd = m.gameList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "esc":
		m.view = CatalogListView
		m.selected = nil
	}
	return m, nil
}

// refreshList rebuilds the list items for the active filter.
func (m *Model) refreshList(all []models.Game) {
	var games []models.Game
	switch m.filter {
	case FilterPopular:
		games = m.catalog.MostPopular()
	case FilterDownloaded:
		games = m.catalog.MostDownloaded()
	case FilterUpcoming:
		games = m.catalog.ComingSoon()
	default:
		games = all
	}

	items := make([]list.Item, len(games))
	for i, g := range games {
		items[i] = gameItem{game: g}
	}
	m.gameList.SetItems(items)
	m.gameList.Title = m.filter.String()
	if m.width > 0 {
		m.gameList.SetSize(m.width-4, m.height-8)
	}
}

func (m *Model) waitForCatalog() tea.Cmd {
	return func() tea.Msg {
		select {
		case games := <-m.updates:
			return catalogChangedMsg(games)
		case <-m.ctx.Done():
			return tea.Quit()
		}
	}
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return ""
	}
	g := m.selected

	var b strings.Builder
	b.WriteString(styles.title.Render(g.Title))
	b.WriteString("\n\n")
	if g.Description != "" {
		b.WriteString(g.Description)
		b.WriteString("\n\n")
	}
	if g.ComingSoon {
		b.WriteString(styles.warn.Render("Coming soon"))
	} else {
		b.WriteString(styles.ok.Render(fmt.Sprintf("Released %s", g.ReleaseDate)))
	}
	b.WriteString(fmt.Sprintf("\nRating: %.2f / %.0f\n", g.Rating, models.RatingMax))
	b.WriteString(fmt.Sprintf("Downloads: %d\n", g.Downloads))
	if len(g.Platforms) > 0 {
		b.WriteString(fmt.Sprintf("Platforms: %s\n", strings.Join(g.Platforms, ", ")))
	}
	if len(g.Tags) > 0 {
		b.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(g.Tags, ", ")))
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	b.WriteString("\n" + helpView)
	return b.String()
}
