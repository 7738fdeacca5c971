// Package ui renders the trigger pad: category tabs, a button grid and a
// status bar. Its Update loop is the single actor serializing all dispatch
// operations.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/cuepad/internal/catalog"
	"github.com/llehouerou/cuepad/internal/dispatch"
	"github.com/llehouerou/cuepad/internal/errmsg"
	"github.com/llehouerou/cuepad/internal/playback"
)

type tickMsg time.Time

// finishedMsg carries a clip's end-of-playback notification back into the
// update loop, tagged with the playback generation for the stale guard.
type finishedMsg struct {
	gen int
}

// Model is the bubbletea model for the pad.
type Model struct {
	dispatcher *dispatch.Dispatcher
	catalog    *catalog.Catalog
	controller *playback.Controller

	categories []string
	tab        int
	status     string
	width      int
	height     int
	keys       keyMap
}

// New builds the pad over an already-loaded catalog.
func New(d *dispatch.Dispatcher, c *catalog.Catalog, ctrl *playback.Controller) Model {
	return Model{
		dispatcher: d,
		catalog:    c,
		controller: ctrl,
		categories: c.Categories(),
		keys:       defaultKeyMap(),
	}
}

// WithStatus returns the model with an initial status line, used to surface
// the load report.
func (m Model) WithStatus(status string) Model {
	m.status = status
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) activeCategory() string {
	return m.categories[m.tab]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.controller.Stop()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Stop):
			return m.send(dispatch.Stop{})

		case key.Matches(msg, m.keys.Random):
			if m.activeCategory() == catalog.CategoryAll {
				return m.send(dispatch.RandomAll{})
			}
			return m.send(dispatch.Random{Category: m.activeCategory()})

		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			r := msg.Runes[0]
			if r >= '1' && r <= '9' {
				if tab := int(r - '1'); tab < len(m.categories) {
					m.tab = tab
				}
				return m, nil
			}
			return m.send(dispatch.ByKey{Key: r})
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.click(msg.X, msg.Y)
		}

	case finishedMsg:
		m.controller.OnPlaybackFinished(msg.gen)
		if !m.controller.IsPlaying() {
			m.status = ""
		}

	case tickMsg:
		if m.controller.IsPlaying() {
			return m, tickCmd()
		}
	}

	return m, nil
}

func (m Model) click(x, y int) (tea.Model, tea.Cmd) {
	if y < gridTop {
		if tab := tabAt(m.categories, x); tab >= 0 {
			m.tab = tab
		}
		return m, nil
	}
	songs := m.catalog.Category(m.activeCategory())
	idx := cellAt(x, y, m.width, len(songs))
	if idx < 0 {
		return m, nil
	}
	return m.send(dispatch.ByID{ID: songs[idx].ID})
}

// send runs one request through the dispatcher. All dispatch errors stop
// here: they become status text, never a crash.
func (m Model) send(req dispatch.Request) (tea.Model, tea.Cmd) {
	res, err := m.dispatcher.Dispatch(req)
	if err != nil {
		log.Warn().Err(err).Type("request", req).Msg("dispatch failed")
		m.status = errmsg.Format(opFor(req), err)
		return m, nil
	}
	if res.Song == nil {
		if _, stopped := req.(dispatch.Stop); stopped {
			m.status = ""
		}
		return m, nil
	}

	m.status = fmt.Sprintf("▶ %s — %s", res.Song.Title, res.Song.Artist)
	log.Debug().Str("title", res.Song.Title).Int("id", res.Song.ID).Msg("playing")
	return m, tea.Batch(waitForFinish(res.Handle), tickCmd())
}

func opFor(req dispatch.Request) errmsg.Op {
	switch req.(type) {
	case dispatch.Random, dispatch.RandomAll:
		return errmsg.OpPickRandom
	case dispatch.Stop:
		return errmsg.OpStop
	default:
		return errmsg.OpPlay
	}
}

// waitForFinish delivers the clip's end notification as a message so the
// controller transition happens inside the update loop, in arrival order.
func waitForFinish(h playback.Handle) tea.Cmd {
	return func() tea.Msg {
		<-h.Done
		return finishedMsg{gen: h.Gen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
