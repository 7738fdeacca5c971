package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/llehouerou/cuepad/internal/catalog"
)

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("211")).
			Bold(true)
	buttonStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(cellWidth - 2).
			Height(cellHeight - 2)
	playingButtonStyle = buttonStyle.
				BorderForeground(lipgloss.Color("211")).
				Foreground(lipgloss.Color("211"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(m.viewGrid())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())

	return b.String()
}

func (m Model) viewTabs() string {
	labels := lo.Map(m.categories, func(name string, i int) string {
		label := tabLabel(i, name)
		if i == m.tab {
			return activeTabStyle.Render(label)
		}
		return tabStyle.Render(label)
	})
	return strings.Join(labels, "")
}

func (m Model) viewGrid() string {
	songs := m.catalog.Category(m.activeCategory())
	if len(songs) == 0 {
		return statusStyle.Render("  (no songs in this category)")
	}

	now := m.controller.Now()
	cols := columns(m.width)

	var rows []string
	for start := 0; start < len(songs); start += cols {
		end := min(start+cols, len(songs))
		cells := lo.Map(songs[start:end], func(song catalog.Song, _ int) string {
			style := buttonStyle
			if now != nil && now.ID == song.ID {
				style = playingButtonStyle
			}
			return style.Render(song.ButtonText())
		})
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) viewStatus() string {
	status := m.status
	if status == "" {
		status = "enter: random · space: stop · 1-9: tabs · ctrl+c: quit"
	}
	return statusStyle.Render(" " + status)
}

// tabLabel renders one tab exactly as hit-testing expects it: the first nine
// tabs carry their digit shortcut.
func tabLabel(i int, name string) string {
	if i < 9 {
		return fmt.Sprintf(" %d:%s ", i+1, name)
	}
	return fmt.Sprintf(" %s ", name)
}

// tabAt maps an x coordinate on the tab bar to a tab index, or -1.
func tabAt(categories []string, x int) int {
	pos := 0
	for i, name := range categories {
		w := lipgloss.Width(tabLabel(i, name))
		if x < pos+w {
			return i
		}
		pos += w
	}
	return -1
}
