package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"facetgrid/pkg/engine"
	"facetgrid/pkg/types"
	"facetgrid/pkg/view"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("211"))
	buttonStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("250"))
	pressedStyle = buttonStyle.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("63")).Bold(true)
	focusStyle   = lipgloss.NewStyle().Underline(true)
	badgeStyle   = lipgloss.NewStyle().Faint(true)
	itemStyle    = lipgloss.NewStyle().PaddingLeft(2)
	hidingStyle  = itemStyle.Faint(true).Strikethrough(true)
	emptyStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("203")).PaddingLeft(2)
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// focusable is one activatable control in traversal order.
type focusable struct {
	id    types.ControlID
	label string
}

type model struct {
	eng      *engine.Engine
	snapshot *view.Snapshot
	focus    int
}

func newModel(eng *engine.Engine, snapshot *view.Snapshot) model {
	return model{eng: eng, snapshot: snapshot}
}

func (m model) Init() tea.Cmd {
	return tick()
}

// focusables lists group controls, currently visible category controls
// and a reset pseudo-control, in render order.
func (m model) focusables() []focusable {
	var out []focusable
	for _, c := range m.eng.GroupControls() {
		out = append(out, focusable{id: c.ID, label: c.Label})
	}
	for _, c := range m.eng.CategoryControls() {
		if m.snapshot.ControlVisible(c.ID) {
			out = append(out, focusable{id: c.ID, label: c.Label})
		}
	}
	out = append(out, focusable{label: "Reset"})
	return out
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()
	case tea.KeyMsg:
		controls := m.focusables()
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.focus--
			if m.focus < 0 {
				m.focus = len(controls) - 1
			}
		case "right", "l", "tab":
			m.focus++
			if m.focus >= len(controls) {
				m.focus = 0
			}
		case "enter", " ":
			if m.focus >= 0 && m.focus < len(controls) {
				if f := controls[m.focus]; f.id == "" {
					m.eng.Reset()
				} else {
					m.eng.Activate(f.id)
				}
			}
		case "r":
			m.eng.Reset()
		}
		if m.focus >= len(m.focusables()) {
			m.focus = 0
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("facetgrid"))
	b.WriteString("\n\n")

	controls := m.focusables()
	groups := m.eng.GroupControls()

	var row []string
	for i, f := range controls {
		style := buttonStyle
		if m.snapshot.Pressed(f.id) {
			style = pressedStyle
		}
		label := f.label
		if badge := m.snapshot.BadgeFor(f.id); badge.Shown && i >= len(groups) {
			label = fmt.Sprintf("%s %s", label, badgeStyle.Render(fmt.Sprintf("(%d)", badge.Count)))
		}
		rendered := style.Render(label)
		if i == m.focus {
			rendered = focusStyle.Render(rendered)
		}
		row = append(row, rendered)
		if i == len(groups)-1 {
			row = append(row, " │ ")
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
	b.WriteString("\n\n")

	if m.snapshot.EmptyState() {
		b.WriteString(emptyStyle.Render("Keine Beiträge gefunden"))
		b.WriteString("\n")
	} else {
		for _, it := range m.eng.Items() {
			switch m.snapshot.Phase(it.ID) {
			case types.ItemShown:
				b.WriteString(itemStyle.Render(fmt.Sprintf("• %s  %s", it.Title, badgeStyle.Render(itemMeta(it)))))
				b.WriteString("\n")
			case types.ItemHiding:
				b.WriteString(hidingStyle.Render(fmt.Sprintf("• %s", it.Title)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	status := fmt.Sprintf("%d sichtbar", m.snapshot.VisibleCount())
	if m.snapshot.Filtering() {
		status += " · Filter aktiv"
	}
	b.WriteString(footerStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("←/→ wählen · enter aktivieren · r zurücksetzen · q beenden"))
	b.WriteString("\n")
	return b.String()
}

func itemMeta(it types.Item) string {
	parts := make([]string, 0, len(it.Categories)+1)
	if it.HasGroup() {
		parts = append(parts, string(it.Group))
	}
	parts = append(parts, it.Categories...)
	return strings.Join(parts, ", ")
}
