package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"movedex/client/dex"
	"movedex/client/roster"
)

var (
	pinStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Align(lipgloss.Center).Width(22)
	highlightedPinStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Align(lipgloss.Center).Width(22)
	emptyRosterStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Align(lipgloss.Center).Width(22).Faint(true)

	movePinDown = key.NewBinding(
		key.WithKeys("j", "down"),
	)
	movePinUp = key.NewBinding(
		key.WithKeys("k", "up"),
	)
)

// RosterPanel renders the pinned species side panel. The panel reads
// whatever Store the owning view hands it; it never owns the roster.
type RosterPanel struct {
	Roster  *roster.Store
	Index   *dex.SpeciesIndex
	Focused bool

	CurrentIndex int
}

func NewRosterPanel(store *roster.Store, index *dex.SpeciesIndex) RosterPanel {
	return RosterPanel{
		Roster: store,
		Index:  index,
	}
}

func (m RosterPanel) Init() tea.Cmd { return nil }

func (m RosterPanel) View() string {
	pins := m.Roster.List()

	if len(pins) == 0 {
		return emptyRosterStyle.Render("Roster\n(no pins)")
	}

	panels := make([]string, 0, len(pins)+1)
	panels = append(panels, "Roster")

	for i, name := range pins {
		label := name
		if species, ok := m.Index.Get(name); ok {
			label = fmt.Sprintf("%s\n#%03d", species.Name, species.DexNumber)
		}

		if i == m.CurrentIndex && m.Focused {
			panels = append(panels, highlightedPinStyle.Render(label))
		} else {
			panels = append(panels, pinStyle.Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center, panels...)
}

func (m RosterPanel) Update(msg tea.Msg) (RosterPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Focused {
			if key.Matches(msg, movePinDown) {
				m.CurrentIndex++

				if m.CurrentIndex > m.Roster.Len()-1 {
					m.CurrentIndex = 0
				}
			}

			if key.Matches(msg, movePinUp) {
				m.CurrentIndex--

				if m.CurrentIndex < 0 {
					m.CurrentIndex = m.Roster.Len() - 1
				}
			}
		}
	}

	return m, nil
}

// Selected returns the highlighted pin, if any.
func (m RosterPanel) Selected() (string, bool) {
	pins := m.Roster.List()
	if len(pins) == 0 || m.CurrentIndex < 0 || m.CurrentIndex >= len(pins) {
		return "", false
	}

	return pins[m.CurrentIndex], true
}

// Clamp keeps the cursor valid after a removal.
func (m *RosterPanel) Clamp() {
	if m.CurrentIndex > m.Roster.Len()-1 {
		m.CurrentIndex = m.Roster.Len() - 1
	}
	if m.CurrentIndex < 0 {
		m.CurrentIndex = 0
	}
}
