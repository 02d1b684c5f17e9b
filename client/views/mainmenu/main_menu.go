package mainmenu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"movedex/client/rendering"
	"movedex/client/rendering/components"
	"movedex/client/roster"
	"movedex/client/views/lookupview"
)

type MainMenuModel struct {
	buttons components.MenuButtons
}

// NewModel builds the entry menu. The roster store is the session's
// mutable state and travels with every view that can touch it.
func NewModel(store *roster.Store) MainMenuModel {
	buttons := []components.ViewButton{
		{
			Name: "Moveset Lookup",
			OnClick: func() tea.Model {
				backtrack := components.NewBreadcrumb()
				backtrack.PushNew(func() tea.Model {
					return NewModel(store)
				})

				return lookupview.NewModel(&backtrack, store)
			},
		},
		{
			Name: "Help",
			OnClick: func() tea.Model {
				backtrack := components.NewBreadcrumb()
				backtrack.PushNew(func() tea.Model {
					return NewModel(store)
				})

				return newHelpModel(&backtrack)
			},
		},
	}

	return MainMenuModel{
		buttons: components.NewMenuButton(buttons),
	}
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) View() string {
	header := "Movedex"
	sub := rendering.FadedStyle.Render("Movepool lookup for Generations I-VIII")
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, header, sub, m.buttons.View()))
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel := m.buttons.Update(msg)
	if newModel != nil {
		return newModel, nil
	}

	return m, nil
}
