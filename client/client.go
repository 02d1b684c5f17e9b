package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"movedex/client/global"
	"movedex/client/roster"
	"movedex/client/views/mainmenu"
	"movedex/data"
)

type model struct {
	currentView tea.Model
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newView, cmd := m.currentView.Update(msg)

	m.currentView = newView

	// Views handle ESC themselves through breadcrumbs; don't let it
	// close the program
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEscape {
			return m, nil
		}
	}

	return m, cmd
}

func (m model) View() string {
	return m.currentView.View()
}

func main() {
	global.GlobalInit(data.Files, true)

	rosterStore, err := roster.LoadRoster(global.Opt.RosterSaveLocation)
	if err != nil {
		log.Err(err).Msg("couldn't load saved roster, starting with an empty one")
	}

	m := model{
		currentView: mainmenu.NewModel(rosterStore),
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal().Err(err).Msg("error running program")
	}
}
