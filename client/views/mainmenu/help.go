package mainmenu

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"movedex/client/global"
	"movedex/client/rendering"
	"movedex/client/rendering/components"
)

type helpEntry string

func (h helpEntry) FilterValue() string { return string(h) }

var helpEntries = []list.Item{
	helpEntry("/            filter the species list"),
	helpEntry("enter        look up the highlighted species"),
	helpEntry("left/right   previous / next generation"),
	helpEntry("p            pin or unpin the species"),
	helpEntry("tab          switch between list and roster"),
	helpEntry("j/k          move through the roster"),
	helpEntry("d            remove the highlighted pin"),
	helpEntry("esc          back"),
}

type helpModel struct {
	backtrack *components.Breadcrumbs
	keyList   list.Model
}

func newHelpModel(backtrack *components.Breadcrumbs) helpModel {
	keyList := list.New(helpEntries, rendering.NewTextDelegate(), 50, len(helpEntries)+8)
	keyList.Title = "Moveset Lookup"
	keyList.SetShowStatusBar(false)
	keyList.SetFilteringEnabled(false)
	keyList.DisableQuitKeybindings()

	return helpModel{backtrack: backtrack, keyList: keyList}
}

func (m helpModel) Init() tea.Cmd { return nil }

func (m helpModel) View() string {
	footer := rendering.FadedStyle.Render("Data covers Generations I-VI fully; VII and VIII have known gaps.")
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Left, m.keyList.View(), footer))
}

func (m helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.keyList, cmd = m.keyList.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}
	}

	return m, cmd
}
