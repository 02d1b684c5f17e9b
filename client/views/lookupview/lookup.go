package lookupview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"movedex/client/dex"
	"movedex/client/global"
	"movedex/client/rendering"
	"movedex/client/rendering/components"
	"movedex/client/roster"
)

var (
	infoStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Width(30)
	infoHeaderStyle = lipgloss.NewStyle().Bold(true).Border(lipgloss.NormalBorder(), false, false, true).Width(30).Align(lipgloss.Center)
	resultStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1, 2)
	bucketHeadStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// lookupCtx is the per-session state every sub-view of the lookup
// screen shares: the pinned roster and the way back out.
type lookupCtx struct {
	roster    *roster.Store
	backtrack *components.Breadcrumbs
}

type Model struct {
	ctx *lookupCtx

	speciesList   list.Model
	gen           dex.Generation
	result        *dex.MovesetResult
	rosterPanel   components.RosterPanel
	rosterFocused bool
}

func NewModel(backtrack *components.Breadcrumbs, store *roster.Store) Model {
	ctx := &lookupCtx{
		roster:    store,
		backtrack: backtrack,
	}

	gen, ok := dex.ParseGeneration(global.Opt.DefaultGeneration)
	if !ok {
		gen = dex.GEN_MAX
	}

	speciesList := list.New(speciesItems(gen), itemDelegate{}, 34, global.TERM_HEIGHT-12)
	speciesList.Title = "Species"
	speciesList.SetShowStatusBar(false)
	speciesList.SetFilteringEnabled(true)
	speciesList.SetShowFilter(true)
	speciesList.DisableQuitKeybindings()

	return Model{
		ctx: ctx,

		speciesList: speciesList,
		gen:         gen,
		rosterPanel: components.NewRosterPanel(store, global.DEX.Species),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if !m.rosterFocused {
		m.speciesList, cmd = m.speciesList.Update(msg)
	}

	// While the user is typing a filter, every key belongs to the list
	if m.speciesList.SettingFilter() {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.DownTabKey) && m.ctx.roster.Len() > 0 {
			m.rosterFocused = !m.rosterFocused
		}

		if key.Matches(msg, global.MoveLeftKey) && !m.rosterFocused {
			m.setGeneration(m.gen - 1)
		}

		if key.Matches(msg, global.MoveRightKey) && !m.rosterFocused {
			m.setGeneration(m.gen + 1)
		}

		if key.Matches(msg, global.SelectKey) {
			if name, ok := m.currentSpecies(); ok {
				result := global.DEX.Moveset(name, m.gen)
				m.result = &result
			}
		}

		if key.Matches(msg, global.PinKey) && !m.rosterFocused {
			if name, ok := m.currentSpecies(); ok {
				m.togglePin(name)
			}
		}

		if key.Matches(msg, global.RemovePinKey) && m.rosterFocused {
			if name, ok := m.rosterPanel.Selected(); ok {
				m.ctx.roster.Remove(name)
				m.rosterPanel.Clamp()
				m.saveRoster()

				if m.ctx.roster.Len() == 0 {
					m.rosterFocused = false
				}
			}
		}

		if key.Matches(msg, global.BackKey) {
			return m.ctx.backtrack.PopDefault(func() tea.Model { return m }), nil
		}
	}

	m.rosterPanel.Focused = m.rosterFocused
	m.rosterPanel, _ = m.rosterPanel.Update(msg)

	return m, cmd
}

func (m Model) View() string {
	var header string
	var body string

	if species, ok := m.selectedSpecies(); ok {
		header = fmt.Sprintf("#%03d %s", species.DexNumber, species.Name)
		typeLine := species.Type1
		if species.Type2 != "" {
			typeLine = fmt.Sprintf("%s | %s", species.Type1, species.Type2)
		}

		pinned := ""
		if m.ctx.roster.Contains(species.Name) {
			pinned = "\nPinned to roster"
		}

		body = fmt.Sprintf("Type: %s\nSince: Gen %s%s", typeLine, species.IntroGen.Roman(), pinned)
	}

	genLine := fmt.Sprintf("< Gen %s (%s) >", m.gen.Roman(), m.gen.GroupName())
	info := lipgloss.JoinVertical(lipgloss.Left, infoHeaderStyle.Render(header), body)
	selection := lipgloss.JoinVertical(lipgloss.Center, genLine, m.speciesList.View(), infoStyle.Render(info))

	resultView := resultStyle.Render(m.renderResult())

	return rendering.GlobalCenter(lipgloss.JoinHorizontal(lipgloss.Top, selection, resultView, m.rosterPanel.View()))
}

// currentSpecies is what enter acts on: the roster pin when the panel
// has focus, the highlighted list entry otherwise.
func (m Model) currentSpecies() (string, bool) {
	if m.rosterFocused {
		return m.rosterPanel.Selected()
	}

	if species, ok := m.selectedSpecies(); ok {
		return species.Name, true
	}

	return "", false
}

func (m Model) selectedSpecies() (dex.Species, bool) {
	selected := m.speciesList.SelectedItem()
	if selected == nil {
		return dex.Species{}, false
	}

	return selected.(item).Species, true
}

func (m *Model) setGeneration(gen dex.Generation) {
	if !gen.Valid() {
		return
	}

	m.gen = gen
	m.speciesList.SetItems(speciesItems(gen))

	// Remember the last used generation, like the last session left off
	global.Opt.DefaultGeneration = gen.GroupName()
	if err := global.SaveConfig(global.Opt); err != nil {
		log.Err(err).Msg("failed to save generation selection")
	}

	// Re-run the current lookup against the new generation
	if m.result != nil {
		result := global.DEX.Moveset(m.result.Species, gen)
		m.result = &result
	}
}

func (m *Model) togglePin(name string) {
	if m.ctx.roster.Contains(name) {
		m.ctx.roster.Remove(name)
		m.rosterPanel.Clamp()
	} else {
		m.ctx.roster.Add(name)
	}

	if m.ctx.roster.Len() == 0 {
		m.rosterFocused = false
	}

	m.saveRoster()
}

func (m Model) saveRoster() {
	if err := roster.SaveRoster(global.Opt.RosterSaveLocation, m.ctx.roster); err != nil {
		log.Err(err).Msg("failed to save roster")
	}
}

func (m Model) renderResult() string {
	if m.result == nil {
		return rendering.FadedStyle.Render("Select a species and press enter")
	}

	result := *m.result

	if !result.Known {
		lines := []string{
			fmt.Sprintf("%q is not known in Generation %s.", result.Species, result.Generation.Roman()),
			"",
			"Did you mean:",
		}
		for _, suggestion := range result.Suggestions {
			lines = append(lines, "  "+suggestion)
		}

		return strings.Join(lines, "\n")
	}

	sections := make([]string, 0, 6)
	sections = append(sections, fmt.Sprintf("%s - Generation %s Learnset", result.Species, result.Generation.Roman()))

	if result.Note != "" {
		sections = append(sections, rendering.WarningStyle.Render(result.Note))
	}

	if result.Empty() {
		sections = append(sections, "", "No recorded moves for this generation.")
		return strings.Join(sections, "\n")
	}

	sections = append(sections,
		renderBucket("By leveling up", result.LevelUp),
		renderBucket("By TM/HM", result.Machine),
		renderBucket("By breeding", result.Breeding),
		renderBucket("By tutoring", result.Tutor),
	)

	return strings.Join(sections, "\n")
}

func renderBucket(title string, rows []dex.ResolvedMove) string {
	if len(rows) == 0 {
		return ""
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, "", bucketHeadStyle.Render(title))

	for _, row := range rows {
		lines = append(lines, renderRow(row))
	}

	return strings.Join(lines, "\n")
}

func renderRow(row dex.ResolvedMove) string {
	detail := methodDetail(row.Record)

	if row.Incomplete {
		return fmt.Sprintf("%-10s %-16s %s", detail, row.Record.Move, rendering.FadedStyle.Render("(move data missing)"))
	}

	name := row.Move.Name
	if row.Stab {
		name = rendering.StabStyle.Render(name)
	}

	return fmt.Sprintf("%-10s %-16s %-10s %-9s %4s %5s %3d PP",
		detail,
		name,
		row.Move.Type,
		row.Category,
		dashValue(row.Move.Power, "%d"),
		dashValue(row.Move.Accuracy, "%d%%"),
		row.Move.PP,
	)
}

func methodDetail(record dex.AcquisitionRecord) string {
	switch record.Method {
	case dex.METHOD_LEVEL_UP:
		return fmt.Sprintf("Lv. %d", record.Level)
	case dex.METHOD_MACHINE:
		return record.MachineID
	case dex.METHOD_BREEDING:
		if len(record.Parents) > 0 {
			return "Egg*"
		}
		return "Egg"
	case dex.METHOD_TUTOR:
		if record.TutorInfo != "" {
			return record.TutorInfo
		}
		return "Tutor"
	}

	return ""
}

// dashValue renders 0 as the tables' "none" sentinel.
func dashValue(value int, format string) string {
	if value == 0 {
		return "-"
	}

	return fmt.Sprintf(format, value)
}

type item struct {
	dex.Species
}

func (i item) FilterValue() string {
	return i.Name
}

type itemDelegate struct{}

func (i itemDelegate) Height() int                             { return 1 }
func (i itemDelegate) Spacing() int                            { return 0 }
func (i itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (i itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item := listItem.(item)

	renderStr := fmt.Sprintf("%d. %s", item.DexNumber, item.Name)
	if m.Index() == index {
		renderStr = fmt.Sprintf("> %d. %s", item.DexNumber, item.Name)
	}

	fmt.Fprint(w, renderStr)
}

func speciesItems(gen dex.Generation) []list.Item {
	names := global.DEX.Species.List(gen)

	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		if species, ok := global.DEX.Species.Get(name); ok {
			items = append(items, item{species})
		}
	}

	return items
}
