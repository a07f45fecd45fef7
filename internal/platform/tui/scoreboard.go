package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-platformer/internal/core"
	"github.com/vovakirdan/retro-platformer/internal/registry"
	"github.com/vovakirdan/retro-platformer/internal/storage"
)

const (
	boardSidebarMinWidth = 80  // Narrower terminals get level tabs instead
	boardSidebarWidth    = 20
	boardRunLimit        = 100 // Runs loaded per level
	boardTabTitleLen     = 10
)

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
	boardDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardStatsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 1)
	boardPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = boardDimStyle.Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap binds the scoreboard keys. Left/right and tab both cycle
// levels; up/down scroll the run table.
type ScoreboardKeyMap struct {
	Up, Down        key.Binding
	PrevLevel       key.Binding
	NextLevel       key.Binding
	PrevLevelArrows key.Binding
	NextLevelArrows key.Binding
	Back, Quit      key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.NextLevelArrows, k.PrevLevelArrows},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the stock scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:              key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "older runs")),
		Down:            key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "newer runs")),
		NextLevel:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next level")),
		PrevLevel:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous level")),
		NextLevelArrows: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next level")),
		PrevLevelArrows: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous level")),
		Back:            key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "level menu")),
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the recorded runs of one level at a time, with a
// summary line from storage.LevelStats.
type ScoreboardModel struct {
	levels   []registry.LevelInfo
	selected int
	store    *storage.Store
	tickRate int

	runs  []storage.ScoreEntry
	stats *storage.LevelStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the scoreboard on the first registered level.
// A nil store shows every level as empty.
func NewScoreboardModel(store *storage.Store, cfg core.RuntimeConfig) ScoreboardModel {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	m := ScoreboardModel{
		levels:   registry.List(),
		store:    store,
		tickRate: tickRate,
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	m.table = m.newTable()
	m.selectLevel(0)
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= boardSidebarMinWidth
}

// newTable sizes the run table for the current terminal.
func (m *ScoreboardModel) newTable() table.Model {
	cols := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Clear", Width: 5},
		{Title: "Date", Width: 14},
	}

	avail := m.width - 4
	if m.wide() {
		avail -= boardSidebarWidth + 3
	}
	if spare := avail - 50; spare > 0 {
		cols[len(cols)-1].Width += min(spare, 6)
	}

	// Title, stats line, help bar and borders take ten rows.
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)
	return t
}

// selectLevel moves the cursor, wrapping at both ends, and reloads runs.
func (m *ScoreboardModel) selectLevel(i int) {
	n := len(m.levels)
	if n == 0 {
		return
	}
	m.selected = (i%n + n) % n
	id := m.levels[m.selected].ID

	m.runs, m.stats = nil, nil
	if m.store != nil {
		if runs, err := m.store.TopScores(id, boardRunLimit); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.LevelStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprint(r.Score),
			formatTicks(r.Ticks, m.tickRate),
			yesOrBlank(r.Cleared),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func yesOrBlank(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

// formatTicks renders a tick count as seconds at the given rate.
func formatTicks(ticks uint64, tickRate int) string {
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(tickRate))
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextLevel, m.keys.NextLevelArrows):
			m.selectLevel(m.selected + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevLevel, m.keys.PrevLevelArrows):
			m.selectLevel(m.selected - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.levels) > 0 {
		title += " · " + m.levels[m.selected].Title
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.summary(), m.width))
	b.WriteString("\n\n")
	if m.wide() {
		b.WriteString(m.viewWithSidebar())
	} else {
		b.WriteString(m.viewWithTabs())
	}
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// summary is the stats line under the title, empty until a run is saved.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	s := fmt.Sprintf("%d runs  %d clears  avg %.0f", m.stats.Runs, m.stats.Clears, m.stats.AvgScore)
	if m.stats.BestTicks > 0 {
		s += "  fastest clear " + formatTicks(m.stats.BestTicks, m.tickRate)
	}
	return boardStatsStyle.Render(s)
}

func (m ScoreboardModel) viewWithSidebar() string {
	var list strings.Builder
	list.WriteString("Levels\n")
	list.WriteString(strings.Repeat("─", boardSidebarWidth-4))
	list.WriteString("\n")
	for i, l := range m.levels {
		line := "  " + truncate(l.Title, boardSidebarWidth-6)
		if i == m.selected {
			line = boardTitleStyle.UnsetMarginBottom().Render("> " + truncate(l.Title, boardSidebarWidth-6))
		}
		list.WriteString(line)
		list.WriteString("\n")
	}

	sidebar := boardPanelStyle.Width(boardSidebarWidth).Render(list.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", boardPanelStyle.Render(m.runTable()))
}

func (m ScoreboardModel) viewWithTabs() string {
	tabs := make([]string, len(m.levels))
	for i, l := range m.levels {
		name := truncate(l.Title, boardTabTitleLen)
		if i == m.selected {
			tabs[i] = boardActiveStyle.Render(name)
		} else {
			tabs[i] = boardDimStyle.Render(" " + name + " ")
		}
	}

	bar := strings.Join(tabs, " ")
	if len(m.levels) > 0 && lipgloss.Width(bar) > m.width-4 {
		bar = "◂ " + m.levels[m.selected].Title + " ▸"
	}

	return centerText(bar, m.width) + "\n\n" +
		centerText(boardPanelStyle.Render(m.runTable()), m.width)
}

func (m ScoreboardModel) runTable() string {
	if len(m.runs) == 0 {
		return boardEmptyStyle.Render("Nothing recorded for this level.\nCollect a token and finish a run to appear here.")
	}
	return m.table.View()
}

// truncate shortens s to n bytes, marking the cut with a dot.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// IsGoingBack reports whether the player asked to return to the level menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to leave entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
