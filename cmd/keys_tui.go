package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/mailcove/mailcove/pkg/layout"
	"github.com/mailcove/mailcove/pkg/platform"
	"github.com/mailcove/mailcove/pkg/shortcuts"
)

// keysTUIKeyMap defines the keybindings for the shortcut browser itself.
type keysTUIKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func (k keysTUIKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextTab, k.PrevTab, k.Help, k.Quit}
}

func (k keysTUIKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Search, k.ClearSearch, k.NextTab, k.PrevTab},
		{k.Help, k.Quit},
	}
}

func newKeysTUIKeyMap() keysTUIKeyMap {
	return keysTUIKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next scope"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "prev scope"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	tuiTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
	tuiTabStyle       = lipgloss.NewStyle().Padding(0, 1).Faint(true)
	tuiActiveTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("42")).Underline(true)
	tuiComboStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	tuiFlagStyle      = lipgloss.NewStyle().Faint(true)
)

// keysModel holds the state for the shortcut browser TUI.
type keysModel struct {
	keys     keysTUIKeyMap
	enhanced []shortcuts.Enhanced
	scopes   []shortcuts.Scope

	detected   layout.Detection
	platformID string

	activeTab int

	searchInput  textinput.Model
	searchActive bool

	vp       viewport.Model
	help     help.Model
	showHelp bool
	width    int
	height   int
}

// runKeysTUI launches the interactive shortcut browser.
func runKeysTUI(opts *resolveOptions) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("not a terminal; use 'mailcove keys dump' for machine-readable output")
	}

	resolver, detected, err := opts.build()
	if err != nil {
		return err
	}

	platformID := opts.platformID
	if platformID == "" {
		platformID = platform.Identifier()
	}

	ti := textinput.New()
	ti.Placeholder = "Search shortcuts or actions..."
	ti.Prompt = " / "

	m := keysModel{
		keys:        newKeysTUIKeyMap(),
		enhanced:    resolver.Enhance(shortcuts.All(), detected),
		scopes:      shortcuts.AllScopes(),
		detected:    detected,
		platformID:  platformID,
		searchInput: ti,
		vp:          viewport.New(80, 20),
		help:        help.New(),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m keysModel) Init() tea.Cmd {
	return nil
}

func (m keysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 6 // Reserve room for tabs, search, and footer
		m.updateViewport()
		return m, nil

	case tea.KeyMsg:
		if m.searchActive {
			switch msg.String() {
			case "esc":
				m.searchActive = false
				m.searchInput.SetValue("")
				m.searchInput.Blur()
				m.updateViewport()
			case "enter":
				m.searchActive = false
				m.searchInput.Blur()
			default:
				m.searchInput, cmd = m.searchInput.Update(msg)
				m.updateViewport()
			}
			return m, cmd
		}

		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		if key.Matches(msg, m.keys.Help) {
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		}

		if key.Matches(msg, m.keys.Search) {
			m.searchActive = true
			m.searchInput.Focus()
			return m, textinput.Blink
		}

		if key.Matches(msg, m.keys.ClearSearch) {
			m.searchInput.SetValue("")
			m.updateViewport()
			return m, nil
		}

		if key.Matches(msg, m.keys.NextTab) {
			m.activeTab = (m.activeTab + 1) % len(m.scopes)
			m.vp.GotoTop()
			m.updateViewport()
			return m, nil
		}

		if key.Matches(msg, m.keys.PrevTab) {
			m.activeTab--
			if m.activeTab < 0 {
				m.activeTab = len(m.scopes) - 1
			}
			m.vp.GotoTop()
			m.updateViewport()
			return m, nil
		}

		// Let viewport handle scrolling
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *keysModel) updateViewport() {
	m.vp.SetContent(m.renderRows())
}

func (m keysModel) View() string {
	var b strings.Builder

	b.WriteString(tuiTitleStyle.Render("Mailcove Shortcuts"))
	b.WriteString(tuiFlagStyle.Render(fmt.Sprintf("  layout: %s  platform: %s", m.detected, m.platformID)))
	b.WriteString("\n\n")

	var tabs []string
	for i, scope := range m.scopes {
		style := tuiTabStyle
		if i == m.activeTab {
			style = tuiActiveTabStyle
		}
		tabs = append(tabs, style.Render(scope.String()))
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n")

	if m.searchActive || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderRows renders the shortcut table for the active scope, filtered by
// the current search query.
func (m keysModel) renderRows() string {
	scope := m.scopes[m.activeTab]
	query := strings.ToLower(m.searchInput.Value())

	var b strings.Builder
	for _, rec := range m.enhanced {
		if rec.Scope != scope {
			continue
		}
		if query != "" && !matchesQuery(rec, query) {
			continue
		}

		combo := strings.Join(rec.DisplayKeys, " + ")
		var flags []string
		if rec.PreventDefault {
			flags = append(flags, "prevent-default")
		}
		if rec.Ignore {
			flags = append(flags, "doc-only")
		}
		line := fmt.Sprintf("  %-18s %-42s %s",
			tuiComboStyle.Render(combo),
			rec.Description,
			tuiFlagStyle.Render(rec.Action))
		if len(flags) > 0 {
			line += tuiFlagStyle.Render("  [" + strings.Join(flags, ",") + "]")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return tuiFlagStyle.Render("  no shortcuts match")
	}
	return b.String()
}

func matchesQuery(rec shortcuts.Enhanced, query string) bool {
	if strings.Contains(strings.ToLower(rec.Action), query) ||
		strings.Contains(strings.ToLower(rec.Description), query) {
		return true
	}
	for _, k := range rec.Keys {
		if strings.Contains(strings.ToLower(k), query) {
			return true
		}
	}
	for _, k := range rec.DisplayKeys {
		if strings.Contains(strings.ToLower(k), query) {
			return true
		}
	}
	return false
}
