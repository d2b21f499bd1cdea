package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmallory/floatpane/pkg/config"
	"github.com/jmallory/floatpane/pkg/interaction"
	"github.com/jmallory/floatpane/pkg/panel"
)

type keyMap struct {
	Focus key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Focus, k.Quit}}
}

var keys = keyMap{
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "focus input"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// configReloadMsg carries a freshly parsed panel configuration from the
// file watcher.
type configReloadMsg []panel.Config

type configErrMsg struct{ err error }

type model struct {
	panels  []*panel.Panel
	input   textinput.Model
	keys    keyMap
	help    help.Model
	watcher *config.Watcher
	width   int
	height  int
	status  string
}

func newModel(configs []panel.Config, cw *config.Watcher) *model {
	m := &model{
		input:   newTextInput(),
		keys:    keys,
		help:    help.New(),
		watcher: cw,
	}
	for _, cfg := range configs {
		m.panels = append(m.panels, panel.New(cfg))
	}
	if len(m.panels) > 0 {
		p := m.panels[0]
		p.SetTargetAt(func(x, y int) interaction.Target {
			if y == inputRow {
				return interaction.Target{Tag: "input", Editable: true}
			}
			return interaction.Target{}
		})
	}
	return m
}

func (m *model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	for _, p := range m.panels {
		p.SetViewport(w, h)
	}
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.watcher != nil {
		cmds = append(cmds, waitForReload(m.watcher))
	}
	return tea.Batch(cmds...)
}

func waitForReload(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case configs, ok := <-w.Events:
			if !ok {
				return nil
			}
			return configReloadMsg(configs)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err}
		}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// While the input is focused it owns every key except ctrl+c
		// and tab, so typing "q" does not quit.
		if m.input.Focused() {
			switch {
			case msg.String() == "ctrl+c":
				return m, tea.Quit
			case key.Matches(msg, m.keys.Focus):
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case tea.MouseMsg:
		// Topmost panel first so overlapping panels shadow the ones
		// beneath them.
		for _, p := range m.byStacking(true) {
			if p.Update(msg) {
				return m, nil
			}
		}
		return m, nil

	case configReloadMsg:
		m.applyConfigs([]panel.Config(msg))
		m.status = "config reloaded"
		return m, waitForReload(m.watcher)

	case configErrMsg:
		m.status = fmt.Sprintf("config error: %v", msg.err)
		return m, waitForReload(m.watcher)
	}

	return m, nil
}

// applyConfigs updates panels in place so their positions survive a
// reload, and grows or trims the panel list to match.
func (m *model) applyConfigs(configs []panel.Config) {
	for i, cfg := range configs {
		if i < len(m.panels) {
			m.panels[i].ApplyConfig(cfg)
			continue
		}
		np := panel.New(cfg)
		np.SetViewport(m.width, m.height)
		m.panels = append(m.panels, np)
	}
	if len(configs) < len(m.panels) {
		m.panels = m.panels[:len(configs)]
	}
}

// byStacking returns panels ordered by stacking weight. Descending order
// is used for hit testing, ascending for painting.
func (m *model) byStacking(desc bool) []*panel.Panel {
	out := make([]*panel.Panel, len(m.panels))
	copy(out, m.panels)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return out[i].Stacking() > out[j].Stacking()
		}
		return out[i].Stacking() < out[j].Stacking()
	})
	return out
}

var (
	backdropStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3f3f46"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a1a1aa"))
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	m.fillContent()

	frame := m.backdrop()
	for _, p := range m.byStacking(false) {
		pos := p.Geometry().Pos
		frame = panel.Overlay(frame, p.View(), pos.X, pos.Y)
	}

	lines := strings.Split(frame, "\n")
	if len(lines) > 0 {
		footer := m.help.View(m.keys)
		if m.status != "" {
			footer = statusStyle.Render(m.status) + "  " + footer
		}
		lines[len(lines)-1] = footer
	}
	return strings.Join(lines, "\n")
}

func (m *model) fillContent() {
	if len(m.panels) > 0 {
		m.panels[0].SetContent("Notes:\n" + m.input.View())
	}
	if len(m.panels) > 1 {
		var b strings.Builder
		for i, p := range m.panels {
			g := p.Geometry()
			fmt.Fprintf(&b, "%d %-10s pos (%d,%d) size %s x %s",
				i, p.Title(), g.Pos.X, g.Pos.Y, g.Size.Width, g.Size.Height)
			if i < len(m.panels)-1 {
				b.WriteByte('\n')
			}
		}
		m.panels[1].SetContent(b.String())
	}
}

func (m *model) backdrop() string {
	row := backdropStyle.Render(strings.Repeat("·", m.width))
	rows := make([]string, m.height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
