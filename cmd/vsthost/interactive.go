//go:build linux || darwin

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/hq9000/vsthost/analysis"
	"github.com/hq9000/vsthost/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	paramStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserState int

const (
	stateBrowse browserState = iota
	stateEdit
)

type paramRow struct {
	name    string
	label   string
	display string
	value   float32
}

type browserModel struct {
	err      error
	host     *runtime.SimpleHost
	cfg      sessionConfig
	filename string
	params   []paramRow
	selected int
	state    browserState
	input    textinput.Model
	status   string
}

type pluginLoadedMsg struct {
	err    error
	host   *runtime.SimpleHost
	params []paramRow
}

type notePlayedMsg struct {
	err    error
	rms    float64
	freq   float64
	frames int
}

func newBrowserModel(filename string, cfg sessionConfig) *browserModel {
	return &browserModel{filename: filename, cfg: cfg, state: stateBrowse}
}

func (m *browserModel) Init() tea.Cmd {
	return m.loadPlugin
}

func (m *browserModel) loadPlugin() tea.Msg {
	sh := runtime.NewSimpleHost(
		runtime.WithSampleRate(m.cfg.SampleRate),
		runtime.WithBlockSize(m.cfg.BlockSize),
		runtime.WithVerbose(m.cfg.Verbose),
	)
	if err := sh.LoadPlugin(m.filename); err != nil {
		return pluginLoadedMsg{err: err}
	}
	if err := sh.Open(); err != nil {
		return pluginLoadedMsg{err: err}
	}
	if err := sh.Resume(); err != nil {
		return pluginLoadedMsg{err: err}
	}
	return pluginLoadedMsg{host: sh, params: readParams(sh.Plugin())}
}

func readParams(p *runtime.Plugin) []paramRow {
	rows := make([]paramRow, p.NumParams())
	for i := range rows {
		idx := int32(i)
		rows[i] = paramRow{
			name:    p.ParamName(idx),
			label:   p.ParamLabel(idx),
			display: p.ParamDisplay(idx),
			value:   p.ParamValue(idx),
		}
	}
	return rows
}

func (m *browserModel) playNote() tea.Msg {
	audio, err := m.host.PlayNote(m.cfg.Note, m.cfg.Duration)
	if err != nil {
		return notePlayedMsg{err: err}
	}
	freq, err := analysis.DominantFrequency(audio[0], m.cfg.SampleRate)
	if err != nil {
		return notePlayedMsg{err: err}
	}
	return notePlayedMsg{
		rms:    analysis.RMS(audio[0]),
		freq:   freq,
		frames: len(audio[0]),
	}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateEdit && msg.String() == "q" {
				break
			}
			if m.host != nil {
				_ = m.host.Close()
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.params)-1 {
				m.selected++
			}

		case "p":
			if m.state == stateBrowse && m.host != nil {
				m.status = "playing..."
				return m, m.playNote
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.params) == 0 {
					break
				}
				ti := textinput.New()
				ti.Prompt = m.params[m.selected].name + " = "
				ti.SetValue(fmt.Sprintf("%g", m.params[m.selected].value))
				ti.Width = 20
				ti.Focus()
				m.input = ti
				m.state = stateEdit
				return m, nil

			case stateEdit:
				v, err := strconv.ParseFloat(m.input.Value(), 32)
				if err != nil {
					m.status = errorStyle.Render("not a number: " + m.input.Value())
				} else {
					m.host.Plugin().SetParamValue(int32(m.selected), float32(v))
					m.params = readParams(m.host.Plugin())
					m.status = fmt.Sprintf("set %s to %g", m.params[m.selected].name, v)
				}
				m.state = stateBrowse
				return m, nil
			}

		case "esc":
			if m.state == stateEdit {
				m.state = stateBrowse
			}
		}

	case pluginLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.host = msg.host
		m.params = msg.params

	case notePlayedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("play failed: %v", msg.err))
		} else {
			m.status = resultStyle.Render(fmt.Sprintf(
				"played note %d: %d frames, RMS %.4f, dominant %.1f Hz",
				m.cfg.Note, msg.frames, msg.rms, msg.freq))
		}
	}

	if m.state == stateEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.host == nil {
		return "Loading plugin..."
	}

	var b strings.Builder
	p := m.host.Plugin()

	b.WriteString(titleStyle.Render("vsthost"))
	b.WriteString(fmt.Sprintf(" %s (%s, %s)\n\n", p.Name(), p.Vendor(), p.Category()))

	for i, row := range m.params {
		line := fmt.Sprintf("%2d  %-20s %8.4f  %s %s",
			i, paramStyle.Render(row.name), row.value,
			valueStyle.Render(row.display), row.label)
		if i == m.selected && m.state == stateBrowse {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.params) == 0 {
		b.WriteString(helpStyle.Render("(no parameters)\n"))
	}

	if m.state == stateEdit {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
	} else {
		b.WriteString("\n")
		if m.status != "" {
			b.WriteString(m.status)
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit • p play note • q quit"))
	}
	return b.String()
}

func runInteractive(filename string, cfg sessionConfig) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newBrowserModel(filename, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
