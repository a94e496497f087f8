// Package app is the optional full-screen front-end: the menu options in a
// picker, and the chosen report in a scrollable panel.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/buckleypaul/findport/internal/menu"
	"github.com/buckleypaul/findport/internal/report"
	"github.com/buckleypaul/findport/internal/ui"
)

// ReportRunner runs one menu report into out.
type ReportRunner interface {
	RunChoice(key int, out io.Writer) (report.Result, bool)
}

type viewMode int

const (
	modePicker viewMode = iota
	modeReport
)

// reportDoneMsg carries a finished report back to the model.
type reportDoneMsg struct {
	key    int
	output string
	result report.Result
}

type Model struct {
	runner   ReportRunner
	picker   *Picker
	viewport viewport.Model
	mode     viewMode
	running  bool
	title    string
	result   report.Result
	width    int
	height   int
}

func New(runner ReportRunner) Model {
	p := NewPicker("findport")
	var items []PickerItem
	for _, o := range menu.Options() {
		items = append(items, PickerItem{Label: o.Label, Value: o.Key})
	}
	p.SetItems(items)

	return Model{
		runner:   runner,
		picker:   p,
		viewport: viewport.New(0, 0),
	}
}

// Run starts the full-screen program and blocks until it exits.
func Run(runner ReportRunner, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(runner), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.SetSize(msg.Width, msg.Height-1)
		// panel: 2 border lines; status bar: 1 line
		m.viewport.Width = max(msg.Width-4, 0)
		m.viewport.Height = max(msg.Height-3, 0)
		return m, nil

	case PickerSelectedMsg:
		if msg.Value == menu.KeyExit {
			return m, tea.Quit
		}
		if m.running {
			return m, nil
		}
		m.running = true
		m.title = optionLabel(msg.Value)
		return m, runReport(m.runner, msg.Value)

	case PickerClosedMsg:
		return m, tea.Quit

	case reportDoneMsg:
		m.running = false
		m.result = msg.result
		m.mode = modeReport
		m.viewport.SetContent(msg.output)
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, GlobalKeys.Quit) {
			return m, tea.Quit
		}

		if m.mode == modeReport {
			if key.Matches(msg, GlobalKeys.Back) {
				m.mode = modePicker
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		if m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var body string
	if m.mode == modeReport {
		body = ui.Panel(m.title, m.viewport.View(), m.width, m.height-1, true)
	} else {
		body = lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, m.picker.View())
	}

	return renderLayout(body, renderStatusBar(m.helpKeys(), m.statusBadge(), m.width))
}

func (m Model) helpKeys() []key.Binding {
	if m.mode == modeReport {
		return []key.Binding{GlobalKeys.Up, GlobalKeys.Down, GlobalKeys.Back, GlobalKeys.Quit}
	}
	return []key.Binding{GlobalKeys.Up, GlobalKeys.Down, GlobalKeys.Select, GlobalKeys.Quit}
}

func (m Model) statusBadge() string {
	switch {
	case m.running:
		return ui.Badge("running "+strings.ToLower(m.title), ui.Warning)
	case m.mode != modeReport:
		return ""
	case m.result.Err != nil:
		return ui.ErrorBadge("query failed")
	default:
		return ui.SuccessBadge(fmt.Sprintf("%d devices", m.result.Records))
	}
}

func runReport(runner ReportRunner, k int) tea.Cmd {
	return func() tea.Msg {
		var b strings.Builder
		res, _ := runner.RunChoice(k, &b)
		return reportDoneMsg{key: k, output: b.String(), result: res}
	}
}

func optionLabel(k int) string {
	for _, o := range menu.Options() {
		if o.Key == k {
			return o.Label
		}
	}
	return fmt.Sprintf("Option %d", k)
}
