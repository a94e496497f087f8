package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/buckleypaul/findport/internal/ui"
)

// PickerItem represents a selectable menu option.
type PickerItem struct {
	Label string
	Value int
}

// PickerSelectedMsg is sent when the user selects an item.
type PickerSelectedMsg struct {
	Value int
}

// PickerClosedMsg is sent when the user closes the picker without selecting.
type PickerClosedMsg struct{}

// Picker is a boxed list of menu options. Items can be chosen with the
// cursor or by typing their key.
type Picker struct {
	title  string
	items  []PickerItem
	cursor int
	width  int
	height int
}

// NewPicker creates a new picker.
func NewPicker(title string) *Picker {
	return &Picker{title: title}
}

// SetItems populates the picker with items.
func (p *Picker) SetItems(items []PickerItem) {
	p.items = items
	if p.cursor >= len(items) {
		p.cursor = 0
	}
}

// SetSize sets the available dimensions.
func (p *Picker) SetSize(w, h int) {
	p.width = w
	p.height = h
}

// Cursor returns the highlighted index.
func (p *Picker) Cursor() int {
	return p.cursor
}

// Update handles input for the picker.
func (p *Picker) Update(msg tea.Msg) (*Picker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, GlobalKeys.Back):
		return p, func() tea.Msg { return PickerClosedMsg{} }
	case key.Matches(keyMsg, GlobalKeys.Select):
		if p.cursor < len(p.items) {
			return p, selected(p.items[p.cursor].Value)
		}
		return p, nil
	case key.Matches(keyMsg, GlobalKeys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
		return p, nil
	case key.Matches(keyMsg, GlobalKeys.Down):
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
		return p, nil
	}

	// Typing an item's key selects it directly.
	if n, err := strconv.Atoi(keyMsg.String()); err == nil {
		for i, item := range p.items {
			if item.Value == n {
				p.cursor = i
				return p, selected(n)
			}
		}
	}
	return p, nil
}

func selected(value int) tea.Cmd {
	return func() tea.Msg { return PickerSelectedMsg{Value: value} }
}

// View renders the picker box.
func (p *Picker) View() string {
	boxWidth := p.width - 4
	if boxWidth > 60 {
		boxWidth = 60
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	innerWidth := boxWidth - 4 // border + padding

	var b strings.Builder

	selectedStyle := lipgloss.NewStyle().Foreground(ui.Primary).Bold(true)

	for i, item := range p.items {
		label := fmt.Sprintf("%d  %s", item.Value, item.Label)
		label = ansi.Truncate(label, innerWidth-2, "")

		if i == p.cursor {
			b.WriteString(selectedStyle.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.DimStyle.Render("enter:run  esc:quit"))

	box := lipgloss.NewStyle().
		Width(boxWidth).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ui.Primary).
		Padding(1, 1).
		Render(b.String())

	// Add title to border
	titleStr := lipgloss.NewStyle().
		Foreground(ui.Primary).
		Bold(true).
		Render(" " + p.title + " ")

	// Replace the top border with one carrying the title. Widths are
	// measured in cells so styled titles line up.
	lines := strings.Split(box, "\n")
	if len(lines) > 0 {
		dashes := lipgloss.Width(lines[0]) - 3 - lipgloss.Width(titleStr) - 1
		if dashes >= 0 {
			border := lipgloss.NewStyle().Foreground(ui.Primary)
			lines[0] = border.Render("╭──") + titleStr + border.Render(strings.Repeat("─", dashes)+"╮")
		}
		box = strings.Join(lines, "\n")
	}

	return box
}
