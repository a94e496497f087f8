package app

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestPickerTruncatesLabelsByCell(t *testing.T) {
	p := NewPicker("findport")
	p.SetSize(30, 20)
	p.SetItems([]PickerItem{{Label: strings.Repeat("ü", 80), Value: 1}})

	view := p.View()
	if !utf8.ValidString(view) {
		t.Fatalf("truncated label is not valid UTF-8: %q", view)
	}
	assertBoxAligned(t, view)
}

func TestPickerTitleAlignedWithColor(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	p := NewPicker("findport")
	p.SetSize(80, 24)
	p.SetItems([]PickerItem{{Label: "USB Detailed", Value: 1}})

	view := p.View()
	if !strings.Contains(view, "findport") {
		t.Fatalf("expected title in border:\n%s", view)
	}
	assertBoxAligned(t, view)
}

// assertBoxAligned checks every line of a rendered box has the same width.
func assertBoxAligned(t *testing.T, box string) {
	t.Helper()
	lines := strings.Split(box, "\n")
	want := lipgloss.Width(lines[len(lines)-1])
	for i, line := range lines {
		if got := lipgloss.Width(line); got != want {
			t.Errorf("line %d is %d cells wide, expected %d: %q", i, got, want, line)
		}
	}
}
