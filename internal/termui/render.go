package termui

import (
	"fmt"
	"strings"

	"calc-converter/internal/theme"
	"calc-converter/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// styles derives every frame style from the active palette.
type styles struct {
	frame   lipgloss.Style
	total   lipgloss.Style
	current lipgloss.Style
	history lipgloss.Style
	section lipgloss.Style
	notice  lipgloss.Style
}

func (t *Toolkit) styles() styles {
	bg := lipgloss.Color(t.theme.Color(theme.Background))
	fg := lipgloss.Color(t.theme.Color(theme.Label))
	button := lipgloss.Color(t.theme.Color(theme.Button))
	historyBg := lipgloss.Color(t.theme.Color(theme.HistoryBackground))

	base := t.renderer.NewStyle().
		Background(bg).
		Foreground(fg).
		Width(frameWidth)

	return styles{
		frame: t.renderer.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(button).
			Background(bg),
		total:   base.Align(lipgloss.Right),
		current: base.Bold(true).Align(lipgloss.Right),
		history: base.Background(historyBg).PaddingTop(1),
		section: base.PaddingTop(1),
		notice:  base.Italic(true),
	}
}

// frame writes one rendering of all widgets.
func (t *Toolkit) frame() error {
	s := t.styles()

	rows := []string{"History:"}
	if len(t.history) == 0 {
		rows = append(rows, "  (empty)")
	}
	for _, row := range t.history {
		rows = append(rows, "  "+row)
	}

	converterRows := []string{
		"Converter: " + t.texts[ui.ConverterCategory],
		t.texts[ui.ConverterResult],
		"theme: " + t.theme.Name,
	}

	parts := []string{
		s.total.Render(t.texts[ui.TotalLabel]),
		s.current.Render(t.texts[ui.CurrentLabel]),
		s.history.Render(strings.Join(rows, "\n")),
		s.section.Render(strings.Join(converterRows, "\n")),
	}
	if t.notice != "" {
		parts = append(parts, s.notice.Render(t.notice))
		t.notice = ""
	}

	_, err := fmt.Fprintln(t.out, s.frame.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	return err
}
