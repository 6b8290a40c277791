// Package termui is a line-oriented terminal front end for the calculator.
//
// Each input line holds whitespace-separated key captions ("7", "+", "×",
// "x²", "=", "C", "theme"); runs of keypad characters such as "12+3=" are
// split into single presses. "convert <value> [category]" drives the unit
// converter, where category is its 1-based position or its full label.
// "quit" ends the session. After every line a frame is written to the output.
package termui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"calc-converter/internal/converter"
	"calc-converter/internal/theme"
	"calc-converter/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

const frameWidth = 40

// Toolkit implements ui.Toolkit on a reader/writer pair.
type Toolkit struct {
	in       io.Reader
	out      io.Writer
	renderer *lipgloss.Renderer

	callbacks map[ui.Key]ui.Callback
	texts     map[ui.WidgetID]string
	history   []string
	theme     theme.Theme
	// notice is shown once in the next frame.
	notice string
}

var _ ui.Toolkit = (*Toolkit)(nil)

func New(in io.Reader, out io.Writer) *Toolkit {
	return &Toolkit{
		in:        in,
		out:       out,
		renderer:  lipgloss.NewRenderer(out),
		callbacks: make(map[ui.Key]ui.Callback),
		texts:     make(map[ui.WidgetID]string),
	}
}

func (t *Toolkit) OnPress(key ui.Key, fn ui.Callback)  { t.callbacks[key] = fn }
func (t *Toolkit) SetText(id ui.WidgetID, text string) { t.texts[id] = text }
func (t *Toolkit) GetText(id ui.WidgetID) string       { return t.texts[id] }
func (t *Toolkit) AppendHistoryRow(row string)         { t.history = append(t.history, row) }
func (t *Toolkit) ApplyTheme(th theme.Theme)           { t.theme = th }

// Run reads lines until EOF, "quit" or ctx is done. It writes a frame before
// the first line and after each one.
func (t *Toolkit) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(t.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
		close(lines)
	}()

	if err := t.frame(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			if quit := t.handleLine(ctx, line); quit {
				return nil
			}
			if err := t.frame(); err != nil {
				return err
			}
		}
	}
}

func (t *Toolkit) handleLine(ctx context.Context, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "convert":
		t.handleConvert(ctx, fields[1:])
		return false
	}

	for _, field := range fields {
		if key, ok := ui.KeyByLabel(field); ok {
			t.press(ctx, key)
			continue
		}
		for _, r := range field {
			key, ok := ui.KeyByLabel(string(r))
			if !ok {
				t.notice = fmt.Sprintf("unknown key %q", string(r))
				return false
			}
			t.press(ctx, key)
		}
	}
	return false
}

func (t *Toolkit) handleConvert(ctx context.Context, args []string) {
	if len(args) == 0 {
		t.notice = "usage: convert <value> [category]"
		return
	}

	t.texts[ui.ConverterInput] = args[0]
	if len(args) > 1 {
		category, ok := resolveCategory(strings.Join(args[1:], " "))
		if !ok {
			t.notice = fmt.Sprintf("unknown category %q", strings.Join(args[1:], " "))
			return
		}
		t.texts[ui.ConverterCategory] = string(category)
	}
	t.press(ctx, ui.KeyConvert)
}

func resolveCategory(s string) (converter.Category, bool) {
	categories := converter.Categories()
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(categories) {
			return "", false
		}
		return categories[n-1], true
	}
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

func (t *Toolkit) press(ctx context.Context, key ui.Key) {
	if fn, ok := t.callbacks[key]; ok {
		fn(ctx)
	}
}
