// Package webui serves the calculator panel over HTTP. It implements
// ui.Toolkit: every button press arrives as a request, is handed to a single
// dispatch goroutine that runs the bound callback, and is answered with a
// snapshot of the widgets.
package webui

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync/atomic"

	"calc-converter/internal/converter"
	"calc-converter/internal/theme"
	"calc-converter/internal/ui"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNotRunning     = errors.New("dispatch loop is not running")
	ErrAlreadyRunning = errors.New("dispatch loop already running")
)

// Toolkit holds the widget state. Callbacks, setters and snapshots only run
// on the dispatch goroutine once Run has started; before that, only the
// single goroutine wiring the App touches it.
type Toolkit struct {
	callbacks map[ui.Key]ui.Callback
	texts     map[ui.WidgetID]string
	history   []string
	theme     theme.Theme

	events  chan event
	running atomic.Bool
	started chan struct{}
	stopped chan struct{}
}

var _ ui.Toolkit = (*Toolkit)(nil)

func NewToolkit() *Toolkit {
	return &Toolkit{
		callbacks: make(map[ui.Key]ui.Callback),
		texts:     make(map[ui.WidgetID]string),
		events:    make(chan event),
		started:   make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

func (t *Toolkit) OnPress(key ui.Key, fn ui.Callback) {
	t.callbacks[key] = fn
}

func (t *Toolkit) SetText(id ui.WidgetID, text string) {
	t.texts[id] = text
}

func (t *Toolkit) GetText(id ui.WidgetID) string {
	return t.texts[id]
}

func (t *Toolkit) AppendHistoryRow(row string) {
	t.history = append(t.history, row)
}

func (t *Toolkit) ApplyTheme(th theme.Theme) {
	t.theme = th
}

// Started is closed once the dispatch loop accepts events.
func (t *Toolkit) Started() <-chan struct{} {
	return t.started
}

// Run is the dispatch loop. It returns nil when ctx is cancelled.
func (t *Toolkit) Run(ctx context.Context) error {
	if !t.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	close(t.started)
	defer close(t.stopped)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-t.events:
			ev.reply <- t.dispatch(ev)
		}
	}
}

// event is one unit of work for the dispatch loop: optional widget inputs,
// then zero or more presses.
type event struct {
	ctx    context.Context
	inputs map[ui.WidgetID]string
	keys   []ui.Key
	// traceSteps opens a child span per key.
	traceSteps bool
	reply      chan outcome
}

type outcome struct {
	view  View
	steps []StepResult
	// unknown is the first key with no callback; presses stop there.
	unknown ui.Key
}

func (t *Toolkit) dispatch(ev event) outcome {
	for id, text := range ev.inputs {
		t.texts[id] = text
	}

	var out outcome
	for i, key := range ev.keys {
		fn, ok := t.callbacks[key]
		if !ok {
			out.unknown = key
			break
		}

		if !ev.traceSteps {
			fn(ev.ctx)
			continue
		}

		stepCtx, span := tracer.Start(ev.ctx, fmt.Sprintf("webui.sequence.step.%d.%s", i, key),
			trace.WithAttributes(
				attribute.Int("sequence.step.index", i),
				attribute.String("sequence.step.key", string(key)),
			),
		)
		fn(stepCtx)
		step := StepResult{
			Key:     string(key),
			Total:   t.texts[ui.TotalLabel],
			Current: t.texts[ui.CurrentLabel],
		}
		span.SetAttributes(
			attribute.String("sequence.step.total", step.Total),
			attribute.String("sequence.step.current", step.Current),
		)
		span.SetStatus(codes.Ok, "")
		span.End()
		out.steps = append(out.steps, step)
	}

	out.view = t.snapshot()
	return out
}

func (t *Toolkit) snapshot() View {
	categories := converter.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}

	colors := make(map[string]string, len(t.theme.Colors))
	for role, c := range t.theme.Colors {
		colors[string(role)] = c
	}

	history := make([]string, len(t.history))
	copy(history, t.history)

	return View{
		Total:   t.texts[ui.TotalLabel],
		Current: t.texts[ui.CurrentLabel],
		History: history,
		Converter: ConverterView{
			Category:   t.texts[ui.ConverterCategory],
			Input:      t.texts[ui.ConverterInput],
			Result:     t.texts[ui.ConverterResult],
			Categories: names,
		},
		Theme: ThemeView{Name: t.theme.Name, Colors: colors},
	}
}

// submit hands ev to the dispatch loop and waits for the outcome.
func (t *Toolkit) submit(ctx context.Context, ev event) (outcome, error) {
	select {
	case <-t.started:
	default:
		return outcome{}, ErrNotRunning
	}

	ev.ctx = ctx
	ev.inputs = maps.Clone(ev.inputs)
	ev.reply = make(chan outcome, 1)

	select {
	case t.events <- ev:
	case <-t.stopped:
		return outcome{}, ErrNotRunning
	case <-ctx.Done():
		return outcome{}, ctx.Err()
	}

	select {
	case out := <-ev.reply:
		return out, nil
	case <-ctx.Done():
		return outcome{}, ctx.Err()
	}
}
