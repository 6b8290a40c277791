package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"calc-converter/internal/calculator"
	"calc-converter/internal/converter"
	"calc-converter/internal/expr"
	"calc-converter/internal/observability"
	"calc-converter/internal/theme"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("calculator")

// ErrUnknownCategory is reported when the converter drop-down holds a label
// with no formula. The result label still shows "Unknown conversion".
var ErrUnknownCategory = errors.New("unknown conversion category")

// App owns the calculator session: engine, theme and the converter panel.
type App struct {
	tk       Toolkit
	engine   *calculator.Engine
	palettes theme.Palettes
	theme    theme.Theme
	// shown counts history entries already pushed to the toolkit.
	shown int
}

type Option func(*App)

// WithPalettes replaces the built-in light/dark palettes.
func WithPalettes(p theme.Palettes) Option {
	return func(a *App) {
		a.palettes = p
		a.theme = p.Light
	}
}

// WithTheme selects the starting palette by name. Unknown names keep light.
func WithTheme(name string) Option {
	return func(a *App) {
		if t, err := a.palettes.ByName(name); err == nil {
			a.theme = t
		}
	}
}

// New binds every key in Keys to tk and initialises the converter widgets.
func New(tk Toolkit, opts ...Option) *App {
	p := theme.Defaults()
	a := &App{
		tk:       tk,
		engine:   calculator.NewEngine(),
		palettes: p,
		theme:    p.Light,
	}
	for _, opt := range opts {
		opt(a)
	}

	for i := 0; i <= 9; i++ {
		digit := strconv.Itoa(i)
		a.bind(Key(digit), "append_token", func(context.Context) error {
			return a.engine.AppendToken(digit)
		})
	}
	a.bind(KeyDot, "append_token", func(context.Context) error {
		return a.engine.AppendToken(".")
	})

	operators := map[Key]calculator.Operator{
		KeyAdd:      calculator.Add,
		KeySubtract: calculator.Subtract,
		KeyMultiply: calculator.Multiply,
		KeyDivide:   calculator.Divide,
	}
	for key, op := range operators {
		a.bind(key, "append_operator", func(context.Context) error {
			return a.engine.AppendOperator(op)
		})
	}

	a.bind(KeyClear, "clear", func(context.Context) error {
		a.engine.Clear()
		return nil
	})
	a.bind(KeySquare, "square", func(context.Context) error {
		return a.engine.ApplyUnary(calculator.Square)
	})
	a.bind(KeySqrt, "sqrt", func(context.Context) error {
		return a.engine.ApplyUnary(calculator.Sqrt)
	})
	a.bind(KeyEquals, "evaluate", a.evaluate)
	a.bind(KeyTheme, "toggle_theme", func(context.Context) error {
		a.theme = a.palettes.Toggle(a.theme)
		return nil
	})
	a.bind(KeyConvert, "convert", a.convert)

	tk.SetText(ConverterCategory, string(converter.DefaultCategory))
	tk.SetText(ConverterResult, converter.InitialResult)

	return a
}

// Run renders the initial frame and hands control to the toolkit.
func (a *App) Run(ctx context.Context) error {
	a.render()
	return a.tk.Run(ctx)
}

// Theme returns the active palette.
func (a *App) Theme() theme.Theme {
	return a.theme
}

// bind registers fn for key. Every press runs in its own span, is counted
// and timed, and ends with a render.
func (a *App) bind(key Key, opName string, fn func(context.Context) error) {
	a.tk.OnPress(key, func(ctx context.Context) {
		ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
			trace.WithAttributes(
				attribute.String("calculator.key", string(key)),
				attribute.String("calculator.operation", opName),
			),
		)
		defer span.End()

		start := time.Now()
		err := fn(ctx)
		elapsed := float64(time.Since(start).Microseconds()) / 1000.0

		attrs := metric.WithAttributes(
			attribute.String("key", string(key)),
			attribute.String("operation", opName),
		)
		keyCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, elapsed, attrs)

		span.SetAttributes(
			attribute.String("calculator.total", a.engine.Total()),
			attribute.String("calculator.current", a.engine.Current()),
		)

		if err != nil {
			a.fail(ctx, span, key, opName, err)
		} else {
			span.SetStatus(codes.Ok, "")
		}

		a.render()
	})
}

// fail records a failed operation. The display already shows the sentinel;
// this only makes the failure visible to operators.
func (a *App) fail(ctx context.Context, span trace.Span, key Key, opName string, err error) {
	kind := errorKind(err)

	span.RecordError(err)
	span.SetStatus(codes.Error, kind)

	errorCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("kind", kind),
	))

	observability.LoggerWithTrace(ctx).Warn("calculator operation failed",
		zap.String("key", string(key)),
		zap.String("operation", opName),
		zap.String("kind", kind),
		zap.Error(err),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)
}

func (a *App) evaluate(ctx context.Context) error {
	entry, err := a.engine.Evaluate()
	if err != nil {
		return err
	}

	historyCounter.Add(ctx, 1)
	if f, perr := strconv.ParseFloat(a.engine.Current(), 64); perr == nil {
		resultGauge.Record(ctx, f)
	}
	trace.SpanFromContext(ctx).AddEvent("history.append", trace.WithAttributes(
		attribute.String("entry", string(entry)),
	))

	observability.LoggerWithTrace(ctx).Info("expression evaluated",
		zap.String("entry", string(entry)),
		zap.Int("history_len", a.engine.History().Len()),
	)
	return nil
}

func (a *App) convert(ctx context.Context) error {
	raw := a.tk.GetText(ConverterInput)
	category := converter.Category(a.tk.GetText(ConverterCategory))

	a.tk.SetText(ConverterResult, converter.Result(category, raw))

	outcome := "ok"
	var err error
	if _, perr := converter.ParseValue(raw); perr != nil {
		outcome, err = "invalid_input", perr
	} else if !category.Known() {
		outcome, err = "unknown_category", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	conversionCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", string(category)),
		attribute.String("outcome", outcome),
	))
	return err
}

// render pushes engine state to the toolkit: both expression labels, any
// history rows not shown yet, and the palette.
func (a *App) render() {
	a.tk.SetText(TotalLabel, a.engine.Total())
	a.tk.SetText(CurrentLabel, a.engine.Display())

	for _, row := range a.engine.History().Since(a.shown) {
		a.tk.AppendHistoryRow(string(row))
		a.shown++
	}

	a.tk.ApplyTheme(a.theme)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, expr.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, expr.ErrEmpty):
		return "empty"
	case errors.Is(err, expr.ErrSyntax):
		return "syntax"
	case errors.Is(err, expr.ErrDomain):
		return "domain"
	case errors.Is(err, expr.ErrOverflow):
		return "overflow"
	case errors.Is(err, converter.ErrParse):
		return "invalid_input"
	case errors.Is(err, ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(err, calculator.ErrInvalidToken), errors.Is(err, calculator.ErrInvalidOperator):
		return "invalid_key"
	}
	return "other"
}
