package webui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"calc-converter/internal/handlers"
	"calc-converter/internal/observability"
	"calc-converter/internal/ui"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the panel's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("webui")

// ---------------------------------------------------------------------------
// Handlers: single events
// ---------------------------------------------------------------------------

// GetView handles GET /calculator
func (t *Toolkit) GetView(w http.ResponseWriter, r *http.Request) {
	t.handleEvent(w, r, "view", event{})
}

// PressKey handles POST /calculator/keys/{key}
func (t *Toolkit) PressKey(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "key")
	key, ok := ui.KeyByLabel(label)
	if !ok {
		t.rejectUnknownKey(w, r, "press", label)
		return
	}
	t.handleEvent(w, r, "press", event{keys: []ui.Key{key}})
}

// ToggleTheme handles POST /theme/toggle
func (t *Toolkit) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	t.handleEvent(w, r, "toggle_theme", event{keys: []ui.Key{ui.KeyTheme}})
}

// Convert handles POST /converter. It fills the converter widgets and
// presses the convert button in one dispatch.
func (t *Toolkit) Convert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		span := trace.SpanFromContext(ctx)
		observability.RecordError(ctx, span, logger, errorCounter, "convert", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	inputs := map[ui.WidgetID]string{ui.ConverterInput: req.Input}
	if req.Category != "" {
		inputs[ui.ConverterCategory] = req.Category
	}
	t.handleEvent(w, r, "convert", event{inputs: inputs, keys: []ui.Key{ui.KeyConvert}})
}

// GetHistory handles GET /calculator/history
func (t *Toolkit) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "webui.history")
	defer span.End()

	out, err := t.submit(ctx, event{})
	if err != nil {
		t.unavailable(ctx, span, logger, w, "history", err)
		return
	}

	span.SetAttributes(attribute.Int("history.length", len(out.view.History)))
	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, HistoryResponse{History: out.view.History})
}

// handleEvent is the shared implementation for single-event endpoints: child
// span, dispatch, request metrics, trace-correlated log, JSON view.
func (t *Toolkit) handleEvent(w http.ResponseWriter, r *http.Request, opName string, ev event) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("webui.%s", opName),
		trace.WithAttributes(
			attribute.String("webui.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	out, err := t.submit(ctx, ev)
	if err != nil {
		t.unavailable(ctx, span, logger, w, opName, err)
		return
	}
	if out.unknown != "" {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "unknown key", fmt.Errorf("no callback bound for %q", out.unknown), http.StatusNotFound, w)
		return
	}

	requestCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", opName)))
	span.SetAttributes(
		attribute.String("calculator.total", out.view.Total),
		attribute.String("calculator.current", out.view.Current),
	)
	span.SetStatus(codes.Ok, "")

	logger.Debug("panel event handled",
		zap.String("operation", opName),
		zap.String("total", out.view.Total),
		zap.String("current", out.view.Current),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, out.view)
}

// ---------------------------------------------------------------------------
// Handler: key sequences, one child span per step
// ---------------------------------------------------------------------------

// PressSequence handles POST /calculator/sequence. Every key is pressed in
// order within one dispatch.
func (t *Toolkit) PressSequence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "webui.sequence",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "sequence", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Keys) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "sequence", "no keys provided", errors.New("keys array is empty"), http.StatusBadRequest, w)
		return
	}

	keys := make([]ui.Key, 0, len(req.Keys))
	for i, label := range req.Keys {
		key, ok := ui.KeyByLabel(label)
		if !ok {
			observability.RecordError(ctx, span, logger, errorCounter, "sequence", fmt.Sprintf("unknown key at step %d", i), fmt.Errorf("unknown key %q", label), http.StatusNotFound, w)
			return
		}
		keys = append(keys, key)
	}

	span.SetAttributes(attribute.Int("sequence.steps_count", len(keys)))

	out, err := t.submit(ctx, event{keys: keys, traceSteps: true})
	if err != nil {
		t.unavailable(ctx, span, logger, w, "sequence", err)
		return
	}
	if out.unknown != "" {
		observability.RecordError(ctx, span, logger, errorCounter, "sequence", "unknown key", fmt.Errorf("no callback bound for %q", out.unknown), http.StatusNotFound, w)
		return
	}

	requestCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "sequence")))
	span.AddEvent("sequence.complete", trace.WithAttributes(
		attribute.String("current", out.view.Current),
		attribute.Int("total_steps", len(out.steps)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("key sequence handled",
		zap.Int("steps", len(out.steps)),
		zap.String("current", out.view.Current),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, SequenceResponse{Steps: out.steps, View: out.view})
}

func (t *Toolkit) rejectUnknownKey(w http.ResponseWriter, r *http.Request, opName, label string) {
	ctx := r.Context()
	span := trace.SpanFromContext(ctx)
	observability.RecordError(ctx, span, observability.LoggerWithTrace(ctx), errorCounter, opName, "unknown key", fmt.Errorf("unknown key %q", label), http.StatusNotFound, w)
}

func (t *Toolkit) unavailable(ctx context.Context, span trace.Span, logger *zap.Logger, w http.ResponseWriter, opName string, err error) {
	observability.RecordError(ctx, span, logger, errorCounter, opName, "calculator unavailable", err, http.StatusServiceUnavailable, w)
}
