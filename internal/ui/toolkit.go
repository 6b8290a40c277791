// Package ui wires the calculator engine and the unit converter to a GUI
// toolkit. The toolkit only has to deliver key presses and show text; all
// state lives here and is pushed out by a single render step after every
// press.
package ui

import (
	"context"

	"calc-converter/internal/theme"
)

// WidgetID names a text widget the App reads or writes.
type WidgetID string

const (
	TotalLabel        WidgetID = "total"
	CurrentLabel      WidgetID = "current"
	ConverterInput    WidgetID = "converter_input"
	ConverterCategory WidgetID = "converter_category"
	ConverterResult   WidgetID = "converter_result"
)

// Callback handles one key press. ctx carries whatever the toolkit has for
// the press (request ID, trace span, cancellation).
type Callback func(ctx context.Context)

// Toolkit is the surface the App needs from a GUI. Implementations invoke
// callbacks from a single goroutine, one at a time.
type Toolkit interface {
	OnPress(key Key, fn Callback)
	SetText(id WidgetID, text string)
	GetText(id WidgetID) string
	AppendHistoryRow(row string)
	ApplyTheme(t theme.Theme)
	// Run blocks dispatching presses until ctx is done or the toolkit is
	// closed by the user.
	Run(ctx context.Context) error
}
