// Package converter implements the unit-conversion panel.
package converter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"calc-converter/internal/expr"
)

// Category is a conversion as labelled in the panel's drop-down.
type Category string

const (
	Data  Category = "Data (MB/GB)"
	Speed Category = "Speed (km/h → m/s)"
	Temp  Category = "Temp (C → F)"
	Area  Category = "Area (m² → ft²)"
)

// DefaultCategory is selected when the panel opens.
const DefaultCategory = Data

const (
	// InitialResult is shown before the first conversion.
	InitialResult = "Result: -"
	resultPrefix  = "Result: "
	unknown       = "Unknown conversion"
	invalidInput  = "Invalid input"
)

// ErrParse is returned by ParseValue for non-numeric input.
var ErrParse = errors.New("invalid input")

type conversion struct {
	apply func(float64) float64
	// format receives the echoed input and the rounded result.
	format string
}

var conversions = map[Category]conversion{
	Data: {
		apply:  func(v float64) float64 { return v / 1024 },
		format: "%s MB = %s GB",
	},
	Speed: {
		apply:  func(v float64) float64 { return v / 3.6 },
		format: "%s km/h = %s m/s",
	},
	Temp: {
		apply:  func(v float64) float64 { return v*9/5 + 32 },
		format: "%s°C = %s°F",
	},
	Area: {
		apply:  func(v float64) float64 { return v * 10.7639 },
		format: "%s m² = %s ft²",
	},
}

// Known reports whether c has a conversion formula.
func (c Category) Known() bool {
	_, ok := conversions[c]
	return ok
}

// Categories lists the conversions in panel order.
func Categories() []Category {
	return []Category{Data, Speed, Temp, Area}
}

// Request is one submitted conversion.
type Request struct {
	Category Category
	Value    float64
}

// Convert formats the conversion of value. Unrecognised categories yield
// "Unknown conversion".
func Convert(c Category, value float64) string {
	conv, ok := conversions[c]
	if !ok {
		return unknown
	}
	return fmt.Sprintf(conv.format, expr.FormatFloat(value), fixed2(conv.apply(value)))
}

// ParseValue parses the raw input field.
func ParseValue(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrParse, raw)
	}
	return v, nil
}

// Result is the text for the result label: the conversion of raw, or
// "Result: Invalid input" when raw does not parse.
func Result(c Category, raw string) string {
	v, err := ParseValue(raw)
	if err != nil {
		return resultPrefix + invalidInput
	}
	return resultPrefix + Convert(c, v)
}

// Run converts a parsed request.
func (r Request) Run() string {
	return resultPrefix + Convert(r.Category, r.Value)
}

func fixed2(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	switch s {
	case "+Inf":
		return "inf"
	case "-Inf":
		return "-inf"
	case "NaN":
		return "nan"
	}
	return s
}
