package expr

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "7+3", want: "10"},
		{src: "2+3*4", want: "14"},
		{src: "(2+3)*4", want: "20"},
		{src: "10-4-3", want: "3"},
		{src: "8/2", want: "4.0"},
		{src: "1/2", want: "0.5"},
		{src: "7/2*2", want: "7.0"},
		{src: "0.1+0.2", want: "0.30000000000000004"},
		{src: "1.5*2", want: "3.0"},
		{src: "-3", want: "-3"},
		{src: "5*-3", want: "-15"},
		{src: "5--3", want: "8"},
		{src: "+4", want: "4"},
		{src: ".5+.5", want: "1.0"},
		{src: "5.", want: "5.0"},
		{src: "00", want: "0"},
		{src: "1e3", want: "1000.0"},
		{src: "1e16", want: "1e+16"},
		{src: "0.00001", want: "1e-05"},
		{src: "0.0001", want: "0.0001"},
		{src: "99999999999*99999999999", want: "9999999999800000000001"},
		{src: " 1 + 2 ", want: "3"},
	}

	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Eval(tc.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got.String())
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		src  string
		want error
	}{
		{src: "", want: ErrEmpty},
		{src: "   ", want: ErrEmpty},
		{src: "5+", want: ErrSyntax},
		{src: "5+*3", want: ErrSyntax},
		{src: "5**3", want: ErrSyntax},
		{src: "(1+2", want: ErrSyntax},
		{src: "1+2)", want: ErrSyntax},
		{src: "1.2.3", want: ErrSyntax},
		{src: ".", want: ErrSyntax},
		{src: "07", want: ErrSyntax},
		{src: "1e", want: ErrSyntax},
		{src: "Error5", want: ErrSyntax},
		{src: "inf", want: ErrSyntax},
		{src: "1/0", want: ErrDivisionByZero},
		{src: "1/0.0", want: ErrDivisionByZero},
		{src: "1/(2-2)", want: ErrDivisionByZero},
	}

	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			_, err := Eval(tc.src)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := Eval("12+x")

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %T (%v)", err, err)
	}
	if se.Pos != 3 {
		t.Fatalf("expected position 3, got %d", se.Pos)
	}
}

func TestSquareAndSqrt(t *testing.T) {
	v, err := Eval("4")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}

	sq, err := Square(v)
	if err != nil {
		t.Fatalf("square: %v", err)
	}
	if sq.String() != "16" {
		t.Fatalf("expected 16, got %s", sq)
	}

	root, err := Sqrt(sq)
	if err != nil {
		t.Fatalf("sqrt: %v", err)
	}
	if root.String() != "4.0" {
		t.Fatalf("expected 4.0, got %s", root)
	}

	if _, err := Sqrt(Int(-4)); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected ErrDomain, got %v", err)
	}

	if _, err := Square(Float(1e200)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}

	half, _ := Square(Float(1.5))
	if half.String() != "2.25" {
		t.Fatalf("expected 2.25, got %s", half)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0.0"},
		{in: 1024, want: "1024.0"},
		{in: -2.5, want: "-2.5"},
		{in: 1e15, want: "1000000000000000.0"},
		{in: 1e16, want: "1e+16"},
		{in: 1.5e-5, want: "1.5e-05"},
		{in: math.Inf(1), want: "inf"},
		{in: math.Inf(-1), want: "-inf"},
		{in: math.NaN(), want: "nan"},
	}

	for _, tc := range tests {
		if got := FormatFloat(tc.in); got != tc.want {
			t.Fatalf("FormatFloat(%v): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestFloat64Overflow(t *testing.T) {
	v, err := Eval("1" + strings.Repeat("0", 400))
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if _, err := v.Float64(); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if _, err := Sqrt(v); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow from Sqrt, got %v", err)
	}
}
