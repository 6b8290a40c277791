package expr

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Value is a numeric result. Integers are exact and unbounded; anything that
// passed through a float literal, a division or a square root is a float64.
type Value struct {
	i *big.Int
	f float64
}

// Int returns an exact integer value.
func Int(n int64) Value {
	return Value{i: big.NewInt(n)}
}

// Float returns a floating-point value.
func Float(f float64) Value {
	return Value{f: f}
}

// IsInt reports whether v holds an exact integer.
func (v Value) IsInt() bool {
	return v.i != nil
}

// Float64 converts v to a float64. Integers too large for a float64 fail with
// ErrOverflow.
func (v Value) Float64() (float64, error) {
	if v.i == nil {
		return v.f, nil
	}
	f, _ := new(big.Float).SetInt(v.i).Float64()
	if math.IsInf(f, 0) {
		return 0, ErrOverflow
	}
	return f, nil
}

// String formats v the way the display shows it: integers as plain digits,
// floats via FormatFloat.
func (v Value) String() string {
	if v.i != nil {
		return v.i.String()
	}
	return FormatFloat(v.f)
}

// FormatFloat renders f in shortest round-trip form. Integral values keep a
// trailing ".0", and exponent form is used once the decimal exponent drops
// below -4 or reaches 16.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func (v Value) neg() Value {
	if v.i != nil {
		return Value{i: new(big.Int).Neg(v.i)}
	}
	return Value{f: -v.f}
}

// floats converts both operands for mixed arithmetic.
func floats(a, b Value) (float64, float64, error) {
	x, err := a.Float64()
	if err != nil {
		return 0, 0, err
	}
	y, err := b.Float64()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func add(a, b Value) (Value, error) {
	if a.i != nil && b.i != nil {
		return Value{i: new(big.Int).Add(a.i, b.i)}, nil
	}
	x, y, err := floats(a, b)
	if err != nil {
		return Value{}, err
	}
	return Float(x + y), nil
}

func sub(a, b Value) (Value, error) {
	if a.i != nil && b.i != nil {
		return Value{i: new(big.Int).Sub(a.i, b.i)}, nil
	}
	x, y, err := floats(a, b)
	if err != nil {
		return Value{}, err
	}
	return Float(x - y), nil
}

func mul(a, b Value) (Value, error) {
	if a.i != nil && b.i != nil {
		return Value{i: new(big.Int).Mul(a.i, b.i)}, nil
	}
	x, y, err := floats(a, b)
	if err != nil {
		return Value{}, err
	}
	return Float(x * y), nil
}

// div is true division: the result is always a float.
func div(a, b Value) (Value, error) {
	if b.isZero() {
		return Value{}, ErrDivisionByZero
	}
	if a.i != nil && b.i != nil {
		q, _ := new(big.Rat).SetFrac(a.i, b.i).Float64()
		if math.IsInf(q, 0) {
			return Value{}, ErrOverflow
		}
		return Float(q), nil
	}
	x, y, err := floats(a, b)
	if err != nil {
		return Value{}, err
	}
	return Float(x / y), nil
}

func (v Value) isZero() bool {
	if v.i != nil {
		return v.i.Sign() == 0
	}
	return v.f == 0
}

// Square returns v*v. Integers stay exact; a float result that overflows is
// reported as ErrOverflow rather than an infinity.
func Square(v Value) (Value, error) {
	if v.i != nil {
		return Value{i: new(big.Int).Mul(v.i, v.i)}, nil
	}
	r := v.f * v.f
	if math.IsInf(r, 0) && !math.IsInf(v.f, 0) {
		return Value{}, ErrOverflow
	}
	return Float(r), nil
}

// Sqrt returns the real square root of v as a float. Negative operands fail
// with ErrDomain.
func Sqrt(v Value) (Value, error) {
	f, err := v.Float64()
	if err != nil {
		return Value{}, err
	}
	if f < 0 {
		return Value{}, ErrDomain
	}
	return Float(math.Sqrt(f)), nil
}
