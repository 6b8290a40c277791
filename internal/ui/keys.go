package ui

import "strings"

// Key identifies a logical button. Digit keys use the digit itself.
type Key string

const (
	Key0        Key = "0"
	Key1        Key = "1"
	Key2        Key = "2"
	Key3        Key = "3"
	Key4        Key = "4"
	Key5        Key = "5"
	Key6        Key = "6"
	Key7        Key = "7"
	Key8        Key = "8"
	Key9        Key = "9"
	KeyDot      Key = "dot"
	KeyAdd      Key = "add"
	KeySubtract Key = "subtract"
	KeyMultiply Key = "multiply"
	KeyDivide   Key = "divide"
	KeyClear    Key = "clear"
	KeySquare   Key = "square"
	KeySqrt     Key = "sqrt"
	KeyEquals   Key = "equals"
	KeyTheme    Key = "theme"
	KeyConvert  Key = "convert"
)

// Keys lists every key the App binds.
func Keys() []Key {
	return []Key{
		Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9,
		KeyDot, KeyAdd, KeySubtract, KeyMultiply, KeyDivide,
		KeyClear, KeySquare, KeySqrt, KeyEquals, KeyTheme, KeyConvert,
	}
}

// labels maps button captions and their ASCII spellings to keys.
var labels = map[string]Key{
	".":            KeyDot,
	"+":            KeyAdd,
	"-":            KeySubtract,
	"*":            KeyMultiply,
	"×":            KeyMultiply,
	"/":            KeyDivide,
	"÷":            KeyDivide,
	"c":            KeyClear,
	"x²":           KeySquare,
	"x^2":          KeySquare,
	"√x":           KeySqrt,
	"=":            KeyEquals,
	"toggle theme": KeyTheme,
}

// KeyByLabel resolves a caption ("×", "√x", "C"), an ASCII alias or a key
// name ("multiply") to a key.
func KeyByLabel(label string) (Key, bool) {
	s := strings.ToLower(strings.TrimSpace(label))
	if k, ok := labels[s]; ok {
		return k, true
	}
	for _, k := range Keys() {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}
