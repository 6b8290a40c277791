package expr

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

var kindNames = map[tokenKind]string{
	tokEOF:    "end of input",
	tokNumber: "number",
	tokPlus:   "'+'",
	tokMinus:  "'-'",
	tokStar:   "'*'",
	tokSlash:  "'/'",
	tokLParen: "'('",
	tokRParen: "')'",
}

func (k tokenKind) String() string {
	return kindNames[k]
}

var punct = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'(': tokLParen,
	')': tokRParen,
}

type token struct {
	kind tokenKind
	pos  int
	text string
	// isFloat is set for number literals with a fraction or exponent.
	isFloat bool
}

type lexer struct {
	src string
	pos int
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	if k, ok := punct[c]; ok {
		l.pos++
		return token{kind: k, pos: start, text: string(c)}, nil
	}

	if isDigit(c) || c == '.' {
		return l.number()
	}

	return token{}, &SyntaxError{Pos: start, Msg: "unexpected character " + quoteRune(l.src[start:])}
}

// number scans digits [ '.' digits ] [ ('e'|'E') [sign] digits ].
func (l *lexer) number() (token, error) {
	start := l.pos
	intDigits := l.digits()
	isFloat := false

	fracDigits := 0
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		isFloat = true
		l.pos++
		fracDigits = l.digits()
	}
	if intDigits == 0 && fracDigits == 0 {
		return token{}, &SyntaxError{Pos: start, Msg: "malformed number"}
	}

	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		isFloat = true
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.digits() == 0 {
			return token{}, &SyntaxError{Pos: start, Msg: "malformed exponent"}
		}
	}

	text := l.src[start:l.pos]
	if l.pos < len(l.src) && (l.src[l.pos] == '.' || isDigit(l.src[l.pos])) {
		return token{}, &SyntaxError{Pos: l.pos, Msg: "malformed number"}
	}
	if !isFloat && len(text) > 1 && text[0] == '0' && !allZero(text) {
		return token{}, &SyntaxError{Pos: start, Msg: "leading zeros in integer literal"}
	}

	return token{kind: tokNumber, pos: start, text: text, isFloat: isFloat}, nil
}

func (l *lexer) digits() int {
	n := 0
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
		n++
	}
	return n
}

func allZero(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

func quoteRune(s string) string {
	for _, r := range s {
		return "'" + string(r) + "'"
	}
	return "''"
}
