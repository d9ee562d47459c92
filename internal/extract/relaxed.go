package extract

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// maxLiteralDepth bounds nesting so a hostile page cannot exhaust the stack.
const maxLiteralDepth = 128

// parseRelaxed parses a JavaScript object literal that is not valid JSON.
// It accepts single, double and backtick quoted strings, unquoted and
// numeric keys, trailing commas, comments, hex numbers and undefined.
// Nothing is evaluated: expressions, calls and template interpolation are
// rejected.
//
// Results use the same types as encoding/json: map[string]any, []any,
// string, float64, bool and nil.
func parseRelaxed(src string) (any, error) {
	p := &relaxedParser{src: src}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q after value", p.src[p.pos])
	}
	return v, nil
}

type relaxedParser struct {
	src   string
	pos   int
	depth int
}

func (p *relaxedParser) errorf(format string, args ...any) error {
	return fmt.Errorf("offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *relaxedParser) eof() bool { return p.pos >= len(p.src) }

// consume advances past c if it is the next byte.
func (p *relaxedParser) consume(c byte) bool {
	if !p.eof() && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// skipSpace skips whitespace, line comments and block comments.
func (p *relaxedParser) skipSpace() {
	for !p.eof() {
		rest := p.src[p.pos:]
		switch {
		case rest[0] == ' ', rest[0] == '\t', rest[0] == '\n', rest[0] == '\r', rest[0] == '\f', rest[0] == '\v':
			p.pos++
		case strings.HasPrefix(rest, "\u00a0"), strings.HasPrefix(rest, "\ufeff"):
			_, size := utf8.DecodeRuneInString(rest)
			p.pos += size
		case strings.HasPrefix(rest, "//"):
			end := strings.IndexByte(rest, '\n')
			if end < 0 {
				p.pos = len(p.src)
			} else {
				p.pos += end + 1
			}
		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				p.pos = len(p.src)
			} else {
				p.pos += end + 4
			}
		default:
			return
		}
	}
}

func (p *relaxedParser) value() (any, error) {
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf("unexpected end of input")
	}

	c := p.src[p.pos]
	switch {
	case c == '{':
		return p.object()
	case c == '[':
		return p.array()
	case c == '"' || c == '\'' || c == '`':
		return p.str()
	case c == '-' || c == '+' || c == '.' || isDigit(c):
		return p.number()
	case isIdentStart(c):
		start := p.pos
		switch word := p.ident(); word {
		case "true":
			return true, nil
		case "false":
			return false, nil
		case "null", "undefined":
			return nil, nil
		default:
			p.pos = start
			return nil, p.errorf("unexpected identifier %q", word)
		}
	}
	return nil, p.errorf("unexpected character %q", c)
}

func (p *relaxedParser) enter() error {
	p.depth++
	if p.depth > maxLiteralDepth {
		return p.errorf("literal nested deeper than %d levels", maxLiteralDepth)
	}
	return nil
}

func (p *relaxedParser) object() (any, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	p.pos++ // {
	obj := make(map[string]any)
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated object")
		}
		if p.consume('}') {
			return obj, nil
		}

		key, err := p.key()
		if err != nil {
			return nil, err
		}

		p.skipSpace()
		if !p.consume(':') {
			return nil, p.errorf("expected ':' after key %q", key)
		}

		v, err := p.value()
		if err != nil {
			return nil, err
		}
		obj[key] = v

		p.skipSpace()
		if p.consume(',') {
			continue
		}
		if p.consume('}') {
			return obj, nil
		}
		return nil, p.errorf("expected ',' or '}' in object")
	}
}

func (p *relaxedParser) array() (any, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	p.pos++ // [
	arr := make([]any, 0)
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated array")
		}
		if p.consume(']') {
			return arr, nil
		}

		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		p.skipSpace()
		if p.consume(',') {
			continue
		}
		if p.consume(']') {
			return arr, nil
		}
		return nil, p.errorf("expected ',' or ']' in array")
	}
}

// key reads an object key: a quoted string, an identifier or a number.
func (p *relaxedParser) key() (string, error) {
	c := p.src[p.pos]
	switch {
	case c == '"' || c == '\'' || c == '`':
		v, err := p.str()
		if err != nil {
			return "", err
		}
		return v.(string), nil
	case isIdentStart(c):
		return p.ident(), nil
	case isDigit(c):
		start := p.pos
		if _, err := p.number(); err != nil {
			return "", err
		}
		return p.src[start:p.pos], nil
	}
	return "", p.errorf("unexpected %q where an object key was expected", c)
}

func (p *relaxedParser) ident() string {
	start := p.pos
	for !p.eof() && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *relaxedParser) str() (any, error) {
	quote := p.src[p.pos]
	p.pos++

	var b strings.Builder
	for {
		if p.eof() {
			return nil, p.errorf("unterminated string")
		}
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\\':
			p.pos++
			if err := p.escape(&b); err != nil {
				return nil, err
			}
		case quote == '`' && c == '$' && strings.HasPrefix(p.src[p.pos:], "${"):
			return nil, p.errorf("template interpolation is not supported")
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
}

// escape decodes one backslash escape; p.pos is just past the backslash.
func (p *relaxedParser) escape(b *strings.Builder) error {
	if p.eof() {
		return p.errorf("unterminated escape")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		b.WriteByte(0)
	case '\n':
		// line continuation
	case '\r':
		p.consume('\n')
	case 'x':
		r, err := p.hex(2)
		if err != nil {
			return err
		}
		b.WriteRune(r)
	case 'u':
		r, err := p.unicodeEscape()
		if err != nil {
			return err
		}
		b.WriteRune(r)
	default:
		b.WriteByte(c)
	}
	return nil
}

// unicodeEscape decodes \uXXXX, \u{X...} and UTF-16 surrogate pairs.
func (p *relaxedParser) unicodeEscape() (rune, error) {
	if p.consume('{') {
		end := strings.IndexByte(p.src[p.pos:], '}')
		if end < 1 || end > 6 {
			return 0, p.errorf("invalid \\u{} escape")
		}
		n, err := strconv.ParseUint(p.src[p.pos:p.pos+end], 16, 32)
		if err != nil || n > utf8.MaxRune {
			return 0, p.errorf("invalid \\u{} escape")
		}
		p.pos += end + 1
		return rune(n), nil
	}

	r, err := p.hex(4)
	if err != nil {
		return 0, err
	}
	if utf16.IsSurrogate(r) && strings.HasPrefix(p.src[p.pos:], `\u`) {
		save := p.pos
		p.pos += 2
		if r2, err := p.hex(4); err == nil {
			if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
				return combined, nil
			}
		}
		p.pos = save
	}
	return r, nil
}

func (p *relaxedParser) hex(n int) (rune, error) {
	if p.pos+n > len(p.src) {
		return 0, p.errorf("short hex escape")
	}
	v, err := strconv.ParseUint(p.src[p.pos:p.pos+n], 16, 32)
	if err != nil {
		return 0, p.errorf("invalid hex escape %q", p.src[p.pos:p.pos+n])
	}
	p.pos += n
	return rune(v), nil
}

func (p *relaxedParser) number() (any, error) {
	start := p.pos
	neg := false
	if c := p.src[p.pos]; c == '+' || c == '-' {
		neg = c == '-'
		p.pos++
	}

	if p.pos+1 < len(p.src) && p.src[p.pos] == '0' && (p.src[p.pos+1]|0x20) == 'x' {
		p.pos += 2
		digits := p.pos
		for !p.eof() && isHexDigit(p.src[p.pos]) {
			p.pos++
		}
		n, err := strconv.ParseUint(p.src[digits:p.pos], 16, 64)
		if err != nil {
			return nil, p.errorf("invalid hex number %q", p.src[start:p.pos])
		}
		v := float64(n)
		if neg {
			v = -v
		}
		return v, nil
	}

	for !p.eof() && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.consume('.') {
		for !p.eof() && isDigit(p.src[p.pos]) {
			p.pos++
		}
	}
	if !p.eof() && (p.src[p.pos]|0x20) == 'e' {
		p.pos++
		if !p.eof() && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		for !p.eof() && isDigit(p.src[p.pos]) {
			p.pos++
		}
	}

	text := p.src[start:p.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorf("invalid number %q", text)
	}
	return v, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c|0x20) >= 'a' && (c|0x20) <= 'f'
}

func isIdentStart(c byte) bool {
	return (c|0x20) >= 'a' && (c|0x20) <= 'z' || c == '_' || c == '$' || c >= utf8.RuneSelf
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
