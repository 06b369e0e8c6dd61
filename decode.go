package smjson

import (
	"fmt"
	"strconv"

	"github.com/alexevladgabriel/sm-json/container"
	"github.com/alexevladgabriel/sm-json/escape"
)

// Decode parses a JSON document into a container tree. The root must be
// an object or an array.
//
// On any failure the partially built tree, including already-attached
// children, is recursively cleaned up before the error is returned; a
// malformed document never yields a partial tree. The error is a
// *SyntaxError carrying the byte offset and wrapping one of the taxonomy
// sentinels.
func Decode(data []byte, optFns ...func(o *DecodeOptions)) (*container.Container, error) {
	opts := DefaultDecodeOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	d := &decoder{data: data, opts: opts}

	c, err := d.decodeContainer(0)
	if err != nil {
		return nil, err
	}

	// Trailing content is checked at the top level only; nested calls
	// leave whatever follows their closing bracket to the caller.
	d.skipWhitespace()
	if !d.eof() {
		c.Cleanup()
		return nil, d.fail(ErrTrailingData, "%q after top-level structure", d.data[d.pos])
	}
	return c, nil
}

// DecodeString is Decode for string input.
func DecodeString(s string, optFns ...func(o *DecodeOptions)) (*container.Container, error) {
	return Decode([]byte(s), optFns...)
}

// Valid reports whether data is a well-formed document for this codec.
func Valid(data []byte, optFns ...func(o *DecodeOptions)) bool {
	c, err := Decode(data, optFns...)
	if err != nil {
		return false
	}
	c.Cleanup()
	return true
}

// decoder carries the input buffer and the current byte offset through the
// recursive descent.
type decoder struct {
	data []byte
	pos  int
	opts DecodeOptions
}

func (d *decoder) eof() bool { return d.pos >= len(d.data) }

func (d *decoder) skipWhitespace() {
	for !d.eof() {
		switch d.data[d.pos] {
		case ' ', '\t', '\n', '\r':
			d.pos++
		default:
			return
		}
	}
}

func (d *decoder) fail(sentinel error, format string, args ...any) error {
	return &SyntaxError{
		Offset: d.pos,
		msg:    fmt.Sprintf(format, args...),
		cause:  sentinel,
	}
}

// isQuote reports whether b opens a string under the active options.
func (d *decoder) isQuote(b byte) bool {
	return b == '"' || (d.opts.SingleQuotes && b == '\'')
}

// readString consumes a quoted string starting at the current position
// and returns its raw (still escaped) contents.
func (d *decoder) readString(quote byte) (string, error) {
	i := d.pos + 1
	for i < len(d.data) {
		switch d.data[i] {
		case '\\':
			i += 2
		case quote:
			raw := string(d.data[d.pos+1 : i])
			d.pos = i + 1
			return raw, nil
		default:
			i++
		}
	}
	return "", d.fail(ErrUnexpectedEnd, "unterminated string")
}

func (d *decoder) decodeContainer(depth int) (*container.Container, error) {
	if d.opts.MaxDepth > 0 && depth >= d.opts.MaxDepth {
		return nil, d.fail(ErrMaxDepth, "nesting exceeds %d levels", d.opts.MaxDepth)
	}

	d.skipWhitespace()
	if d.eof() {
		return nil, d.fail(ErrUnexpectedEnd, "expected a structure")
	}

	var (
		c       *container.Container
		closing byte
	)
	switch d.data[d.pos] {
	case '{':
		c, closing = container.NewObject(), '}'
	case '[':
		c, closing = container.NewArray(), ']'
	default:
		return nil, d.fail(ErrExpectedStructure, "found %q", d.data[d.pos])
	}
	d.pos++

	// Tear down everything built at or below this call before
	// propagating a failure.
	abort := func(err error) (*container.Container, error) {
		c.Cleanup()
		return nil, err
	}

	d.skipWhitespace()
	if d.eof() {
		return abort(d.fail(ErrUnexpectedEnd, "unterminated %s", c.Variant()))
	}
	if d.data[d.pos] == closing {
		d.pos++
		return c, nil
	}

	for {
		d.skipWhitespace()
		if d.eof() {
			return abort(d.fail(ErrUnexpectedEnd, "unterminated %s", c.Variant()))
		}

		var key string
		if c.IsObject() {
			q := d.data[d.pos]
			if !d.isQuote(q) {
				return abort(d.fail(ErrExpectedKey, "found %q", q))
			}
			raw, err := d.readString(q)
			if err != nil {
				return abort(err)
			}
			key, err = escape.Unescape(raw)
			if err != nil {
				return abort(d.fail(ErrExpectedKey, "bad key escape: %v", err))
			}

			d.skipWhitespace()
			if d.eof() || d.data[d.pos] != ':' {
				return abort(d.fail(ErrExpectedColon, "after key %q", key))
			}
			d.pos++
			d.skipWhitespace()
		}

		if err := d.decodeValue(c, key, depth); err != nil {
			return abort(err)
		}

		d.skipWhitespace()
		if d.eof() {
			return abort(d.fail(ErrUnexpectedEnd, "unterminated %s", c.Variant()))
		}
		switch d.data[d.pos] {
		case ',':
			d.pos++
		case closing:
			d.pos++
			return c, nil
		default:
			return abort(d.fail(ErrUnexpectedChar, "%q between members", d.data[d.pos]))
		}
	}
}

// decodeValue parses one member value and attaches it to c under key
// (objects) or by append (arrays).
func (d *decoder) decodeValue(c *container.Container, key string, depth int) error {
	if d.eof() {
		return d.fail(ErrUnexpectedEnd, "expected a value")
	}

	b := d.data[d.pos]
	switch {
	case b == '{' || b == '[':
		child, err := d.decodeContainer(depth + 1)
		if err != nil {
			return err
		}
		if err := d.attachObject(c, key, child); err != nil {
			child.Cleanup()
			return err
		}
		return nil

	case d.isQuote(b):
		raw, err := d.readString(b)
		if err != nil {
			return err
		}
		s, err := escape.Unescape(raw)
		if err != nil {
			return d.fail(ErrUnknownLiteral, "bad string escape: %v", err)
		}
		if c.IsArray() {
			_, err = c.PushString(s)
			return err
		}
		return c.SetString(key, s)

	default:
		return d.decodeLiteral(c, key)
	}
}

func (d *decoder) attachObject(c *container.Container, key string, child *container.Container) error {
	if c.IsArray() {
		_, err := c.PushObject(child)
		return err
	}
	return c.SetObject(key, child)
}

// decodeLiteral scans forward to the next structural delimiter and
// classifies the token as integer, float, boolean or null.
func (d *decoder) decodeLiteral(c *container.Container, key string) error {
	start := d.pos
scan:
	for !d.eof() {
		switch d.data[d.pos] {
		case ',', '}', ']', ' ', '\t', '\n', '\r':
			break scan
		default:
			d.pos++
		}
	}

	tok := string(d.data[start:d.pos])
	literalErr := func() error {
		d.pos = start
		return d.fail(ErrUnknownLiteral, "%q", tok)
	}

	switch tok {
	case "true", "false":
		if c.IsArray() {
			_, err := c.PushBool(tok == "true")
			return err
		}
		return c.SetBool(key, tok == "true")
	case "null":
		if c.IsArray() {
			_, err := c.PushNull()
			return err
		}
		return c.SetNull(key)
	case "":
		return literalErr()
	}

	if isIntegerToken(tok) {
		i, err := strconv.ParseInt(tok, 10, 64)
		if err == nil {
			if c.IsArray() {
				_, err = c.PushInt(i)
				return err
			}
			return c.SetInt(key, i)
		}
		// Out of int64 range: fall through to the float path.
	} else if !isFloatToken(tok) {
		return literalErr()
	}

	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return literalErr()
	}
	if c.IsArray() {
		_, err = c.PushFloat(f)
		return err
	}
	return c.SetFloat(key, f)
}

// isIntegerToken reports whether tok is all digits with an optional
// leading minus.
func isIntegerToken(tok string) bool {
	if len(tok) == 0 {
		return false
	}
	digits := tok
	if tok[0] == '-' {
		digits = tok[1:]
	}
	if len(digits) == 0 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// isFloatToken reports whether tok is digits with exactly one decimal
// point and/or an exponent part.
func isFloatToken(tok string) bool {
	if len(tok) == 0 {
		return false
	}

	i := 0
	if tok[0] == '-' || tok[0] == '+' {
		i++
	}

	var digits, dots int
	for ; i < len(tok); i++ {
		switch b := tok[i]; {
		case b >= '0' && b <= '9':
			digits++
		case b == '.':
			dots++
			if dots > 1 {
				return false
			}
		case b == 'e' || b == 'E':
			if digits == 0 {
				return false
			}
			return isExponentToken(tok[i+1:])
		default:
			return false
		}
	}
	return digits > 0 && dots == 1
}

func isExponentToken(tok string) bool {
	if len(tok) == 0 {
		return false
	}
	i := 0
	if tok[0] == '-' || tok[0] == '+' {
		i++
	}
	if i == len(tok) {
		return false
	}
	for ; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}
