package smjson

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexevladgabriel/sm-json/container"
	"github.com/alexevladgabriel/sm-json/escape"
)

// Encode serializes the document tree rooted at c to JSON. Hidden entries
// are skipped; nil container references serialize as null.
func Encode(c *container.Container, optFns ...func(o *EncodeOptions)) ([]byte, error) {
	opts := DefaultEncodeOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	e := &encoder{opts: opts}
	if err := e.encodeContainer(c, 0); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// EncodeString is Encode returning a string.
func EncodeString(c *container.Container, optFns ...func(o *EncodeOptions)) (string, error) {
	b, err := Encode(c, optFns...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type encoder struct {
	opts EncodeOptions
	buf  bytes.Buffer
}

func (e *encoder) indent(depth int) {
	if !e.opts.Pretty {
		return
	}
	e.buf.WriteString(e.opts.Newline)
	for i := 0; i < depth; i++ {
		e.buf.WriteString(e.opts.Indent)
	}
}

func (e *encoder) writeString(s string) error {
	escaped, err := escape.Escape(s)
	if err != nil {
		return err
	}
	e.buf.WriteByte('"')
	e.buf.WriteString(escaped)
	e.buf.WriteByte('"')
	return nil
}

// writeFloat emits the float with trailing zeros trimmed but never past
// one digit after the decimal point: 1.50000 encodes as 1.5, 2.0 stays
// 2.0.
func (e *encoder) writeFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v", ErrNonFiniteFloat, f)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	e.buf.WriteString(s)
	return nil
}

func (e *encoder) encodeContainer(c *container.Container, depth int) error {
	open, closing := byte('{'), byte('}')
	if c.IsArray() {
		open, closing = '[', ']'
	}

	visible := make([]string, 0, c.Len())
	for _, key := range c.Keys() {
		if !c.IsHidden(key) {
			visible = append(visible, key)
		}
	}

	e.buf.WriteByte(open)
	if len(visible) == 0 {
		// Empty structures collapse even in pretty mode.
		e.buf.WriteByte(closing)
		return nil
	}

	for i, key := range visible {
		e.indent(depth + 1)

		if c.IsObject() {
			if err := e.writeString(key); err != nil {
				return err
			}
			e.buf.WriteByte(':')
			if e.opts.Pretty {
				e.buf.WriteString(e.opts.KeySpacer)
			}
		}

		switch c.Type(key) {
		case container.KindString:
			if err := e.writeString(c.String(key, "")); err != nil {
				return err
			}
		case container.KindInt:
			e.buf.WriteString(strconv.FormatInt(c.Int(key, 0), 10))
		case container.KindFloat:
			if err := e.writeFloat(c.Float(key, 0)); err != nil {
				return err
			}
		case container.KindBool:
			e.buf.WriteString(strconv.FormatBool(c.Bool(key, false)))
		case container.KindNull:
			e.buf.WriteString("null")
		case container.KindObject:
			child := c.Object(key)
			if child == nil {
				e.buf.WriteString("null")
				break
			}
			if err := e.encodeContainer(child, depth+1); err != nil {
				return err
			}
		}

		if i < len(visible)-1 {
			e.buf.WriteByte(',')
		}
	}

	e.indent(depth)
	e.buf.WriteByte(closing)
	return nil
}
