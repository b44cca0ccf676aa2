package xmldecode

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kbukum/mws/errors"
)

// Decoder decodes the content of the current element into a T.
type Decoder[T any] func(c *Cursor) (T, error)

// Characters accumulates the text content of the current element until its
// end tag. Child elements are skipped.
func Characters(c *Cursor) (string, error) {
	var sb strings.Builder
	for {
		tok, err := c.peek()
		if err != nil {
			return "", unexpectedEOF(err, "expected </"+c.LocalName()+">")
		}
		switch t := tok.(type) {
		case xml.EndElement:
			return sb.String(), nil
		case xml.CharData:
			sb.Write(t)
			c.consume()
		case xml.StartElement:
			c.consume()
			if err := c.leave(); err != nil {
				return "", err
			}
		default:
			c.consume()
		}
	}
}

// Element consumes the start tag tag, runs body on its content and consumes
// the matching end tag.
func Element[T any](c *Cursor, tag string, body Decoder[T]) (T, error) {
	var zero T
	if err := c.enter(tag); err != nil {
		return zero, err
	}
	v, err := body(c)
	if err != nil {
		return zero, err
	}
	if err := c.leave(); err != nil {
		return zero, err
	}
	return v, nil
}

// FoldElements calls step once for every child element of the current
// element, with the cursor inside that child. Whatever step leaves unread
// of the child is skipped. Stops before the current element's end tag.
func FoldElements[T any](c *Cursor, seed T, step func(c *Cursor, acc *T) error) (T, error) {
	acc := seed
	for {
		tok, err := c.peekSignificant()
		if err != nil {
			return acc, unexpectedEOF(err, "expected </"+c.LocalName()+">")
		}
		switch tok.(type) {
		case xml.EndElement:
			return acc, nil
		case xml.StartElement:
			c.consume()
			if err := step(c, &acc); err != nil {
				return acc, err
			}
			if err := c.leave(); err != nil {
				return acc, err
			}
		default:
			// mixed content between children
			c.consume()
		}
	}
}

// Document decodes a whole document whose root element is named root. The
// stream is read to the end so trailing garbage is reported as malformed.
func Document[T any](r io.Reader, root string, body Decoder[T]) (T, error) {
	c := NewCursor(r)
	v, err := Element(c, root, body)
	if err != nil {
		return v, err
	}
	if err := c.finish(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// --- combinators ---

// Into decodes the current element with dec and stores the result in dst.
func Into[T any](c *Cursor, dst *T, dec Decoder[T]) error {
	v, err := dec(c)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Append decodes the current element with item and appends it to dst. Used
// for repeated siblings that have no wrapping parent.
func Append[T any](c *Cursor, dst *[]T, item Decoder[T]) error {
	v, err := item(c)
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

// Optional turns a decoder into one producing a pointer, so presence of the
// element can be told apart from its zero value.
func Optional[T any](dec Decoder[T]) Decoder[*T] {
	return func(c *Cursor) (*T, error) {
		v, err := dec(c)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

// List decodes a wrapped list: every child named itemTag is decoded with
// item, other children are skipped.
func List[T any](itemTag string, item Decoder[T]) Decoder[[]T] {
	return func(c *Cursor) ([]T, error) {
		return FoldElements(c, []T{}, func(c *Cursor, acc *[]T) error {
			if c.LocalName() != itemTag {
				return nil
			}
			return Append(c, acc, item)
		})
	}
}

// Map applies fn to the result of dec.
func Map[T, U any](dec Decoder[T], fn func(T) (U, error)) Decoder[U] {
	return func(c *Cursor) (U, error) {
		v, err := dec(c)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v)
	}
}

// Skip discards the current element's content.
func Skip(c *Cursor) (struct{}, error) {
	_, err := FoldElements(c, struct{}{}, func(*Cursor, *struct{}) error { return nil })
	return struct{}{}, err
}

// --- scalars ---

// String decodes text content with surrounding whitespace removed.
func String(c *Cursor) (string, error) {
	s, err := Characters(c)
	return strings.TrimSpace(s), err
}

// Int decodes a base-10 integer. Empty content decodes as 0.
func Int(c *Cursor) (int, error) {
	return Map(String, ParseInt)(c)
}

// Int64 decodes a base-10 64-bit integer. Empty content decodes as 0.
func Int64(c *Cursor) (int64, error) {
	return Map(String, ParseInt64)(c)
}

// Bool decodes "true" or "false". Empty content decodes as false.
func Bool(c *Cursor) (bool, error) {
	return Map(String, ParseBool)(c)
}

// Time decodes an ISO-8601 date-time. Empty content decodes as the zero time.
func Time(c *Cursor) (time.Time, error) {
	return Map(String, ParseTime)(c)
}

// ParseInt parses an integer value or attribute.
func ParseInt(s string) (int, error) {
	n, err := ParseInt64(s)
	return int(n), err
}

// ParseInt64 parses a 64-bit integer value or attribute.
func ParseInt64(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Protocol("invalid integer "+strconv.Quote(s), err)
	}
	return n, nil
}

// ParseBool parses a boolean value or attribute.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true, nil
	case "false", "0", "":
		return false, nil
	}
	return false, errors.Protocol("invalid boolean "+strconv.Quote(s), nil)
}

// ParseTime parses an ISO-8601 date-time value or attribute.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.Protocol("invalid date-time "+strconv.Quote(s), err)
	}
	return t, nil
}
