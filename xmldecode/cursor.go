package xmldecode

import (
	"encoding/xml"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/kbukum/mws/errors"
)

// Cursor is a forward-only position in an XML event stream. It tracks the
// stack of open elements so decoders can read the current element's name
// and attributes.
type Cursor struct {
	dec    *xml.Decoder
	peeked xml.Token
	stack  []xml.StartElement
}

// NewCursor returns a cursor reading from r.
func NewCursor(r io.Reader) *Cursor {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	return &Cursor{dec: dec}
}

// LocalName returns the local name of the innermost open element.
func (c *Cursor) LocalName() string {
	if len(c.stack) == 0 {
		return ""
	}
	return c.stack[len(c.stack)-1].Name.Local
}

// Depth returns the number of open elements.
func (c *Cursor) Depth() int {
	return len(c.stack)
}

// Attr returns the attribute of the innermost open element whose local name
// matches name.
func (c *Cursor) Attr(name string) (string, bool) {
	if len(c.stack) == 0 {
		return "", false
	}
	for _, a := range c.stack[len(c.stack)-1].Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// peek returns the next token without consuming it. io.EOF is returned as is.
func (c *Cursor) peek() (xml.Token, error) {
	if c.peeked != nil {
		return c.peeked, nil
	}
	tok, err := c.dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, malformed(err)
	}
	c.peeked = xml.CopyToken(tok)
	return c.peeked, nil
}

// consume drops the peeked token and updates the element stack.
func (c *Cursor) consume() {
	switch t := c.peeked.(type) {
	case xml.StartElement:
		c.stack = append(c.stack, t)
	case xml.EndElement:
		if len(c.stack) > 0 {
			c.stack = c.stack[:len(c.stack)-1]
		}
	}
	c.peeked = nil
}

// peekSignificant skips comments, processing instructions, directives and
// whitespace-only text, and returns the next token that carries structure.
func (c *Cursor) peekSignificant() (xml.Token, error) {
	for {
		tok, err := c.peek()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement, xml.EndElement:
			return tok, nil
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return tok, nil
			}
		}
		c.consume()
	}
}

// enter consumes the start tag of the next element, which must be named tag.
func (c *Cursor) enter(tag string) error {
	tok, err := c.peekSignificant()
	if err != nil {
		return unexpectedEOF(err, fmt.Sprintf("expected <%s>", tag))
	}
	start, ok := tok.(xml.StartElement)
	if !ok || start.Name.Local != tag {
		return errors.Protocol(fmt.Sprintf("expected <%s>, found %s", tag, describe(tok)), nil)
	}
	c.consume()
	return nil
}

// leave skips whatever remains of the innermost open element, including its
// end tag.
func (c *Cursor) leave() error {
	target := len(c.stack) - 1
	if target < 0 {
		return nil
	}
	for len(c.stack) > target {
		if _, err := c.peek(); err != nil {
			return unexpectedEOF(err, fmt.Sprintf("expected </%s>", c.LocalName()))
		}
		c.consume()
	}
	return nil
}

// finish reads the rest of the stream after the root element. Only
// whitespace, comments and processing instructions may follow it.
func (c *Cursor) finish() error {
	tok, err := c.peekSignificant()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	return errors.Protocol("content after root element: "+describe(tok), nil)
}

func describe(tok xml.Token) string {
	switch t := tok.(type) {
	case xml.StartElement:
		return "<" + t.Name.Local + ">"
	case xml.EndElement:
		return "</" + t.Name.Local + ">"
	case xml.CharData:
		return "text"
	default:
		return fmt.Sprintf("%T", tok)
	}
}

func malformed(err error) error {
	return errors.Protocol("malformed XML", err)
}

func unexpectedEOF(err error, want string) error {
	if stderrors.Is(err, io.EOF) {
		return errors.Protocol("unexpected end of document: "+want, nil)
	}
	return err
}
