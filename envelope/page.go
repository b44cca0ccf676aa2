package envelope

import "github.com/kbukum/mws/xmldecode"

// Page carries the continuation state of list operations. Payload records
// embed it and forward their NextToken and HasNext children to DecodePage.
type Page struct {
	NextToken *string
	HasNext   bool
}

// Paged is implemented by payloads that embed Page.
type Paged interface {
	Continuation() Page
}

// Continuation implements Paged.
func (p Page) Continuation() Page { return p }

// More reports whether another page can be requested.
func (p Page) More() bool {
	return p.HasNext && p.NextToken != nil && *p.NextToken != ""
}

// DecodePage consumes a NextToken or HasNext child. It reports false for any
// other tag so callers can continue their own field dispatch.
func (p *Page) DecodePage(c *xmldecode.Cursor) (bool, error) {
	switch c.LocalName() {
	case "NextToken":
		return true, xmldecode.Into(c, &p.NextToken, xmldecode.Optional(xmldecode.String))
	case "HasNext":
		return true, xmldecode.Into(c, &p.HasNext, xmldecode.Bool)
	}
	return false, nil
}
