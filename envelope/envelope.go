// Package envelope strips the scaffolding common to every service response:
//
//	<ActionResponse>
//	  <ActionResult>...payload...</ActionResult>
//	  <ResponseMetadata><RequestId>...</RequestId></ResponseMetadata>
//	</ActionResponse>
//
// and decodes the separate error envelope returned on failures.
package envelope

import (
	"io"

	"github.com/kbukum/mws/xmldecode"
)

// Response is a decoded success envelope.
type Response[T any] struct {
	Payload   T
	RequestID string
}

// Page returns the continuation state when the payload is a paged list.
func (r *Response[T]) Page() (Page, bool) {
	if p, ok := any(r.Payload).(Paged); ok {
		return p.Continuation(), true
	}
	if p, ok := any(&r.Payload).(Paged); ok {
		return p.Continuation(), true
	}
	return Page{}, false
}

// ResponseTag returns the outer element name for an action.
func ResponseTag(action string) string { return action + "Response" }

// ResultTag returns the result element name for an action.
func ResultTag(action string) string { return action + "Result" }

// Decode unwraps the success envelope of action and decodes its single result
// element with payload. Siblings other than the result and ResponseMetadata
// are ignored. A missing result leaves the payload at its zero value.
func Decode[T any](r io.Reader, action string, payload xmldecode.Decoder[T]) (*Response[T], error) {
	resultTag := ResultTag(action)
	return xmldecode.Document(r, ResponseTag(action), func(c *xmldecode.Cursor) (*Response[T], error) {
		return xmldecode.FoldElements(c, &Response[T]{}, func(c *xmldecode.Cursor, resp **Response[T]) error {
			switch c.LocalName() {
			case resultTag:
				return xmldecode.Into(c, &(*resp).Payload, payload)
			case "ResponseMetadata":
				return xmldecode.Into(c, &(*resp).RequestID, requestID)
			}
			return nil
		})
	})
}

// DecodeBatch unwraps a batch envelope whose result element repeats as
// unwrapped siblings, one per requested item.
func DecodeBatch[T any](r io.Reader, action string, item xmldecode.Decoder[T]) (*Response[[]T], error) {
	resultTag := ResultTag(action)
	return xmldecode.Document(r, ResponseTag(action), func(c *xmldecode.Cursor) (*Response[[]T], error) {
		return xmldecode.FoldElements(c, &Response[[]T]{Payload: []T{}}, func(c *xmldecode.Cursor, resp **Response[[]T]) error {
			switch c.LocalName() {
			case resultTag:
				return xmldecode.Append(c, &(*resp).Payload, item)
			case "ResponseMetadata":
				return xmldecode.Into(c, &(*resp).RequestID, requestID)
			}
			return nil
		})
	})
}

// requestID reads RequestId out of a ResponseMetadata element.
func requestID(c *xmldecode.Cursor) (string, error) {
	return xmldecode.FoldElements(c, "", func(c *xmldecode.Cursor, id *string) error {
		if c.LocalName() == "RequestId" {
			return xmldecode.Into(c, id, xmldecode.String)
		}
		return nil
	})
}
