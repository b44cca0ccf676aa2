package envelope

import (
	"io"

	"github.com/kbukum/mws/xmldecode"
)

// ErrorResponse is the decoded error envelope:
//
//	<ErrorResponse>
//	  <Error><Type>Sender</Type><Code>...</Code><Message>...</Message><Detail/></Error>
//	  <RequestID>...</RequestID>
//	</ErrorResponse>
type ErrorResponse struct {
	Type      string
	Code      string
	Message   string
	Detail    string
	RequestID string
}

// DecodeField implements xmldecode.Fields for the root element.
func (e *ErrorResponse) DecodeField(c *xmldecode.Cursor) error {
	switch c.LocalName() {
	case "Error":
		_, err := xmldecode.FoldElements(c, e, func(c *xmldecode.Cursor, e **ErrorResponse) error {
			switch c.LocalName() {
			case "Type":
				return xmldecode.Into(c, &(*e).Type, xmldecode.String)
			case "Code":
				return xmldecode.Into(c, &(*e).Code, xmldecode.String)
			case "Message":
				return xmldecode.Into(c, &(*e).Message, xmldecode.String)
			case "Detail":
				return xmldecode.Into(c, &(*e).Detail, xmldecode.String)
			}
			return nil
		})
		return err
	case "RequestID", "RequestId":
		return xmldecode.Into(c, &e.RequestID, xmldecode.String)
	}
	return nil
}

// DecodeError decodes an error envelope.
func DecodeError(r io.Reader) (*ErrorResponse, error) {
	resp, err := xmldecode.Document(r, "ErrorResponse", xmldecode.Struct[ErrorResponse]())
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
