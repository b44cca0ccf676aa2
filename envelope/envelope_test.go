package envelope

import (
	"strings"
	"testing"

	"github.com/kbukum/mws/errors"
	"github.com/kbukum/mws/xmldecode"
)

type listResult struct {
	Page
	Ids []string
}

func (l *listResult) DecodeField(c *xmldecode.Cursor) error {
	if ok, err := l.DecodePage(c); ok {
		return err
	}
	if c.LocalName() == "Id" {
		return xmldecode.Append(c, &l.Ids, xmldecode.String)
	}
	return nil
}

type itemResult struct {
	ASIN   string
	Status string
	Title  string
}

func (i *itemResult) DecodeAttrs(c *xmldecode.Cursor) error {
	i.ASIN = xmldecode.AttrString(c, "ASIN")
	i.Status = xmldecode.AttrString(c, "status")
	return nil
}

func (i *itemResult) DecodeField(c *xmldecode.Cursor) error {
	if c.LocalName() == "Title" {
		return xmldecode.Into(c, &i.Title, xmldecode.String)
	}
	return nil
}

func TestDecode_Envelope(t *testing.T) {
	doc := `<?xml version="1.0"?>
<GetReportListResponse xmlns="http://mws.amazonaws.com/doc/2009-01-01/">
  <GetReportListResult>
    <NextToken>tok==</NextToken>
    <HasNext>true</HasNext>
    <Id>1</Id>
    <Id>2</Id>
  </GetReportListResult>
  <Unrelated>x</Unrelated>
  <ResponseMetadata>
    <RequestId>98f3-4d0a</RequestId>
  </ResponseMetadata>
</GetReportListResponse>`

	resp, err := Decode(strings.NewReader(doc), "GetReportList", xmldecode.Struct[listResult]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.RequestID != "98f3-4d0a" {
		t.Errorf("RequestID = %q", resp.RequestID)
	}
	if strings.Join(resp.Payload.Ids, ",") != "1,2" {
		t.Errorf("Ids = %v", resp.Payload.Ids)
	}
	page, ok := resp.Page()
	if !ok {
		t.Fatal("expected paged payload")
	}
	if !page.More() || *page.NextToken != "tok==" {
		t.Errorf("unexpected page %+v", page)
	}
}

func TestDecode_EmptyResult(t *testing.T) {
	doc := `<GetReportListResponse><GetReportListResult/></GetReportListResponse>`
	resp, err := Decode(strings.NewReader(doc), "GetReportList", xmldecode.Struct[listResult]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Payload.NextToken != nil || len(resp.Payload.Ids) != 0 || resp.RequestID != "" {
		t.Errorf("expected defaults, got %+v", resp)
	}
	if page, _ := resp.Page(); page.More() {
		t.Error("empty page should not have more")
	}
}

func TestDecode_WrongOperation(t *testing.T) {
	doc := `<RequestReportResponse><RequestReportResult/></RequestReportResponse>`
	_, err := Decode(strings.NewReader(doc), "GetReportList", xmldecode.Struct[listResult]())
	if !errors.IsProtocol(err) {
		t.Errorf("expected protocol error, got %v", err)
	}
}

func TestDecode_TrailingContent(t *testing.T) {
	tests := []struct {
		name string
		tail string
	}{
		{"unclosed element", `<Broken><<<`},
		{"stray end tag", `</Extra>`},
		{"second element", `<FooResponse/>`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := `<FooResponse><ResponseMetadata><RequestId>r</RequestId></ResponseMetadata></FooResponse>` + tc.tail
			resp, err := Decode(strings.NewReader(doc), "Foo", xmldecode.String)
			if !errors.IsProtocol(err) {
				t.Fatalf("expected protocol error, got resp=%+v err=%v", resp, err)
			}
		})
	}

	resp, err := Decode(strings.NewReader("<FooResponse/>\n<!-- trailer -->\n"), "Foo", xmldecode.String)
	if err != nil || resp == nil {
		t.Errorf("whitespace and comments after the root must be accepted: %v", err)
	}
}

func TestDecodeBatch(t *testing.T) {
	doc := `<GetMyPriceForASINResponse xmlns="http://mws.amazonservices.com/schema/Products/2011-10-01">
  <GetMyPriceForASINResult ASIN="B073000000" status="Success"><Title>One</Title></GetMyPriceForASINResult>
  <GetMyPriceForASINResult ASIN="B073000001" status="ClientError"/>
  <ResponseMetadata><RequestId>rid</RequestId></ResponseMetadata>
</GetMyPriceForASINResponse>`

	resp, err := DecodeBatch(strings.NewReader(doc), "GetMyPriceForASIN", xmldecode.Struct[itemResult]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []itemResult{
		{ASIN: "B073000000", Status: "Success", Title: "One"},
		{ASIN: "B073000001", Status: "ClientError"},
	}
	if len(resp.Payload) != len(want) {
		t.Fatalf("got %d results, want %d", len(resp.Payload), len(want))
	}
	for i := range want {
		if resp.Payload[i] != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, resp.Payload[i], want[i])
		}
	}
	if resp.RequestID != "rid" {
		t.Errorf("RequestID = %q", resp.RequestID)
	}
	if _, ok := resp.Page(); ok {
		t.Error("batch payload is not paged")
	}
}

func TestDecodeError(t *testing.T) {
	doc := `<?xml version="1.0"?>
<ErrorResponse xmlns="http://mws.amazonaws.com/doc/2009-01-01/">
  <Error>
    <Type>Sender</Type>
    <Code>RequestThrottled</Code>
    <Message>Request is throttled</Message>
    <Detail><Extra>ignored</Extra></Detail>
  </Error>
  <RequestID>e4a1-77</RequestID>
</ErrorResponse>`

	got, err := DecodeError(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ErrorResponse{
		Type:      "Sender",
		Code:      "RequestThrottled",
		Message:   "Request is throttled",
		RequestID: "e4a1-77",
	}
	if *got != want {
		t.Errorf("got %+v, want %+v", *got, want)
	}
}

func TestDecodeError_NotAnErrorEnvelope(t *testing.T) {
	_, err := DecodeError(strings.NewReader(`<html><body>Bad Gateway</body></html>`))
	if !errors.IsProtocol(err) {
		t.Errorf("expected protocol error, got %v", err)
	}
}
