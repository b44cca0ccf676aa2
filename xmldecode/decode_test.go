package xmldecode

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/mws/errors"
)

type money struct {
	CurrencyCode string
	Amount       string
}

func (m *money) DecodeField(c *Cursor) error {
	switch c.LocalName() {
	case "CurrencyCode":
		return Into(c, &m.CurrencyCode, String)
	case "Amount":
		return Into(c, &m.Amount, String)
	}
	return nil
}

type measure struct {
	Value string
	Units string
}

func (m *measure) DecodeAttrs(c *Cursor) error {
	m.Units = AttrString(c, "Units")
	return nil
}

func (m *measure) DecodeContent(text string) error {
	m.Value = text
	return nil
}

type offer struct {
	Condition    string
	MinHours     *int
	ListingPrice money
	Shipping     *money
	Tags         []string
	Weights      []measure
	Count        int
	Featured     bool
}

func (o *offer) DecodeAttrs(c *Cursor) error {
	o.Condition = AttrString(c, "condition")
	var err error
	o.MinHours, err = AttrOptional(c, "minimumHours", ParseInt)
	return err
}

func (o *offer) DecodeField(c *Cursor) error {
	switch c.LocalName() {
	case "ListingPrice":
		return Into(c, &o.ListingPrice, Struct[money]())
	case "Shipping":
		return Into(c, &o.Shipping, Optional(Struct[money]()))
	case "Tags":
		return Into(c, &o.Tags, List("Tag", String))
	case "Weight":
		return Append(c, &o.Weights, Struct[measure]())
	case "Count":
		return Into(c, &o.Count, Int)
	case "Featured":
		return Into(c, &o.Featured, Bool)
	}
	return nil
}

func TestDocument_NestedFixture(t *testing.T) {
	doc := `<Offer><ListingPrice><CurrencyCode>USD</CurrencyCode><Amount>29.99</Amount></ListingPrice></Offer>`

	got, err := Document(strings.NewReader(doc), "Offer", Struct[offer]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := money{CurrencyCode: "USD", Amount: "29.99"}
	if got.ListingPrice != want {
		t.Errorf("ListingPrice = %+v, want %+v", got.ListingPrice, want)
	}
	if got.Shipping != nil {
		t.Error("absent optional should stay nil")
	}
	if len(got.Tags) != 0 || len(got.Weights) != 0 {
		t.Error("absent lists should stay empty")
	}
}

func TestDocument_FullRecord(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<ns:Offer xmlns:ns="http://example.com/schema" condition="New" minimumHours="24">
  <!-- pricing -->
  <ns:ListingPrice>
    <CurrencyCode>USD</CurrencyCode>
    <Amount>10.00</Amount>
  </ns:ListingPrice>
  <Shipping><CurrencyCode>USD</CurrencyCode><Amount>0.00</Amount></Shipping>
  <Tags><Tag>a</Tag><Other>ignored</Other><Tag> b </Tag></Tags>
  <Weight Units="pounds">1.40</Weight>
  <FutureField><Deep><Deeper>x</Deeper></Deep></FutureField>
  <Weight Units="ounces">3</Weight>
  <Count>7</Count>
  <Featured>true</Featured>
</ns:Offer>`

	got, err := Document(strings.NewReader(doc), "Offer", Struct[offer]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hours := 24
	want := offer{
		Condition:    "New",
		MinHours:     &hours,
		ListingPrice: money{CurrencyCode: "USD", Amount: "10.00"},
		Shipping:     &money{CurrencyCode: "USD", Amount: "0.00"},
		Tags:         []string{"a", "b"},
		Weights: []measure{
			{Value: "1.40", Units: "pounds"},
			{Value: "3", Units: "ounces"},
		},
		Count:    7,
		Featured: true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v\nwant %+v", got, want)
	}
}

type page struct {
	NextToken *string
	Items     []string
}

func (p *page) DecodeField(c *Cursor) error {
	switch c.LocalName() {
	case "NextToken":
		return Into(c, &p.NextToken, Optional(String))
	case "Item":
		return Append(c, &p.Items, String)
	}
	return nil
}

func TestDocument_DefaultOnAbsence(t *testing.T) {
	got, err := Document(strings.NewReader(`<Response><Result/></Response>`), "Response", func(c *Cursor) (page, error) {
		return Element(c, "Result", Struct[page]())
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.NextToken != nil || len(got.Items) != 0 {
		t.Errorf("expected defaults, got %+v", got)
	}
}

func TestCharacters_SkipsChildElements(t *testing.T) {
	got, err := Document(strings.NewReader(`<Detail>a<b>ignored</b>c</Detail>`), "Detail", Characters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ac" {
		t.Errorf("got %q, want %q", got, "ac")
	}
}

func TestScalars(t *testing.T) {
	ts, err := Document(strings.NewReader(`<D>2018-03-04T05:06:07.123+00:00</D>`), "D", Time)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ts.Equal(time.Date(2018, 3, 4, 5, 6, 7, 123_000_000, time.UTC)) {
		t.Errorf("unexpected time %v", ts)
	}

	n, err := Document(strings.NewReader(`<N/>`), "N", Int)
	if err != nil || n != 0 {
		t.Errorf("empty int: got %d, %v", n, err)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		dec  Decoder[offer]
	}{
		{"malformed", `<Offer><ListingPrice></Offer>`, Struct[offer]()},
		{"truncated", `<Offer><ListingPrice>`, Struct[offer]()},
		{"wrong root", `<Other/>`, Struct[offer]()},
		{"empty document", ``, Struct[offer]()},
		{"bad integer", `<Offer><Count>seven</Count></Offer>`, Struct[offer]()},
		{"bad boolean", `<Offer><Featured>maybe</Featured></Offer>`, Struct[offer]()},
		{"second root", `<Offer></Offer><Offer></Offer>`, Struct[offer]()},
		{"stray end tag", `<Offer></Offer></Extra>`, Struct[offer]()},
		{"trailing garbage", `<Offer></Offer><Broken><<<`, Struct[offer]()},
		{"trailing text", `<Offer></Offer>junk`, Struct[offer]()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Document(strings.NewReader(tc.doc), "Offer", tc.dec)
			if !errors.IsProtocol(err) {
				t.Errorf("expected protocol error, got %v", err)
			}
		})
	}
}

func TestElement_NestedBody(t *testing.T) {
	doc := `<Meta><RequestId>abc-123</RequestId></Meta>`
	got, err := Document(strings.NewReader(doc), "Meta", func(c *Cursor) (string, error) {
		return Element(c, "RequestId", String)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abc-123" {
		t.Errorf("got %q", got)
	}
}
