package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/kbukum/mws/envelope"
	"github.com/kbukum/mws/errors"
	"github.com/kbukum/mws/params"
	"github.com/kbukum/mws/xmldecode"
)

type listing struct {
	envelope.Page
	Items []string
}

func (l *listing) DecodeField(c *xmldecode.Cursor) error {
	if ok, err := l.DecodePage(c); ok {
		return err
	}
	if c.LocalName() == "Item" {
		return xmldecode.Append(c, &l.Items, xmldecode.String)
	}
	return nil
}

func listServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(body))
		switch form.Get("Action") {
		case "List":
			_, _ = io.WriteString(w, `<ListResponse><ListResult>
  <NextToken>tok-2</NextToken><HasNext>true</HasNext><Item>a</Item><Item>b</Item>
</ListResult></ListResponse>`)
		case "ListByNextToken":
			if form.Get("NextToken") != "tok-2" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			_, _ = io.WriteString(w, `<ListByNextTokenResponse><ListByNextTokenResult>
  <HasNext>false</HasNext><Item>c</Item>
</ListByNextTokenResult></ListByNextTokenResponse>`)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPaginate(t *testing.T) {
	c := newTestClient(t, testConfig(listServer(t).URL))
	dec := xmldecode.Struct[listing]()

	first := func(ctx context.Context) (*envelope.Response[listing], error) {
		return Invoke(ctx, c, Operation{Path: "/", Version: "2009-01-01", Action: "List"}, nil, dec)
	}
	next := func(ctx context.Context, token string) (*envelope.Response[listing], error) {
		return Invoke(ctx, c, Operation{Path: "/", Version: "2009-01-01", Action: "ListByNextToken"},
			params.Raw("NextToken", token), dec)
	}

	var items []string
	pages := 0
	err := Paginate(context.Background(), first, next, func(resp *envelope.Response[listing]) error {
		pages++
		items = append(items, resp.Payload.Items...)
		return nil
	})
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if pages != 2 {
		t.Errorf("pages = %d, want 2", pages)
	}
	if len(items) != 3 || items[2] != "c" {
		t.Errorf("items = %v", items)
	}
}

func TestPages_StopsEarly(t *testing.T) {
	calls := 0
	first := func(context.Context) (*envelope.Response[listing], error) {
		calls++
		tok := "more"
		return &envelope.Response[listing]{Payload: listing{Page: envelope.Page{NextToken: &tok, HasNext: true}}}, nil
	}
	next := func(context.Context, string) (*envelope.Response[listing], error) {
		calls++
		return nil, errors.Protocol("unexpected", nil)
	}

	for _, err := range Pages(context.Background(), first, next) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		break
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestPages_CancelledBetweenPages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	first := func(context.Context) (*envelope.Response[listing], error) {
		tok := "more"
		return &envelope.Response[listing]{Payload: listing{Page: envelope.Page{NextToken: &tok, HasNext: true}}}, nil
	}
	next := func(context.Context, string) (*envelope.Response[listing], error) {
		t.Fatal("next should not run after cancellation")
		return nil, nil
	}

	var gotErr error
	for _, err := range Pages(ctx, first, next) {
		if err != nil {
			gotErr = err
			break
		}
		cancel()
	}
	if !errors.IsTransport(gotErr) {
		t.Errorf("expected timeout error, got %v", gotErr)
	}
}
