package testutil_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/kbukum/mws/params"
	"github.com/kbukum/mws/signer"
	"github.com/kbukum/mws/testutil"
)

const (
	testPath    = "/Orders/2013-09-01"
	testVersion = "2013-09-01"
)

func post(t *testing.T, svc *testutil.Service, secret, action string, p params.Pairs) (int, string, http.Header) {
	t.Helper()
	u, err := url.Parse(svc.URL())
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	s, err := signer.New(signer.Credentials{AccessKeyID: "AK", SecretKey: secret, SellerID: "S"})
	if err != nil {
		t.Fatalf("signer.New: %v", err)
	}
	signed, err := s.Sign(signer.Request{
		Scheme: u.Scheme, Host: u.Host, Path: testPath,
		Version: testVersion, Action: action, Params: p,
	})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	resp, err := http.Post(signed.URL, "application/x-www-form-urlencoded", strings.NewReader(signed.Body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), resp.Header
}

func TestService_Routing(t *testing.T) {
	svc := testutil.NewService(testPath, testVersion).
		WithSecret("SK").
		Respond("ListOrders", "<ListOrdersResponse/>").
		RespondError("GetOrder", http.StatusServiceUnavailable, "Sender", "RequestThrottled", "slow down", "r-1").
		RespondReport("GetReport", "a\tb\n")
	testutil.T(t).Setup(svc)

	tests := []struct {
		name       string
		secret     string
		action     string
		wantStatus int
		wantBody   string
	}{
		{"routed", "SK", "ListOrders", http.StatusOK, "<ListOrdersResponse/>"},
		{"error envelope", "SK", "GetOrder", http.StatusServiceUnavailable, "<Code>RequestThrottled</Code>"},
		{"unknown action", "SK", "Nope", http.StatusBadRequest, "<Code>InvalidAction</Code>"},
		{"bad signature", "WRONG", "ListOrders", http.StatusForbidden, "<Code>SignatureDoesNotMatch</Code>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body, _ := post(t, svc, tt.secret, tt.action, nil)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if !strings.Contains(body, tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", body, tt.wantBody)
			}
		})
	}

	status, body, header := post(t, svc, "SK", "GetReport", nil)
	if status != http.StatusOK || body != "a\tb\n" {
		t.Fatalf("report: %d %q", status, body)
	}
	if header.Get("Content-MD5") != testutil.ContentMD5("a\tb\n") {
		t.Errorf("Content-MD5 = %q", header.Get("Content-MD5"))
	}
}

func TestService_Recording(t *testing.T) {
	svc := testutil.NewService(testPath, testVersion).WithSecret("SK").Respond("ListOrders", "<ok/>")
	h := testutil.T(t)
	h.Setup(svc)

	post(t, svc, "SK", "ListOrders", params.Raw("CreatedAfter", "2017-01-01T00:00:00Z"))
	snap := h.Snapshot(svc)
	post(t, svc, "SK", "ListOrders", params.Raw("CreatedAfter", "2018-01-01T00:00:00Z"))

	if got := svc.Count("ListOrders"); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}
	if got := svc.Last().Get("CreatedAfter"); got != "2018-01-01T00:00:00Z" {
		t.Errorf("Last CreatedAfter = %q", got)
	}
	for _, r := range svc.Requests() {
		if !r.SignatureValid {
			t.Errorf("request %v not verified", r.Form)
		}
	}

	h.Restore(svc, snap)
	if got := svc.Count("ListOrders"); got != 1 {
		t.Errorf("Count after Restore = %d, want 1", got)
	}

	h.Reset(svc)
	if svc.Last() != nil || len(svc.Requests()) != 0 {
		t.Errorf("requests survived Reset: %v", svc.Requests())
	}
}

func TestService_Lifecycle(t *testing.T) {
	svc := testutil.NewService(testPath, testVersion)
	cleanup, err := testutil.Setup(svc)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if svc.URL() == "" {
		t.Fatal("URL empty after Setup")
	}
	if err := svc.Start(context.Background()); err == nil {
		t.Error("second Start should fail")
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if svc.URL() != "" {
		t.Errorf("URL = %q after Stop", svc.URL())
	}
	if err := svc.Restore(context.Background(), "bogus"); err == nil {
		t.Error("Restore with wrong type should fail")
	}
}
