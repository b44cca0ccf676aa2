package testutil

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/kbukum/mws/params"
	"github.com/kbukum/mws/signer"
)

// Request is one call recorded by a Service.
type Request struct {
	Path           string
	Host           string
	Form           url.Values
	SignatureValid bool
}

// Action returns the Action parameter of the request.
func (r Request) Action() string { return r.Form.Get(signer.KeyAction) }

// Service is a fake MWS section served over httptest.
type Service struct {
	path    string
	version string
	secret  string

	mu       sync.Mutex
	routes   map[string]http.Handler
	requests []Request
	srv      *httptest.Server
}

var _ TestComponent = (*Service)(nil)

// NewService creates a fake answering POSTs to path whose Version matches version.
func NewService(path, version string) *Service {
	return &Service{
		path:    path,
		version: version,
		routes:  make(map[string]http.Handler),
	}
}

// WithSecret enables signature checking; unsigned or mis-signed requests get 403.
func (s *Service) WithSecret(secret string) *Service {
	s.secret = secret
	return s
}

// Handle routes action to h.
func (s *Service) Handle(action string, h http.Handler) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[action] = h
	return s
}

// Respond answers action with 200 and body.
func (s *Service) Respond(action, body string) *Service {
	return s.RespondStatus(action, http.StatusOK, body)
}

// RespondStatus answers action with the given status and body.
func (s *Service) RespondStatus(action string, status int, body string) *Service {
	return s.Handle(action, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
}

// RespondError answers action with an ErrorResponse envelope.
func (s *Service) RespondError(action string, status int, errType, code, message, requestID string) *Service {
	return s.RespondStatus(action, status, ErrorEnvelope(errType, code, message, requestID))
}

// RespondReport answers action with a raw body and a matching Content-MD5 header.
func (s *Service) RespondReport(action, body string) *Service {
	return s.Handle(action, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-MD5", ContentMD5(body))
		_, _ = io.WriteString(w, body)
	}))
}

// Name implements TestComponent.
func (s *Service) Name() string { return "mws:" + s.path }

// Start implements TestComponent.
func (s *Service) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return fmt.Errorf("service %s already started", s.path)
	}
	s.srv = httptest.NewServer(s)
	return nil
}

// Stop implements TestComponent.
func (s *Service) Stop(_ context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.mu.Unlock()
	if srv != nil {
		srv.Close()
	}
	return nil
}

// Reset forgets recorded requests. Routes are kept.
func (s *Service) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	return nil
}

// Snapshot returns a copy of the recorded requests.
func (s *Service) Snapshot(_ context.Context) (interface{}, error) {
	return s.Requests(), nil
}

// Restore replaces the recorded requests with a snapshot.
func (s *Service) Restore(_ context.Context, snapshot interface{}) error {
	reqs, ok := snapshot.([]Request)
	if !ok {
		return fmt.Errorf("invalid snapshot type %T", snapshot)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append([]Request(nil), reqs...)
	return nil
}

// URL returns the base URL of the running server.
func (s *Service) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv == nil {
		return ""
	}
	return s.srv.URL
}

// Requests returns a copy of everything received so far.
func (s *Service) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Last returns the form of the most recent request, or nil.
func (s *Service) Last() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1].Form
}

// Count returns how many requests carried the given action.
func (s *Service) Count(action string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Action() == action {
			n++
		}
	}
	return n
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	form, err := url.ParseQuery(string(body))
	if err != nil {
		writeError(w, http.StatusBadRequest, "MalformedQueryString", err.Error())
		return
	}
	req := Request{Path: r.URL.Path, Host: r.Host, Form: form}
	if s.secret != "" {
		req.SignatureValid = verify(s.secret, r.Host, r.URL.Path, form)
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	h := s.routes[req.Action()]
	s.mu.Unlock()

	switch {
	case r.Method != http.MethodPost:
		writeError(w, http.StatusMethodNotAllowed, "InvalidHttpMethod", r.Method)
	case s.secret != "" && !req.SignatureValid:
		writeError(w, http.StatusForbidden, "SignatureDoesNotMatch", "The request signature we calculated does not match the signature you provided.")
	case r.URL.Path != s.path || form.Get(signer.KeyVersion) != s.version:
		writeError(w, http.StatusBadRequest, "InvalidAddress", r.URL.Path+" "+form.Get(signer.KeyVersion))
	case h == nil:
		writeError(w, http.StatusBadRequest, "InvalidAction", req.Action())
	default:
		h.ServeHTTP(w, r)
	}
}

func verify(secret, host, path string, form url.Values) bool {
	var pairs params.Pairs
	for k, vs := range form {
		if k == signer.KeySignature || len(vs) == 0 {
			continue
		}
		pairs.Add(k, vs[0])
	}
	sts := "POST\n" + strings.ToLower(host) + "\n" + path + "\n" + signer.Canonical(pairs)
	return signer.Sum(secret, sts) == form.Get(signer.KeySignature)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, ErrorEnvelope("Sender", code, message, ""))
}

// ErrorEnvelope renders an MWS ErrorResponse document.
func ErrorEnvelope(errType, code, message, requestID string) string {
	var b strings.Builder
	b.WriteString("<ErrorResponse><Error><Type>")
	_ = xml.EscapeText(&b, []byte(errType))
	b.WriteString("</Type><Code>")
	_ = xml.EscapeText(&b, []byte(code))
	b.WriteString("</Code><Message>")
	_ = xml.EscapeText(&b, []byte(message))
	b.WriteString("</Message></Error><RequestID>")
	_ = xml.EscapeText(&b, []byte(requestID))
	b.WriteString("</RequestID></ErrorResponse>")
	return b.String()
}

// ContentMD5 returns the base64 MD5 digest of body as sent in Content-MD5.
func ContentMD5(body string) string {
	sum := md5.Sum([]byte(body))
	return base64.StdEncoding.EncodeToString(sum[:])
}
