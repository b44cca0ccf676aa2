package httpclient

import (
	"io"
	"net/http"
)

// FormContentType is the content type of every signed request body.
const FormContentType = "application/x-www-form-urlencoded; charset=utf-8"

// Request describes an outbound request.
type Request struct {
	// Method defaults to POST.
	Method string
	// URL is the absolute target URL.
	URL string
	// Headers are request-specific headers (merged with client defaults).
	Headers map[string]string
	// Body is sent verbatim as a form-encoded body.
	Body string
}

// Response is a fully read response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// StreamResponse is a response whose body has not been read yet.
type StreamResponse struct {
	StatusCode int
	Headers    http.Header
	Body       io.ReadCloser
}

// IsSuccess returns true if the status code is 2xx.
func (r *StreamResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Header returns the first value of the named header.
func (r *StreamResponse) Header(name string) string {
	return r.Headers.Get(name)
}

// Close releases the connection.
func (r *StreamResponse) Close() error {
	if r.Body == nil {
		return nil
	}
	return r.Body.Close()
}
