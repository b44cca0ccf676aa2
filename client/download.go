package client

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"hash"
	"io"
	"time"

	"github.com/kbukum/mws/errors"
	"github.com/kbukum/mws/httpclient"
	"github.com/kbukum/mws/logger"
	"github.com/kbukum/mws/params"
)

// ContentMD5Header carries the base64 MD5 digest of a raw body.
const ContentMD5Header = "Content-MD5"

// Download is the outcome of a raw-body call.
type Download struct {
	// Bytes is the number of bytes written to the sink.
	Bytes int64
	// ContentMD5 is the digest announced by the service.
	ContentMD5 string
	RequestID  string
}

// Download sends op and streams the raw response body into w. The response
// must carry a Content-MD5 header. When VerifyContentMD5 is set the body is
// checked against it after the copy. Downloads are never retried since the
// sink may already hold part of the body. When the copy fails part way the
// returned Download reports how many bytes reached w.
func (c *Client) Download(ctx context.Context, op Operation, p params.Value, w io.Writer) (*Download, error) {
	pairs, err := encode(p)
	if err != nil {
		return nil, err
	}

	scope := c.begin(ctx, op)
	dl, err := c.download(scope, op, pairs, w)
	var requestID string
	extra := map[string]any{}
	if dl != nil {
		requestID = dl.RequestID
		extra[logger.FieldBytes] = dl.Bytes
		scope.call.Downloaded(scope.ctx, dl.Bytes)
	}
	scope.end(err, requestID, extra)
	return dl, err
}

func (c *Client) download(s callScope, op Operation, pairs params.Pairs, w io.Writer) (*Download, error) {
	// The timeout covers the exchange up to the response headers; the body
	// is bounded by the caller's context only.
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	timer := time.AfterFunc(c.cfg.Timeout, cancel)

	resp, err := c.send(ctx, op, pairs)
	if !timer.Stop() && err == nil {
		_ = resp.Close()
		return nil, errors.Timeout("download headers", context.DeadlineExceeded)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Close() }()

	body := httpclient.NewBodyReader(ctx, resp.Body)
	headerID := resp.Header(RequestIDHeader)
	s.call.SetResponse(resp.StatusCode, headerID)

	if !resp.IsSuccess() {
		return nil, serviceError(resp.StatusCode, headerID, body)
	}

	announced := resp.Header(ContentMD5Header)
	if announced == "" {
		return nil, errors.MissingHeader(ContentMD5Header).WithDetail(errors.DetailRequestID, headerID)
	}

	dl := &Download{ContentMD5: announced, RequestID: headerID}
	var digest hash.Hash
	dst := w
	if c.cfg.VerifyContentMD5 {
		digest = md5.New()
		dst = io.MultiWriter(w, digest)
	}

	dl.Bytes, err = io.Copy(dst, body)
	if err != nil {
		if body.Err() != nil {
			return dl, body.Err()
		}
		appErr := errors.Transport("write download sink", err)
		appErr.Retryable = false
		return dl, appErr
	}

	if digest != nil {
		actual := base64.StdEncoding.EncodeToString(digest.Sum(nil))
		if actual != announced {
			return dl, errors.Protocol("body does not match Content-MD5", nil).
				WithDetails(map[string]any{
					ContentMD5Header:       announced,
					"actual_md5":           actual,
					errors.DetailRequestID: headerID,
				})
		}
	}
	return dl, nil
}
