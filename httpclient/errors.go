package httpclient

import (
	"context"
	stderrors "errors"
	"io"
	"net"

	"github.com/kbukum/mws/errors"
)

// ClassifyError maps a failed round-trip to a timeout or transport error.
// Deadline expiry, explicit cancellation and network timeouts all count as
// timeouts.
func ClassifyError(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return errors.Timeout(op, err)
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return errors.Timeout(op, err)
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Timeout(op, err)
	}
	return errors.Transport(op, err)
}

// BodyReader reads a response body and classifies read failures the same
// way as failed round-trips, so a connection dropped mid-body is not
// mistaken for a malformed document.
type BodyReader struct {
	ctx context.Context
	r   io.Reader
	err error
}

// NewBodyReader wraps r. ctx must be the context the request was sent with.
func NewBodyReader(ctx context.Context, r io.Reader) *BodyReader {
	return &BodyReader{ctx: ctx, r: r}
}

func (b *BodyReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && err != io.EOF && b.err == nil {
		b.err = ClassifyError(b.ctx, "read response body", err)
		return n, b.err
	}
	return n, err
}

// Err returns the first read failure, or nil.
func (b *BodyReader) Err() error { return b.err }
