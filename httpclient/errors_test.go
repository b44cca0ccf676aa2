package httpclient

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/kbukum/mws/errors"
)

type brokenReader struct{ err error }

func (b brokenReader) Read([]byte) (int, error) { return 0, b.err }

func TestBodyReader(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name     string
		ctx      context.Context
		r        io.Reader
		wantCode errors.ErrorCode
	}{
		{name: "clean read", ctx: context.Background(), r: strings.NewReader("<a/>")},
		{name: "connection reset", ctx: context.Background(), r: brokenReader{stderrors.New("connection reset")}, wantCode: errors.ErrCodeTransport},
		{name: "deadline", ctx: cancelled, r: brokenReader{context.Canceled}, wantCode: errors.ErrCodeTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := NewBodyReader(tt.ctx, tt.r)
			_, err := io.ReadAll(body)
			if tt.wantCode == "" {
				if err != nil || body.Err() != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.HasCode(err, tt.wantCode) {
				t.Errorf("ReadAll error = %v, want %s", err, tt.wantCode)
			}
			if !errors.HasCode(body.Err(), tt.wantCode) {
				t.Errorf("Err() = %v, want %s", body.Err(), tt.wantCode)
			}
		})
	}
}
