package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pdfqa/internal/llm"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), "   ")
	assert.Error(t, err)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "context deadline",
			err:  fmt.Errorf("rpc: %w", context.DeadlineExceeded),
			want: llm.ErrDeadlineExceeded,
		},
		{
			name: "http 400",
			err:  &googleapi.Error{Code: 400, Message: "bad request"},
			want: llm.ErrInvalidInput,
		},
		{
			name: "http 429",
			err:  &googleapi.Error{Code: 429, Message: "quota"},
			want: llm.ErrQuotaExhausted,
		},
		{
			name: "http 503",
			err:  &googleapi.Error{Code: 503, Message: "backend"},
			want: llm.ErrUnavailable,
		},
		{
			name: "http 504",
			err:  &googleapi.Error{Code: 504, Message: "slow"},
			want: llm.ErrDeadlineExceeded,
		},
		{
			name: "grpc invalid argument",
			err:  status.Error(codes.InvalidArgument, "bad input"),
			want: llm.ErrInvalidInput,
		},
		{
			name: "grpc resource exhausted",
			err:  status.Error(codes.ResourceExhausted, "rate limit"),
			want: llm.ErrQuotaExhausted,
		},
		{
			name: "grpc deadline exceeded",
			err:  status.Error(codes.DeadlineExceeded, "timeout"),
			want: llm.ErrDeadlineExceeded,
		},
		{
			name: "grpc unavailable",
			err:  status.Error(codes.Unavailable, "down"),
			want: llm.ErrUnavailable,
		},
		{
			name: "network error",
			err:  &net.OpError{Op: "dial", Err: &timeoutErr{}},
			want: llm.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(tt.err), tt.want)
		})
	}

	t.Run("unknown error stays generic", func(t *testing.T) {
		err := mapError(errors.New("something odd"))
		assert.Error(t, err)
		for _, sentinel := range []error{llm.ErrInvalidInput, llm.ErrQuotaExhausted, llm.ErrDeadlineExceeded, llm.ErrUnavailable} {
			assert.NotErrorIs(t, err, sentinel)
		}
	})
}

// timeoutErr is a minimal net.Error for the connectivity mapping test.
type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}
