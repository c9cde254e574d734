// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestFlattenHeader(t *testing.T) {
	tests := []struct {
		name string
		in   http.Header
		want map[string]string
	}{
		{
			name: "single values",
			in:   http.Header{"Content-Type": {"application/json"}, "X-Request-Id": {"abc"}},
			want: map[string]string{"Content-Type": "application/json", "X-Request-Id": "abc"},
		},
		{
			name: "keeps first of multiple values",
			in:   http.Header{"Set-Cookie": {"a=1", "b=2"}},
			want: map[string]string{"Set-Cookie": "a=1"},
		},
		{
			name: "empty header",
			in:   http.Header{},
			want: map[string]string{},
		},
		{
			name: "key with no values dropped",
			in:   http.Header{"X-Empty": {}},
			want: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlattenHeader(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("FlattenHeader() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("FlattenHeader()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

// timeoutErr implements net.Error with Timeout() true.
type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("doing request: %w", context.DeadlineExceeded), true},
		{"net timeout", timeoutErr{}, true},
		{"plain error", errors.New("connection refused"), false},
		{"cancelled", context.Canceled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimeout(tt.err); got != tt.want {
				t.Errorf("IsTimeout(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestNewClient(t *testing.T) {
	c := NewClient(45 * time.Second)
	if c.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", c.Timeout)
	}
	if c := NewClient(0); c.Timeout != 0 {
		t.Errorf("zero timeout should mean no client deadline, got %v", c.Timeout)
	}
}
