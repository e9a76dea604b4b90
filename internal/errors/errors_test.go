// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     bool
	}{
		{
			name:     "direct missing config error",
			err:      ErrMissingConfig,
			sentinel: ErrMissingConfig,
			want:     true,
		},
		{
			name:     "wrapped auth error",
			err:      fmt.Errorf("failed to fetch: %w", ErrAuth),
			sentinel: ErrAuth,
			want:     true,
		},
		{
			name:     "different error type",
			err:      ErrNotFound,
			sentinel: ErrAuth,
			want:     false,
		},
		{
			name:     "kind carried by Error",
			err:      New(ErrNetworkFailure, "Could not fetch data", errors.New("dial tcp: timeout")),
			sentinel: ErrNetworkFailure,
			want:     true,
		},
		{
			name:     "kind of sourceless Error",
			err:      NewSourceless(ErrMissingConfig, "Credential is missing"),
			sentinel: ErrMissingConfig,
			want:     true,
		},
		{
			name:     "nil error",
			err:      nil,
			sentinel: ErrAuth,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.sentinel)
			if got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.sentinel, got, tt.want)
			}
		})
	}
}

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "sourceless",
			err:  NewSourceless(ErrMissingConfig, "Sheet ID is missing"),
			want: "Sheet ID is missing\nNone",
		},
		{
			name: "with source type and description",
			err:  New(ErrRemote, "Could not update data", &codedError{code: 500}),
			want: "Could not update data\nerrors.codedError (code 500)",
		},
		{
			name: "nil source",
			err:  New(nil, "Could not populate data", nil),
			want: "Could not populate data\nNone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_UnwrapSource(t *testing.T) {
	src := &codedError{code: 404}
	err := fmt.Errorf("outer: %w", New(ErrNotFound, "Could not fetch data", src))

	var target *codedError
	if !errors.As(err, &target) {
		t.Fatal("errors.As did not find the source error")
	}
	if target.code != 404 {
		t.Errorf("code = %d, want 404", target.code)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrMissingConfig, "missing configuration"},
		{ErrCredentials, "invalid credentials"},
		{ErrAuth, "authentication failed"},
		{ErrNotFound, "not found"},
		{ErrRateLimit, "rate limit exceeded"},
		{ErrNetworkFailure, "network connection failed"},
		{ErrSerialization, "serialization failed"},
		{ErrRemote, "remote call failed"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
