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

// Package errors defines the error kinds prsheet reports and the Error type
// that pairs a human-readable message with the origin of the failure.
// Kinds are sentinels so callers can classify failures with errors.Is and
// map them to exit codes when strict exit codes are enabled.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds
var (
	// ErrMissingConfig indicates a required setting (credential, sheet id,
	// sheet name) was not provided. Maps to exit code 4.
	ErrMissingConfig = errors.New("missing configuration")

	// ErrCredentials indicates the service account credential could not be
	// read or turned into an authenticator. Maps to exit code 2.
	ErrCredentials = errors.New("invalid credentials")

	// ErrAuth indicates the spreadsheet API rejected the caller.
	// Maps to exit code 2.
	ErrAuth = errors.New("authentication failed")

	// ErrNotFound indicates the spreadsheet, sheet or pull request does not
	// exist or is not accessible. Maps to exit code 2.
	ErrNotFound = errors.New("not found")

	// ErrRateLimit indicates the remote quota was exhausted.
	// Maps to exit code 2.
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrSerialization indicates the fetched snapshot could not be rendered.
	ErrSerialization = errors.New("serialization failed")

	// ErrRemote is the catch-all for other failures of a remote call.
	ErrRemote = errors.New("remote call failed")
)

// Error is a failure with a message for the user and a one-line trace of
// the underlying error's type and description.
type Error struct {
	Message string
	Origin  string

	kind   error
	source error
}

// New wraps source with a message. The kind is used for classification and
// may be nil.
func New(kind error, message string, source error) *Error {
	return &Error{
		Message: message,
		Origin:  origin(source),
		kind:    kind,
		source:  source,
	}
}

// NewSourceless creates an error that has no underlying cause.
func NewSourceless(kind error, message string) *Error {
	return &Error{
		Message: message,
		Origin:  "None",
		kind:    kind,
	}
}

// Error renders the message and origin on separate lines.
func (e *Error) Error() string {
	return e.Message + "\n" + e.Origin
}

// Unwrap exposes both the kind and the source to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	var errs []error
	if e.kind != nil {
		errs = append(errs, e.kind)
	}
	if e.source != nil {
		errs = append(errs, e.source)
	}
	return errs
}

// origin formats "<type> (<description>)" for an error.
func origin(err error) string {
	if err == nil {
		return "None"
	}
	name := strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
	return fmt.Sprintf("%s (%s)", name, err.Error())
}
