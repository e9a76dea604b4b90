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

// Package console prints the one-line outcome of a command. Success goes to
// stdout and errors to stderr, styled with lipgloss when the stream is a
// terminal and plain otherwise.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled outcome messages.
type Printer struct {
	out io.Writer
	err io.Writer

	success lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter creates a printer for the given streams. Color is detected per
// stream, so redirected output carries no escape codes.
func NewPrinter(out, errOut io.Writer) *Printer {
	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)

	return &Printer{
		out:     out,
		err:     errOut,
		success: outRenderer.NewStyle().Foreground(lipgloss.Color("2")),
		failure: errRenderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Success prints a success message to the output stream.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, render(p.success, msg))
}

// Error prints an error message to the error stream.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.err, render(p.failure, msg))
}

// render styles each line on its own so multi-line messages are not padded
// to a common width.
func render(style lipgloss.Style, msg string) string {
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
