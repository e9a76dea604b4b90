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

package testutil

import (
	"time"
)

// SheetHeader is the header row of a PR tracking sheet.
var SheetHeader = []interface{}{
	"Number", "Title", "Description", "Author", "URL",
	"Commit Hash", "Merged Date", "Deployable", "RC", "Production",
}

// TableBuilder assembles a raw sheet grid row by row.
type TableBuilder struct {
	rows [][]interface{}
}

// NewTableBuilder starts a table with the standard PR header.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{rows: [][]interface{}{SheetHeader}}
}

// WithHeader replaces the header row.
func (b *TableBuilder) WithHeader(labels ...interface{}) *TableBuilder {
	b.rows[0] = labels
	return b
}

// WithRow appends a data row. Rows may be shorter than the header, as the
// API omits trailing empty cells.
func (b *TableBuilder) WithRow(cells ...interface{}) *TableBuilder {
	b.rows = append(b.rows, cells)
	return b
}

// WithPR appends a full-width row for a PR with the given flags.
func (b *TableBuilder) WithPR(number, title, rc, production string) *TableBuilder {
	return b.WithRow(number, title, "desc "+number, "dev", "https://github.com/acme/api/pull/"+number,
		"sha"+number, "2025-03-01", "TRUE", rc, production)
}

// Build returns the grid.
func (b *TableBuilder) Build() [][]interface{} {
	return b.rows
}

// PullRequestBuilder provides a fluent interface for building GraphQL
// pull request nodes.
type PullRequestBuilder struct {
	number      int
	title       string
	body        string
	url         string
	author      string
	mergeCommit string
	mergedAt    *time.Time
}

// NewPullRequestBuilder creates a new PR builder with default values
func NewPullRequestBuilder(number int) *PullRequestBuilder {
	return &PullRequestBuilder{
		number: number,
		title:  "Test PR " + itoa(number),
		url:    "https://github.com/acme/api/pull/" + itoa(number),
		author: "testuser",
	}
}

// WithTitle sets the PR title
func (b *PullRequestBuilder) WithTitle(title string) *PullRequestBuilder {
	b.title = title
	return b
}

// WithBody sets the PR body
func (b *PullRequestBuilder) WithBody(body string) *PullRequestBuilder {
	b.body = body
	return b
}

// WithAuthor sets the PR author
func (b *PullRequestBuilder) WithAuthor(author string) *PullRequestBuilder {
	b.author = author
	return b
}

// WithMerge marks the PR as merged by commit at t
func (b *PullRequestBuilder) WithMerge(commit string, t time.Time) *PullRequestBuilder {
	b.mergeCommit = commit
	b.mergedAt = &t
	return b
}

// Build creates the PR node as a map for JSON serialization
func (b *PullRequestBuilder) Build() map[string]interface{} {
	pr := map[string]interface{}{
		"number":      b.number,
		"title":       b.title,
		"body":        b.body,
		"url":         b.url,
		"author":      map[string]interface{}{"login": b.author},
		"mergedAt":    nil,
		"mergeCommit": nil,
	}

	if b.mergedAt != nil {
		pr["mergedAt"] = b.mergedAt.Format(time.RFC3339)
		pr["mergeCommit"] = map[string]interface{}{"oid": b.mergeCommit}
	}

	return pr
}
