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

package sheets

import (
	"context"

	"github.com/sirseerhq/prsheet/internal/table"
)

// AppendCall records one Append made against the mock.
type AppendCall struct {
	SheetID string
	Range   string
	Row     []string
}

// BatchUpdateCall records one BatchUpdate made against the mock.
type BatchUpdateCall struct {
	SheetID string
	Updates []table.Update
}

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// Table and Range are returned by Fetch
	Table table.RawTable
	Range string

	// Errors to return per call
	FetchError  error
	AppendError error
	UpdateError error

	// Track calls for verification
	FetchCount   int
	LastFetch    string
	Appends      []AppendCall
	BatchUpdates []BatchUpdateCall
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Table: generateTestTable(),
		Range: "Sheet1!A1:Z4",
	}
}

// Fetch implements the Client interface
func (m *MockClient) Fetch(ctx context.Context, sheetID, rangeExpr string) (*ValueRange, error) {
	m.FetchCount++
	m.LastFetch = rangeExpr

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.FetchError != nil {
		return nil, m.FetchError
	}

	return &ValueRange{Range: m.Range, Values: m.Table}, nil
}

// Append implements the Client interface
func (m *MockClient) Append(ctx context.Context, sheetID, rangeExpr string, row []string) error {
	if m.AppendError != nil {
		return m.AppendError
	}
	m.Appends = append(m.Appends, AppendCall{SheetID: sheetID, Range: rangeExpr, Row: row})
	return nil
}

// BatchUpdate implements the Client interface
func (m *MockClient) BatchUpdate(ctx context.Context, sheetID string, updates []table.Update) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.BatchUpdates = append(m.BatchUpdates, BatchUpdateCall{SheetID: sheetID, Updates: updates})
	return nil
}

// generateTestTable creates a sheet with the full schema and three PRs
func generateTestTable() table.RawTable {
	header := make([]interface{}, len(table.Fields))
	for i, f := range table.Fields {
		header[i] = f
	}

	return table.RawTable{
		header,
		{"101", "Add new feature for data processing", "Streams rows", "alice",
			"https://github.com/acme/api/pull/101", "9f1c2ab", "2025-03-01", "TRUE", "", ""},
		{"102", "Fix memory leak in parser", "Frees buffers", "bob",
			"https://github.com/acme/api/pull/102", "77d0e11", "2025-03-02", "TRUE", "TRUE", ""},
		{"103", "Update documentation", "", "charlie",
			"https://github.com/acme/api/pull/103", "", "", "FALSE"},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithTable sets the cells Fetch returns
func WithTable(raw table.RawTable) MockClientOption {
	return func(m *MockClient) {
		m.Table = raw
	}
}

// WithFetchError makes Fetch fail with err
func WithFetchError(err error) MockClientOption {
	return func(m *MockClient) {
		m.FetchError = err
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
