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

// ValueRange is the result of a fetch: the range the API resolved and the
// cells it holds, header row first.
type ValueRange struct {
	Range  string
	Values table.RawTable
}

// Client defines the spreadsheet operations prsheet performs.
// This interface allows for easy mocking in tests.
type Client interface {
	// Fetch returns the cells in rangeExpr, e.g. "Releases!A:Z". An empty
	// sheet yields a ValueRange with no values.
	Fetch(ctx context.Context, sheetID, rangeExpr string) (*ValueRange, error)

	// Append adds row after the last row of the table found in rangeExpr.
	Append(ctx context.Context, sheetID, rangeExpr string, row []string) error

	// BatchUpdate writes each update to its own range in a single call.
	// Update ranges must be qualified with the sheet name.
	BatchUpdate(ctx context.Context, sheetID string, updates []table.Update) error
}
