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

// Package table holds the pure transformations between the tabular data a
// spreadsheet returns (a header row followed by data rows) and the keyed
// records the rest of prsheet works with.
//
// Nothing in this package performs I/O. The functions are deterministic and
// operate on whole inputs:
//   - Decode turns a raw cell grid into records, one per data row
//   - Locate finds the records whose titles a request refers to and tags
//     them with their row address
//   - BuildUpdate produces the row written back when a PR is marked done
//   - Serialize renders a fetched snapshot as JSON
//   - SanitizeRow cleans user-supplied cells before they are appended
//
// Row addresses follow the spreadsheet's 1-based numbering. The header
// occupies row 1, so the record at index i lives on row i+2.
package table
