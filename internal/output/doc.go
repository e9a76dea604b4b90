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

// Package output renders a fetched sheet snapshot for the caller. Three
// formats are supported:
//   - json: the snapshot as one compact JSON document, {"range": ..., "values": [...]}
//   - ndjson: one JSON object per row, for streaming into line-oriented tools
//   - xlsx: a workbook holding the header and rows, for offline review
//
// Example usage:
//
//	w, err := output.NewSnapshotWriter(output.FormatNDJSON, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := w.WriteSnapshot(snap); err != nil {
//	    log.Fatal(err)
//	}
package output
