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

package table

import (
	"fmt"
	"strings"
)

// Locate returns copies of the records whose title is a prefix of one of the
// requested titles, each tagged with its row address under FieldRange.
//
// The comparison runs requested-title-first: a request for
// "Fix parser (#12)" matches a stored title "Fix parser". Empty requested
// titles never match. Records keep their source order and each record
// matches at most once, so duplicate titles in the request change nothing.
// Titles that match no record are ignored. Records without a Title field,
// as decoded from a sheet whose header lacks the column, never match.
func Locate(records []Record, titles []string) []Record {
	var matched []Record
	for i, rec := range records {
		stored, ok := rec[FieldTitle]
		if !ok || !matchesAny(stored, titles) {
			continue
		}
		m := rec.Clone()
		m[FieldRange] = RowRange(i)
		matched = append(matched, m)
	}
	return matched
}

// Unmatched lists the non-empty requested titles that match no record.
func Unmatched(records []Record, titles []string) []string {
	var out []string
	for _, title := range titles {
		if title == "" {
			continue
		}
		found := false
		for _, rec := range records {
			if stored, ok := rec[FieldTitle]; ok && strings.HasPrefix(title, stored) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, title)
		}
	}
	return out
}

// RowRange returns the A:Z address of the record at index i of a decoded
// table. The header is row 1 and rows are 1-based.
func RowRange(i int) string {
	return fmt.Sprintf("A%d:Z%d", i+2, i+2)
}

func matchesAny(stored string, titles []string) bool {
	for _, title := range titles {
		if title != "" && strings.HasPrefix(title, stored) {
			return true
		}
	}
	return false
}
