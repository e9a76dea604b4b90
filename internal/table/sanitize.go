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

import "strings"

// Placeholder stored in place of an empty appended cell.
const placeholder = "n/a"

var unescaper = strings.NewReplacer(`\"`, `"`, "\\`", "`")

// SanitizeRow prepares user-supplied values for appending. Empty values
// become "n/a"; shell-escaped quotes and backticks are unescaped.
func SanitizeRow(items []string) []string {
	row := make([]string, len(items))
	for i, item := range items {
		if item == "" {
			row[i] = placeholder
			continue
		}
		row[i] = unescaper.Replace(item)
	}
	return row
}
