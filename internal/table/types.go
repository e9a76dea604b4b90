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

// RawTable is a grid of cells as returned by the spreadsheet API. Row 0 is
// the header. Cells are loosely typed; only strings carry meaning.
type RawTable [][]interface{}

// Record maps a header label to the cell value of one data row.
type Record map[string]string

// Column labels of the fixed schema written back by the done operation.
const (
	FieldNumber      = "Number"
	FieldTitle       = "Title"
	FieldDescription = "Description"
	FieldAuthor      = "Author"
	FieldURL         = "URL"
	FieldCommitHash  = "Commit Hash"
	FieldMergedDate  = "Merged Date"
	FieldDeployable  = "Deployable"
	FieldRC          = "RC"
	FieldProduction  = "Production"

	// FieldRange is the synthetic key Locate attaches to matched records.
	FieldRange = "range"
)

// Fields is the column order of every row written by BuildUpdate.
var Fields = []string{
	FieldNumber,
	FieldTitle,
	FieldDescription,
	FieldAuthor,
	FieldURL,
	FieldCommitHash,
	FieldMergedDate,
	FieldDeployable,
	FieldRC,
	FieldProduction,
}

// Flag value written into the RC or Production column.
const flagTrue = "TRUE"

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	return out
}
