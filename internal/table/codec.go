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

// column is a retained header label and the position it came from.
type column struct {
	label string
	index int
}

// Decode converts a raw grid into records, one per data row, in source order.
//
// Header cells that are empty or not strings are dropped from the schema.
// Every retained label reads the cell at its own column index, so a dropped
// header does not shift the columns after it. Cells past the end of a short
// row, and cells that are not strings, decode to the empty string.
//
// A nil or header-only table yields an empty, non-nil slice.
func Decode(raw RawTable) []Record {
	records := []Record{}
	if len(raw) == 0 {
		return records
	}

	columns := headerColumns(raw[0])
	for _, row := range raw[1:] {
		rec := make(Record, len(columns))
		for _, col := range columns {
			rec[col.label] = cellString(row, col.index)
		}
		records = append(records, rec)
	}

	return records
}

// Header returns the retained header labels in column order.
func Header(raw RawTable) []string {
	if len(raw) == 0 {
		return nil
	}
	columns := headerColumns(raw[0])
	labels := make([]string, len(columns))
	for i, col := range columns {
		labels[i] = col.label
	}
	return labels
}

// Encode returns the record's values in the order of fields. Fields the
// record does not carry encode to the empty string.
func Encode(rec Record, fields []string) []string {
	cells := make([]string, len(fields))
	for i, field := range fields {
		cells[i] = rec[field]
	}
	return cells
}

// MissingFields reports which of fields are absent from the record.
func MissingFields(rec Record, fields []string) []string {
	var missing []string
	for _, field := range fields {
		if _, ok := rec[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

func headerColumns(header []interface{}) []column {
	columns := make([]column, 0, len(header))
	for i, cell := range header {
		label, ok := cell.(string)
		if !ok || label == "" {
			continue
		}
		columns = append(columns, column{label: label, index: i})
	}
	return columns
}

func cellString(row []interface{}, index int) string {
	if index >= len(row) {
		return ""
	}
	if s, ok := row[index].(string); ok {
		return s
	}
	return ""
}
