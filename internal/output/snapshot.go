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

package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirseerhq/prsheet/internal/table"
	"github.com/xuri/excelize/v2"
)

// Supported formats
const (
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatXLSX   = "xlsx"
)

// NewSnapshotWriter returns the writer for format, writing to w.
func NewSnapshotWriter(format string, w io.Writer) (SnapshotWriter, error) {
	switch format {
	case FormatJSON, "":
		return &JSONWriter{output: w}, nil
	case FormatNDJSON:
		return NewWriter(w), nil
	case FormatXLSX:
		return &XLSXWriter{output: w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// JSONWriter writes the snapshot as a single compact JSON line.
type JSONWriter struct {
	output io.Writer
}

// WriteSnapshot implements SnapshotWriter.
func (j *JSONWriter) WriteSnapshot(snap table.Snapshot) error {
	data, err := table.Serialize(snap.Range, snap.Values)
	if err != nil {
		return err
	}
	if _, err := j.output.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// XLSXWriter writes the snapshot as an Excel workbook with one sheet named
// after the fetched range.
type XLSXWriter struct {
	output io.Writer
}

// defaultSheet is the sheet excelize creates in a new workbook.
const defaultSheet = "Sheet1"

// WriteSnapshot implements SnapshotWriter.
func (x *XLSXWriter) WriteSnapshot(snap table.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := defaultSheet
	if name := sheetName(snap.Range); name != "" && name != defaultSheet {
		if err := f.SetSheetName(defaultSheet, name); err == nil {
			sheet = name
		}
	}

	columns := snapshotColumns(snap)
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range snap.Values {
		row := make([]interface{}, len(columns))
		for j, c := range columns {
			row[j] = rec[c]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(x.output); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// sheetName extracts "Releases" from "Releases!A1:Z9", dropping the quotes
// the API adds around names with spaces.
func sheetName(rangeAddr string) string {
	name, _, ok := strings.Cut(rangeAddr, "!")
	if !ok {
		return ""
	}
	return strings.Trim(name, "'")
}

// snapshotColumns returns the header order. Snapshots built without one
// fall back to the fixed schema followed by any other labels, sorted.
func snapshotColumns(snap table.Snapshot) []string {
	if len(snap.Columns) > 0 {
		return snap.Columns
	}

	seen := make(map[string]bool)
	var columns []string
	for _, f := range table.Fields {
		for _, rec := range snap.Values {
			if _, ok := rec[f]; ok {
				columns = append(columns, f)
				seen[f] = true
				break
			}
		}
	}

	var extra []string
	for _, rec := range snap.Values {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				extra = append(extra, k)
			}
		}
	}
	sort.Strings(extra)

	return append(columns, extra...)
}
