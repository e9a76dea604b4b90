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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleRecords() []Record {
	return []Record{
		{"Number": "1", "Title": "PR-1"},
		{"Number": "2", "Title": "Fix parser"},
		{"Number": "3", "Title": "PR-3"},
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   []Record
	}{
		{
			name:   "requested title extends stored title",
			titles: []string{"PR-1 extra text"},
			want:   []Record{{"Number": "1", "Title": "PR-1", "range": "A2:Z2"}},
		},
		{
			name:   "stored title longer than request does not match",
			titles: []string{"Fix"},
			want:   nil,
		},
		{
			name:   "empty title never matches",
			titles: []string{""},
			want:   nil,
		},
		{
			name:   "multiple titles keep source order",
			titles: []string{"PR-3", "Fix parser (#2)"},
			want: []Record{
				{"Number": "2", "Title": "Fix parser", "range": "A3:Z3"},
				{"Number": "3", "Title": "PR-3", "range": "A4:Z4"},
			},
		},
		{
			name:   "unknown title ignored",
			titles: []string{"nothing like it"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Locate(sampleRecords(), tt.titles)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Locate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLocate_DuplicateTitlesIdempotent(t *testing.T) {
	once := Locate(sampleRecords(), []string{"PR-3"})
	twice := Locate(sampleRecords(), []string{"PR-3", "PR-3"})

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("duplicate titles changed the match set (-once +twice):\n%s", diff)
	}
}

func TestLocate_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	Locate(records, []string{"PR-1"})

	if _, ok := records[0][FieldRange]; ok {
		t.Error("Locate added a range to the source record")
	}
}

func TestRowRange(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "A2:Z2"},
		{1, "A3:Z3"},
		{9, "A11:Z11"},
	}

	for _, tt := range tests {
		if got := RowRange(tt.index); got != tt.want {
			t.Errorf("RowRange(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestUnmatched(t *testing.T) {
	got := Unmatched(sampleRecords(), []string{"", "PR-1 tail", "missing", "also missing"})
	want := []string{"missing", "also missing"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unmatched() mismatch (-want +got):\n%s", diff)
	}
}

func TestLocate_WithoutTitleColumn(t *testing.T) {
	raw := RawTable{
		{"Number", "Name", "RC", "Production"},
		{"1", "keep me", "", ""},
		{"2", "and me", "", ""},
	}
	records := Decode(raw)

	if got := Locate(records, []string{"PR-1"}); len(got) != 0 {
		t.Errorf("Locate() matched %d rows of a sheet without a Title column: %v", len(got), got)
	}
	if diff := cmp.Diff([]string{"PR-1"}, Unmatched(records, []string{"PR-1"})); diff != "" {
		t.Errorf("Unmatched() mismatch (-want +got):\n%s", diff)
	}
}

func TestLocate_EmptyStoredTitleStillMatches(t *testing.T) {
	records := []Record{{"Number": "1", "Title": ""}}

	got := Locate(records, []string{"anything"})
	want := []Record{{"Number": "1", "Title": "", "range": "A2:Z2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Locate() mismatch (-want +got):\n%s", diff)
	}
}
