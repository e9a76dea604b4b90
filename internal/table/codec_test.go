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

var header = []interface{}{
	"Number", "Title", "Description", "Author", "URL",
	"Commit Hash", "Merged Date", "Deployable", "RC", "Production",
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  RawTable
		want []Record
	}{
		{
			name: "nil table",
			raw:  nil,
			want: []Record{},
		},
		{
			name: "header only",
			raw:  RawTable{{"Number", "Title"}},
			want: []Record{},
		},
		{
			name: "empty header label dropped without shifting columns",
			raw: RawTable{
				{"h1", "h2", "", "h3"},
				{"a", "b", "c", "d"},
			},
			want: []Record{{"h1": "a", "h2": "b", "h3": "d"}},
		},
		{
			name: "ragged row decodes missing cells as empty",
			raw: RawTable{
				{"Number", "Title", "RC"},
				{"12"},
			},
			want: []Record{{"Number": "12", "Title": "", "RC": ""}},
		},
		{
			name: "non-string cells decode as empty",
			raw: RawTable{
				{"Number", "Merged", 7},
				{float64(12), true, "ignored"},
			},
			want: []Record{{"Number": "", "Merged": ""}},
		},
		{
			name: "source order preserved",
			raw: RawTable{
				{"Title"},
				{"first"},
				{"second"},
				{"third"},
			},
			want: []Record{{"Title": "first"}, {"Title": "second"}, {"Title": "third"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	rec := Record{"Number": "7", "Title": "Add cache", "RC": "FALSE"}

	got := Encode(rec, []string{"Title", "Author", "RC", "Number"})
	want := []string{"Add cache", "", "FALSE", "7"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingFields(t *testing.T) {
	rec := Record{"Number": "7", "Title": "Add cache", "RC": ""}

	got := MissingFields(rec, []string{"Number", "Title", "Author", "RC", "Production"})
	want := []string{"Author", "Production"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MissingFields() mismatch (-want +got):\n%s", diff)
	}

	if got := MissingFields(rec, []string{"Number"}); got != nil {
		t.Errorf("MissingFields() = %v, want nil", got)
	}
}

func TestHeader(t *testing.T) {
	got := Header(RawTable{{"Number", "", 3, "Title"}, {"1", "x", "y", "z"}})
	want := []string{"Number", "Title"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Header() mismatch (-want +got):\n%s", diff)
	}

	if got := Header(nil); got != nil {
		t.Errorf("Header(nil) = %v, want nil", got)
	}
}
