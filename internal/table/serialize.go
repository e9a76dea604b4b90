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
	"encoding/json"
	"fmt"
)

// Snapshot is the external form of a fetched sheet: the range the API
// reported and one record per data row.
type Snapshot struct {
	Range  string   `json:"range"`
	Values []Record `json:"values"`

	// Columns is the header order, used by tabular renderings. It is not
	// part of the serialized form.
	Columns []string `json:"-"`
}

// NewSnapshot builds a snapshot, normalizing a nil record slice to empty so
// the serialized values field is always an array.
func NewSnapshot(rangeAddr string, records []Record) Snapshot {
	if records == nil {
		records = []Record{}
	}
	return Snapshot{Range: rangeAddr, Values: records}
}

// Serialize renders the range and records as compact JSON.
func Serialize(rangeAddr string, records []Record) ([]byte, error) {
	data, err := json.Marshal(NewSnapshot(rangeAddr, records))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize sheet data: %w", err)
	}
	return data, nil
}
