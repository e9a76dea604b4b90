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

import "fmt"

// Branch is the merge target a PR is marked done for.
type Branch string

const (
	// BranchRC is the release-candidate branch; it sets the RC column.
	BranchRC Branch = "rc"
	// BranchMaster is the production branch; it sets the Production column.
	BranchMaster Branch = "master"
)

// ParseBranch validates a branch name.
func ParseBranch(s string) (Branch, error) {
	switch Branch(s) {
	case BranchRC, BranchMaster:
		return Branch(s), nil
	default:
		return "", fmt.Errorf("unknown branch %q (expected rc or master)", s)
	}
}

// Update is one addressed row of a batch write.
type Update struct {
	Range  string
	Values []string
}

// BuildUpdate produces the row written back for a matched record. All fixed
// schema fields are copied verbatim except the flag for branch, which is
// forced to TRUE. The other flag keeps its prior value.
func BuildUpdate(rec Record, branch Branch) Update {
	values := Encode(rec, Fields)

	switch branch {
	case BranchRC:
		values[flagIndex(FieldRC)] = flagTrue
	case BranchMaster:
		values[flagIndex(FieldProduction)] = flagTrue
	}

	return Update{
		Range:  rec[FieldRange],
		Values: values,
	}
}

// BuildUpdates applies BuildUpdate to every matched record.
func BuildUpdates(matched []Record, branch Branch) []Update {
	updates := make([]Update, 0, len(matched))
	for _, rec := range matched {
		updates = append(updates, BuildUpdate(rec, branch))
	}
	return updates
}

func flagIndex(field string) int {
	for i, f := range Fields {
		if f == field {
			return i
		}
	}
	panic("table: unknown flag field " + field)
}
