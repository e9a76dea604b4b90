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

package github

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PullRequest is the subset of a GitHub pull request that fills a sheet row.
type PullRequest struct {
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	URL         string     `json:"url"`
	Author      string     `json:"author"`
	MergeCommit string     `json:"merge_commit,omitempty"`
	MergedAt    *time.Time `json:"merged_at,omitempty"`
}

// mergedDateLayout is how the Merged Date column is written.
const mergedDateLayout = "2006-01-02"

// Row returns the PR's values for the Number through Merged Date columns.
// Deployable and the branch flags are left for the sheet's owners.
func (pr *PullRequest) Row() []string {
	merged := ""
	if pr.MergedAt != nil {
		merged = pr.MergedAt.UTC().Format(mergedDateLayout)
	}

	return []string{
		strconv.Itoa(pr.Number),
		pr.Title,
		pr.Body,
		pr.Author,
		pr.URL,
		pr.MergeCommit,
		merged,
	}
}

// ParseRepository parses an owner/repo string into its components.
func ParseRepository(repoArg string) (owner, repo string, err error) {
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	return owner, repo, nil
}
