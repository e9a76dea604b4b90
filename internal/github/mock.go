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
	"context"
	"fmt"
	"time"

	prerrors "github.com/sirseerhq/prsheet/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// PullRequests to return, keyed by number
	PullRequests map[int]PullRequest

	// Error to return
	Error error

	// Track calls for verification
	CallCount  int
	LastOwner  string
	LastRepo   string
	LastNumber int
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		PullRequests: generateTestPRs(),
	}
}

// GetPullRequest implements the Client interface
func (m *MockClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error) {
	m.CallCount++
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastNumber = number

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.Error != nil {
		return nil, m.Error
	}

	pr, ok := m.PullRequests[number]
	if !ok {
		return nil, prerrors.New(prerrors.ErrNotFound,
			fmt.Sprintf("Pull request %s/%s#%d not found", owner, repo, number), nil)
	}
	return &pr, nil
}

// generateTestPRs creates sample pull request data for testing
func generateTestPRs() map[int]PullRequest {
	merged := time.Date(2025, 3, 2, 15, 4, 5, 0, time.UTC)

	return map[int]PullRequest{
		1233: {
			Number:      1233,
			Title:       "Fix memory leak in parser",
			Body:        "Frees the scratch buffer after each document.",
			URL:         "https://github.com/acme/api/pull/1233",
			Author:      "bob",
			MergeCommit: "77d0e11c",
			MergedAt:    &merged,
		},
		1234: {
			Number: 1234,
			Title:  "Add new feature for data processing",
			URL:    "https://github.com/acme/api/pull/1234",
			Author: "alice",
		},
	}
}
