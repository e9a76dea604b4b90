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

// Package github looks up a single pull request through GitHub's GraphQL
// API so a row can be added from the PR itself instead of hand-typed values.
//
// The package includes:
//   - A Client interface for fetching one pull request
//   - A GraphQL implementation using the shurcooL/graphql library
//   - Mock client for testing
//
// Basic usage:
//
//	client := github.NewGraphQLClient("your-github-token", "https://api.github.com/graphql")
//	pr, err := client.GetPullRequest(ctx, "acme", "api", 42)
//	if err != nil {
//	    // Handle error
//	}
//	row := pr.Row()
package github
