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
	"io"
	"net/http"
	"time"

	"github.com/shurcooL/graphql"
	"github.com/sirseerhq/prsheet/internal/apierror"
	prerrors "github.com/sirseerhq/prsheet/internal/errors"
	"github.com/sirseerhq/prsheet/pkg/version"
)

// GraphQLClient implements the Client interface using GitHub's GraphQL API.
type GraphQLClient struct {
	client    *graphql.Client
	inspector apierror.Inspector
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided token and endpoint.
// Requests carry the token as a bearer credential and a prsheet User-Agent,
// and responses are capped in size.
func NewGraphQLClient(token string, endpoint string) *GraphQLClient {
	httpClient := &http.Client{
		Transport: &authTransport{
			token: token,
			base:  http.DefaultTransport,
		},
	}

	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, httpClient),
		inspector: apierror.NewInspector(),
	}
}

// GetPullRequest fetches a single pull request with the fields a sheet row needs.
func (c *GraphQLClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error) {
	var query struct {
		Repository struct {
			PullRequest struct {
				Number   graphql.Int
				Title    graphql.String
				Body     graphql.String
				URL      graphql.String
				MergedAt *time.Time

				Author struct {
					Login graphql.String `graphql:"login"`
				} `graphql:"author"`

				MergeCommit *struct {
					OID graphql.String `graphql:"oid"`
				} `graphql:"mergeCommit"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	variables := map[string]interface{}{
		"owner":  graphql.String(owner),
		"repo":   graphql.String(repo),
		"number": graphql.Int(number),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err, owner, repo, number)
	}

	node := query.Repository.PullRequest
	pr := &PullRequest{
		Number:   int(node.Number),
		Title:    string(node.Title),
		Body:     string(node.Body),
		URL:      string(node.URL),
		Author:   string(node.Author.Login),
		MergedAt: node.MergedAt,
	}
	if node.MergeCommit != nil {
		pr.MergeCommit = string(node.MergeCommit.OID)
	}

	return pr, nil
}

// mapError maps GraphQL errors to our domain errors with actionable messages
func (c *GraphQLClient) mapError(err error, owner, repo string, number int) error {
	kind := apierror.Kind(c.inspector, err)

	var message string
	switch kind {
	case prerrors.ErrRateLimit:
		message = "GitHub API rate limit exceeded. Please wait before retrying"
	case prerrors.ErrAuth:
		message = "GitHub API authentication failed. Please provide a valid token via --token flag or GITHUB_TOKEN environment variable"
	case prerrors.ErrNotFound:
		message = fmt.Sprintf("Pull request %s/%s#%d not found. Please check the repository, the number and your access permissions", owner, repo, number)
	case prerrors.ErrNetworkFailure:
		message = "Network error connecting to GitHub API. Please check your internet connection and try again"
	default:
		message = fmt.Sprintf("Could not fetch pull request %s/%s#%d", owner, repo, number)
	}

	return prerrors.New(kind, message, err)
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// authTransport adds authentication header and safety limits to HTTP requests
type authTransport struct {
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// A single PR with its body fits well under 1MB
	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      1024 * 1024,
		}
	}

	return resp, nil
}
