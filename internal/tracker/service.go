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

package tracker

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sirseerhq/prsheet/internal/config"
	prerrors "github.com/sirseerhq/prsheet/internal/errors"
	"github.com/sirseerhq/prsheet/internal/github"
	"github.com/sirseerhq/prsheet/internal/sheets"
	"github.com/sirseerhq/prsheet/internal/table"
)

// Service runs commands against one spreadsheet.
type Service struct {
	cfg    *config.Config
	sheets sheets.Client
	github github.Client
	logger zerolog.Logger
	stats  *Stats
}

// Option configures a Service.
type Option func(*Service)

// WithGitHub sets the client used by AddFromGitHubCommand.
func WithGitHub(client github.Client) Option {
	return func(s *Service) {
		s.github = client
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a service for the sheet named in cfg.
func NewService(cfg *config.Config, client sheets.Client, opts ...Option) *Service {
	s := &Service{
		cfg:    cfg,
		sheets: client,
		logger: zerolog.Nop(),
		stats:  NewStats(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns the counters collected so far.
func (s *Service) Stats() *Stats {
	return s.stats
}

// Run executes cmd and logs a summary of the remote work it did.
func (s *Service) Run(ctx context.Context, cmd Command) (*Result, error) {
	defer func() {
		s.stats.Finish()
		s.stats.Log(s.logger)
	}()

	switch c := cmd.(type) {
	case AddCommand:
		msg, err := s.Add(ctx, c.Data)
		if err != nil {
			return nil, err
		}
		return &Result{Message: msg}, nil
	case AddFromGitHubCommand:
		msg, err := s.AddFromGitHub(ctx, c.Repo, c.Number)
		if err != nil {
			return nil, err
		}
		return &Result{Message: msg}, nil
	case DoneCommand:
		msg, err := s.Done(ctx, c.Branch, c.Titles)
		if err != nil {
			return nil, err
		}
		return &Result{Message: msg}, nil
	case FetchCommand:
		snap, err := s.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		return &Result{Snapshot: &snap}, nil
	default:
		return nil, fmt.Errorf("unknown command %T", cmd)
	}
}

// Add appends one row after the sheet's table. Values are sanitized first:
// empty values become "n/a" and escaped quotes and backticks are unescaped.
func (s *Service) Add(ctx context.Context, data []string) (string, error) {
	if len(data) == 0 {
		return "", prerrors.NewSourceless(prerrors.ErrMissingConfig, "No row data provided")
	}

	row := table.SanitizeRow(data)
	rangeExpr := s.cfg.SheetRange()

	s.logger.Debug().
		Str("range", rangeExpr).
		Int("values", len(row)).
		Msg("Appending row")

	s.stats.APICall()
	if err := s.sheets.Append(ctx, s.cfg.SheetID, rangeExpr, row); err != nil {
		return "", err
	}
	s.stats.RowsWritten(1)

	return fmt.Sprintf("PR [%s] added to sheet", row[0]), nil
}

// AddFromGitHub looks up a pull request and appends its row. Columns GitHub
// does not know about (Deployable and the branch flags) are left empty and
// therefore written as "n/a".
func (s *Service) AddFromGitHub(ctx context.Context, repoArg string, number int) (string, error) {
	if s.github == nil {
		return "", prerrors.NewSourceless(prerrors.ErrMissingConfig, "GitHub token is missing")
	}

	owner, repo, err := github.ParseRepository(repoArg)
	if err != nil {
		return "", prerrors.New(prerrors.ErrMissingConfig, "Invalid repository", err)
	}

	s.logger.Debug().
		Str("repository", owner+"/"+repo).
		Int("number", number).
		Msg("Looking up pull request")

	s.stats.APICall()
	pr, err := s.github.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		return "", err
	}

	row := make([]string, len(table.Fields))
	copy(row, pr.Row())
	return s.Add(ctx, row)
}

// Done marks every row whose title prefixes one of titles as merged to
// branch and writes the rows back in one batch.
//
// The confirmation is returned even when no row matched; unmatched titles
// are only reported in the log.
func (s *Service) Done(ctx context.Context, branch table.Branch, titles []string) (string, error) {
	rangeExpr := s.cfg.SheetRange()

	s.stats.APICall()
	vr, err := s.sheets.Fetch(ctx, s.cfg.SheetID, rangeExpr)
	if err != nil {
		return "", err
	}

	records := table.Decode(vr.Values)
	s.stats.RowsRead(len(records))

	if len(vr.Values) > 0 && !slices.Contains(table.Header(vr.Values), table.FieldTitle) {
		s.logger.Warn().
			Str("range", vr.Range).
			Msg("Sheet has no Title column, no row can match")
	}

	matched := table.Locate(records, titles)
	for _, title := range table.Unmatched(records, titles) {
		s.logger.Warn().Str("title", title).Msg("No row matches title")
	}
	for _, rec := range matched {
		if missing := table.MissingFields(rec, table.Fields); len(missing) > 0 {
			s.logger.Warn().
				Str("row", rec[table.FieldRange]).
				Strs("fields", missing).
				Msg("Row lacks columns, writing them empty")
		}
	}

	updates := table.BuildUpdates(matched, branch)
	for i := range updates {
		updates[i].Range = s.cfg.QualifiedRange(updates[i].Range)
	}

	if len(updates) > 0 {
		s.logger.Debug().
			Int("rows", len(updates)).
			Str("branch", string(branch)).
			Msg("Updating rows")

		s.stats.APICall()
		if err := s.sheets.BatchUpdate(ctx, s.cfg.SheetID, updates); err != nil {
			return "", err
		}
		s.stats.RowsWritten(len(updates))
	}

	return fmt.Sprintf("PR(s) with title(s) [%s] marked as done for [%s]", debugList(titles), branch), nil
}

// Fetch reads the sheet and returns its records with the range the API
// reported.
func (s *Service) Fetch(ctx context.Context) (table.Snapshot, error) {
	s.stats.APICall()
	vr, err := s.sheets.Fetch(ctx, s.cfg.SheetID, s.cfg.SheetRange())
	if err != nil {
		return table.Snapshot{}, err
	}

	records := table.Decode(vr.Values)
	s.stats.RowsRead(len(records))

	snap := table.NewSnapshot(vr.Range, records)
	snap.Columns = table.Header(vr.Values)
	return snap, nil
}

// debugList renders titles as a bracketed list of quoted strings, e.g.
// ["PR-1", "PR-2"].
func debugList(titles []string) string {
	quoted := make([]string, len(titles))
	for i, t := range titles {
		quoted[i] = strconv.Quote(t)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
