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

package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/sirseerhq/prsheet/internal/config"
	"github.com/sirseerhq/prsheet/internal/console"
	prerrors "github.com/sirseerhq/prsheet/internal/errors"
	"github.com/sirseerhq/prsheet/internal/github"
	"github.com/sirseerhq/prsheet/internal/logging"
	"github.com/sirseerhq/prsheet/internal/sheets"
	"github.com/sirseerhq/prsheet/internal/tracker"
	"github.com/sirseerhq/prsheet/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)
	os.Exit(a.execute(context.Background(), os.Args[1:]))
}

// sheetsDialer opens the spreadsheet client for a resolved configuration.
type sheetsDialer func(ctx context.Context, cfg *config.Config) (sheets.Client, error)

// githubFactory creates the client used by add --repo --pr.
type githubFactory func(token, endpoint string) github.Client

// app holds the state of one invocation: its streams, the collaborators it
// creates, and the global flags.
type app struct {
	stdout io.Writer
	stderr io.Writer

	dialSheets sheetsDialer
	newGitHub  githubFactory

	configPath string
	verbose    bool
	flags      config.Flags

	cfg *config.Config
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:     stdout,
		stderr:     stderr,
		dialSheets: dialGoogleSheets,
		newGitHub: func(token, endpoint string) github.Client {
			return github.NewGraphQLClient(token, endpoint)
		},
	}
}

func dialGoogleSheets(ctx context.Context, cfg *config.Config) (sheets.Client, error) {
	return sheets.Dial(ctx, cfg.Credential, cfg.Sheets.Endpoint)
}

func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prsheet",
		Short: "Track pull requests in a Google Sheets spreadsheet",
		Long: `prsheet records pull request lifecycle events in a Google Sheets
spreadsheet. Each PR is one row; marking a PR done for rc or master sets its
RC or Production column to TRUE.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	a.bindGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	rootCmd.AddCommand(
		a.newAddCommand(),
		a.newDoneCommand(),
		a.newFetchCommand(),
	)

	return rootCmd
}

// bindGlobalFlags registers the flags shared by every command.
func (a *app) bindGlobalFlags(pf *pflag.FlagSet) {
	pf.StringVar(&a.flags.Credential, "credential", "", "Path to a Google service account key (JSON)")
	pf.StringVar(&a.flags.SheetID, "sheet-id", "", "Spreadsheet ID")
	pf.StringVar(&a.flags.SheetName, "sheet-name", "", "Name of the sheet holding the PR rows")
	pf.StringVar(&a.configPath, "config", "", "Config file (default: .prsheet.yaml or ~/.prsheet/config.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")
	pf.BoolVar(&a.flags.StrictExit, "strict-exit", false, "Exit non-zero when a command fails")
}

// execute runs the CLI with args and returns the process exit code.
func (a *app) execute(ctx context.Context, args []string) int {
	rootCmd := a.rootCommand()
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	a.printer().Error(userMessage(err))
	return a.exitCode(err)
}

// userMessage renders err for the error stream. Missing settings print as a
// bare message since they have no underlying cause to trace.
func userMessage(err error) string {
	var e *prerrors.Error
	if errors.As(err, &e) && e.Origin == "None" && errors.Is(err, prerrors.ErrMissingConfig) {
		return e.Message
	}
	return err.Error()
}

// exitCode returns 0 unless strict exit codes were requested. Without a
// loaded configuration only the flag and the environment are consulted.
func (a *app) exitCode(err error) int {
	strict := a.flags.StrictExit
	if a.cfg != nil {
		strict = strict || a.cfg.StrictExitCodes
	} else {
		strict = strict || config.StrictExitFromEnv()
	}
	if !strict {
		return 0
	}
	return mapErrorToExitCode(err)
}

// resolve loads and validates the configuration. Configuration problems
// are reported before any credential is read.
func (a *app) resolve() (*config.Config, error) {
	cfg, err := config.Resolve(a.configPath, a.flags)
	if err != nil {
		return nil, prerrors.New(prerrors.ErrMissingConfig, "Could not load configuration", err)
	}
	a.cfg = cfg

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// connect opens the spreadsheet and returns a service bound to it.
func (a *app) connect(ctx context.Context, cfg *config.Config, opts ...tracker.Option) (*tracker.Service, error) {
	logger := a.logger()
	logger.Debug().
		Str("sheet_id", cfg.SheetID).
		Str("sheet_name", cfg.SheetName).
		Msg("Connecting to spreadsheet")

	client, err := a.dialSheets(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts = append([]tracker.Option{tracker.WithLogger(logger)}, opts...)
	return tracker.NewService(cfg, client, opts...), nil
}

func (a *app) printer() *console.Printer {
	return console.NewPrinter(a.stdout, a.stderr)
}

func (a *app) logger() zerolog.Logger {
	return logging.New(a.stderr, a.verbose)
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, prerrors.ErrMissingConfig) {
		return 4 // Configuration errors
	}

	if errors.Is(err, prerrors.ErrCredentials) ||
		errors.Is(err, prerrors.ErrAuth) ||
		errors.Is(err, prerrors.ErrNotFound) ||
		errors.Is(err, prerrors.ErrRateLimit) {
		return 2 // Authentication/authorization errors
	}

	if errors.Is(err, prerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
