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
	"fmt"
	"os"

	prerrors "github.com/sirseerhq/prsheet/internal/errors"
	"github.com/sirseerhq/prsheet/internal/tracker"
	"github.com/spf13/cobra"
)

func (a *app) newAddCommand() *cobra.Command {
	var (
		data   []string
		repo   string
		number int
		token  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add PR to sheet",
		Long: `Append a pull request row after the last row of the sheet.

Values are given in column order, each preceded by -d or --data:
  Number, Title, Description, Author, URL, Commit Hash, Merged Date,
  Deployable, RC, Production
Empty values are written as "n/a".

Alternatively, --repo and --pr fill the row from GitHub. Authentication uses
the --token flag or the GITHUB_TOKEN environment variable.`,
		Example: `  prsheet add -d 1234 -d "Fix parser" -d "Frees buffers" -d alice
  prsheet add --repo acme/api --pr 1234`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(data) == 0 && number == 0 {
				return cmd.Help()
			}

			cfg, err := a.resolve()
			if err != nil {
				return err
			}

			var (
				command tracker.Command = tracker.AddCommand{Data: data}
				opts    []tracker.Option
			)
			if number != 0 {
				tok := token
				if tok == "" {
					tok = os.Getenv(cfg.GitHub.TokenEnv)
				}
				if tok == "" {
					return prerrors.NewSourceless(prerrors.ErrMissingConfig,
						fmt.Sprintf("GitHub token not found. Set %s or use --token flag", cfg.GitHub.TokenEnv))
				}
				command = tracker.AddFromGitHubCommand{Repo: repo, Number: number}
				opts = append(opts, tracker.WithGitHub(a.newGitHub(tok, cfg.GitHub.GraphQLEndpoint)))
			}

			svc, err := a.connect(cmd.Context(), cfg, opts...)
			if err != nil {
				return err
			}

			res, err := svc.Run(cmd.Context(), command)
			if err != nil {
				return err
			}
			a.printer().Success(res.Message)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&data, "data", "d", nil, "Row value, repeated once per column")
	cmd.Flags().StringVar(&repo, "repo", "", "GitHub repository (<owner>/<repo>) to read the PR from")
	cmd.Flags().IntVar(&number, "pr", 0, "Pull request number to read from GitHub")
	cmd.Flags().StringVar(&token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")

	cmd.MarkFlagsMutuallyExclusive("data", "pr")
	cmd.MarkFlagsRequiredTogether("repo", "pr")

	return cmd
}
