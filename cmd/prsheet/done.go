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

	"github.com/sirseerhq/prsheet/internal/table"
	"github.com/sirseerhq/prsheet/internal/tracker"
	"github.com/spf13/cobra"
)

func (a *app) newDoneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done",
		Short: "Mark PR as done",
		Long: `Mark pull requests as merged to a branch.

A row matches when its Title is a prefix of a requested title, so
"Fix parser (#1234)" matches a row titled "Fix parser". Titles that match no
row are skipped and the command still succeeds.`,
		Args: cobra.NoArgs,
	}

	cmd.AddCommand(
		a.newDoneBranchCommand(table.BranchRC, "Mark PR as merged in rc"),
		a.newDoneBranchCommand(table.BranchMaster, "Mark PR as merged in master"),
	)

	return cmd
}

func (a *app) newDoneBranchCommand(branch table.Branch, short string) *cobra.Command {
	var titles []string

	cmd := &cobra.Command{
		Use:     string(branch),
		Short:   short,
		Example: fmt.Sprintf(`  prsheet done %s -t "Fix parser (#1234)" -t "Update docs (#1240)"`, branch),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("title") {
				return cmd.Help()
			}

			cfg, err := a.resolve()
			if err != nil {
				return err
			}
			svc, err := a.connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			res, err := svc.Run(cmd.Context(), tracker.DoneCommand{Branch: branch, Titles: titles})
			if err != nil {
				return err
			}
			a.printer().Success(res.Message)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&titles, "title", "t", nil, "PR title to mark as done, repeated once per PR")

	return cmd
}
