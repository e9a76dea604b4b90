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

import "github.com/sirseerhq/prsheet/internal/table"

// Command is one of AddCommand, AddFromGitHubCommand, DoneCommand or
// FetchCommand.
type Command interface {
	command()
}

// AddCommand appends a row built from explicit values, in column order.
type AddCommand struct {
	Data []string
}

// AddFromGitHubCommand appends a row filled from a GitHub pull request.
type AddFromGitHubCommand struct {
	Repo   string
	Number int
}

// DoneCommand marks the rows whose titles match as merged to Branch.
type DoneCommand struct {
	Branch table.Branch
	Titles []string
}

// FetchCommand reads the whole sheet.
type FetchCommand struct{}

func (AddCommand) command() {}
func (AddFromGitHubCommand) command() {}
func (DoneCommand) command() {}
func (FetchCommand) command() {}

// Result is what a command produced. Add and Done set Message; Fetch sets
// Snapshot.
type Result struct {
	Message  string
	Snapshot *table.Snapshot
}
