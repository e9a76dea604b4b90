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

// Package tracker runs the three prsheet operations against a spreadsheet:
// adding a PR row, marking PRs done for a branch, and fetching a snapshot of
// the sheet. Each invocation runs exactly one Command through Service.Run.
//
// The service owns no state beyond its collaborators. Remote calls are made
// one at a time and are not retried.
package tracker
