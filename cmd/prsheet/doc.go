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

// Package main implements the prsheet command-line interface.
// prsheet keeps a Google Sheets spreadsheet of pull requests up to date:
// one row per PR, with RC and Production columns flipped to TRUE as the PR
// reaches each branch.
//
// The CLI supports:
//   - Adding a PR row from explicit values or from GitHub
//   - Marking PRs as merged to rc or master by title prefix
//   - Fetching the sheet as JSON, NDJSON or an xlsx workbook
//
// Usage:
//
//	prsheet --credential key.json --sheet-id ID --sheet-name Releases add -d 1234 -d "Fix parser"
//	prsheet --credential key.json --sheet-id ID --sheet-name Releases done rc -t "Fix parser (#1234)"
//	prsheet --credential key.json --sheet-id ID --sheet-name Releases fetch --format ndjson
//
// Exit codes:
//
// prsheet exits 0 even when a command fails, after printing the error.
// With --strict-exit (or strict_exit_codes in the config file, or
// PRSHEET_STRICT_EXIT=1) failures exit non-zero:
//   - 1: General error
//   - 2: Credential, authentication, not-found or rate-limit error
//   - 3: Network error
//   - 4: Missing or invalid configuration
package main
