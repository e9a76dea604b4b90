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

// Package config types define the configuration structures used throughout
// prsheet. These types represent settings that can be loaded from YAML or
// TOML configuration files, environment variables, or command-line flags.
package config

import "github.com/sirseerhq/prsheet/internal/output"

// Config is the resolved configuration for one prsheet invocation. It is
// built once by Resolve and passed by pointer to every collaborator; nothing
// modifies it afterwards.
type Config struct {
	// Credential is the path to a Google service account key (JSON).
	Credential string `yaml:"credential" toml:"credential"`

	// SheetID is the spreadsheet identifier from its URL.
	SheetID string `yaml:"sheet_id" toml:"sheet_id"`

	// SheetName is the tab holding the PR rows.
	SheetName string `yaml:"sheet_name" toml:"sheet_name"`

	// StrictExitCodes makes failures exit non-zero. Off by default: prsheet
	// has always exited 0 and existing automation may rely on it.
	StrictExitCodes bool `yaml:"strict_exit_codes" toml:"strict_exit_codes"`

	Sheets SheetsConfig `yaml:"sheets" toml:"sheets"`
	GitHub GitHubConfig `yaml:"github" toml:"github"`
	Output OutputConfig `yaml:"output" toml:"output"`
}

// SheetsConfig contains Google Sheets API settings. An empty Endpoint uses
// the library default.
type SheetsConfig struct {
	Endpoint string `yaml:"endpoint" toml:"endpoint"`
}

// GitHubConfig contains settings for looking up pull requests when a row is
// added from GitHub instead of from explicit values.
type GitHubConfig struct {
	GraphQLEndpoint string `yaml:"graphql_endpoint" toml:"graphql_endpoint"`
	TokenEnv        string `yaml:"token_env" toml:"token_env"`
}

// OutputConfig controls how fetch renders the snapshot.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"`
}

// Flags carries command-line values. Empty strings and false leave the
// loaded configuration untouched.
type Flags struct {
	Credential string
	SheetID    string
	SheetName  string
	Format     string
	StrictExit bool
}

// DefaultConfig returns a Config with the built-in defaults. The sheet
// settings have no default and must be supplied.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			GraphQLEndpoint: "https://api.github.com/graphql",
			TokenEnv:        "GITHUB_TOKEN",
		},
		Output: OutputConfig{
			Format: output.FormatJSON,
		},
	}
}

// SheetRange returns the A:Z range covering the whole sheet.
func (c *Config) SheetRange() string {
	return c.SheetName + "!A:Z"
}

// QualifiedRange prefixes a row address with the sheet name.
func (c *Config) QualifiedRange(addr string) string {
	return c.SheetName + "!" + addr
}
