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

// Package config provides configuration management for prsheet with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file (YAML or TOML)
//  4. Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	prerrors "github.com/sirseerhq/prsheet/internal/errors"
	"github.com/sirseerhq/prsheet/internal/output"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from the file at configPath, or from the
// first file found in the standard locations:
//   - .prsheet.yaml, .prsheet.yml, .prsheet.toml (current directory)
//   - ~/.prsheet/config.yaml, ~/.prsheet/config.toml
//
// Environment variables are applied on top of the file. A missing file in
// the standard locations is not an error; a missing configPath is.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		home := homeDir()
		defaultPaths := []string{
			".prsheet.yaml",
			".prsheet.yml",
			".prsheet.toml",
			filepath.Join(home, ".prsheet", "config.yaml"),
			filepath.Join(home, ".prsheet", "config.toml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Resolve loads configuration and applies command-line flags on top. The
// returned Config is final for the invocation.
func Resolve(configPath string, flags Flags) (*Config, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if flags.Credential != "" {
		cfg.Credential = flags.Credential
	}
	if flags.SheetID != "" {
		cfg.SheetID = flags.SheetID
	}
	if flags.SheetName != "" {
		cfg.SheetName = flags.SheetName
	}
	if flags.Format != "" {
		cfg.Output.Format = flags.Format
	}
	if flags.StrictExit {
		cfg.StrictExitCodes = true
	}

	cfg.Credential = expandPath(cfg.Credential)

	return cfg, nil
}

// loadConfigFile reads a config file, choosing the decoder by extension
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PRSHEET_CREDENTIAL"); v != "" {
		cfg.Credential = v
	}
	if v := os.Getenv("PRSHEET_SHEET_ID"); v != "" {
		cfg.SheetID = v
	}
	if v := os.Getenv("PRSHEET_SHEET_NAME"); v != "" {
		cfg.SheetName = v
	}
	if v := os.Getenv("PRSHEET_STRICT_EXIT"); v != "" {
		cfg.StrictExitCodes = parseBool(v)
	}
	if v := os.Getenv("PRSHEET_SHEETS_ENDPOINT"); v != "" {
		cfg.Sheets.Endpoint = v
	}
	if v := os.Getenv("GITHUB_GRAPHQL_ENDPOINT"); v != "" {
		cfg.GitHub.GraphQLEndpoint = v
	}
}

func homeDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home = os.Getenv("USERPROFILE") // Windows
	}
	return home
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir(), path[2:])
	}
	return os.ExpandEnv(path)
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// Validate checks that the sheet settings are present, in the order
// credential, sheet id, sheet name.
func (c *Config) Validate() error {
	if c.Credential == "" {
		return prerrors.NewSourceless(prerrors.ErrMissingConfig, "Credential is missing")
	}
	if c.SheetID == "" {
		return prerrors.NewSourceless(prerrors.ErrMissingConfig, "Sheet ID is missing")
	}
	if c.SheetName == "" {
		return prerrors.NewSourceless(prerrors.ErrMissingConfig, "Sheet name is missing")
	}
	return nil
}

// ValidateOutput checks the snapshot format. Only fetch renders a snapshot,
// so other commands ignore the setting.
func (c *Config) ValidateOutput() error {
	switch c.Output.Format {
	case output.FormatJSON, output.FormatNDJSON, output.FormatXLSX:
		return nil
	default:
		return prerrors.NewSourceless(prerrors.ErrMissingConfig,
			fmt.Sprintf("Unknown output format %q (expected json, ndjson or xlsx)", c.Output.Format))
	}
}

// StrictExitFromEnv reports whether PRSHEET_STRICT_EXIT requests strict exit
// codes. It is consulted when no configuration could be loaded.
func StrictExitFromEnv() bool {
	return parseBool(os.Getenv("PRSHEET_STRICT_EXIT"))
}
