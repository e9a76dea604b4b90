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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	prerrors "github.com/sirseerhq/prsheet/internal/errors"
	"github.com/sirseerhq/prsheet/internal/output"
)

// isolate points HOME and the working directory at empty temp dirs and
// clears the PRSHEET_ environment so only the test's sources apply.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"PRSHEET_CREDENTIAL", "PRSHEET_SHEET_ID", "PRSHEET_SHEET_NAME",
		"PRSHEET_STRICT_EXIT", "PRSHEET_SHEETS_ENDPOINT", "GITHUB_GRAPHQL_ENDPOINT",
	} {
		t.Setenv(key, "")
	}
	t.Chdir(dir)
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GitHub.GraphQLEndpoint != "https://api.github.com/graphql" {
		t.Errorf("GraphQLEndpoint = %s, want https://api.github.com/graphql", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GITHUB_TOKEN" {
		t.Errorf("TokenEnv = %s, want GITHUB_TOKEN", cfg.GitHub.TokenEnv)
	}
	if cfg.Output.Format != output.FormatJSON {
		t.Errorf("Format = %s, want json", cfg.Output.Format)
	}
	if cfg.StrictExitCodes {
		t.Error("StrictExitCodes = true, want false")
	}
	if cfg.Credential != "" || cfg.SheetID != "" || cfg.SheetName != "" {
		t.Errorf("sheet settings should have no default, got %+v", cfg)
	}
}

func TestLoadConfigFile_YAML(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "config.yaml")

	configContent := `
credential: /etc/prsheet/sa.json
sheet_id: 1AbC
sheet_name: Releases
strict_exit_codes: true

sheets:
  endpoint: http://localhost:9000/

github:
  graphql_endpoint: https://github.example.com/api/graphql
  token_env: GHE_TOKEN

output:
  format: ndjson
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Credential != "/etc/prsheet/sa.json" {
		t.Errorf("Credential = %s", cfg.Credential)
	}
	if cfg.SheetID != "1AbC" || cfg.SheetName != "Releases" {
		t.Errorf("sheet = %s/%s, want 1AbC/Releases", cfg.SheetID, cfg.SheetName)
	}
	if !cfg.StrictExitCodes {
		t.Error("StrictExitCodes = false, want true")
	}
	if cfg.Sheets.Endpoint != "http://localhost:9000/" {
		t.Errorf("Sheets.Endpoint = %s", cfg.Sheets.Endpoint)
	}
	if cfg.GitHub.TokenEnv != "GHE_TOKEN" {
		t.Errorf("TokenEnv = %s, want GHE_TOKEN", cfg.GitHub.TokenEnv)
	}
	if cfg.Output.Format != output.FormatNDJSON {
		t.Errorf("Format = %s, want ndjson", cfg.Output.Format)
	}
}

func TestLoadConfigFile_TOML(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "config.toml")

	configContent := `
credential = "/etc/prsheet/sa.json"
sheet_id = "1AbC"
sheet_name = "Releases"

[github]
token_env = "GHE_TOKEN"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.SheetName != "Releases" {
		t.Errorf("SheetName = %s, want Releases", cfg.SheetName)
	}
	if cfg.GitHub.TokenEnv != "GHE_TOKEN" {
		t.Errorf("TokenEnv = %s, want GHE_TOKEN", cfg.GitHub.TokenEnv)
	}
	// Unset keys keep their defaults
	if cfg.GitHub.GraphQLEndpoint != "https://api.github.com/graphql" {
		t.Errorf("GraphQLEndpoint = %s, want default", cfg.GitHub.GraphQLEndpoint)
	}
}

func TestLoadConfig_DefaultLocation(t *testing.T) {
	dir := isolate(t)

	if err := os.WriteFile(filepath.Join(dir, ".prsheet.yaml"), []byte("sheet_name: FromCwd\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SheetName != "FromCwd" {
		t.Errorf("SheetName = %s, want FromCwd", cfg.SheetName)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadConfig(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("LoadConfig() expected error for missing file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(configPath, []byte("sheets: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig() expected parse error")
	}
}

func TestResolve_Precedence(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "config.yaml")
	configContent := `
credential: /file/sa.json
sheet_id: file-id
sheet_name: FileSheet
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Setenv("PRSHEET_SHEET_ID", "env-id")
	t.Setenv("PRSHEET_SHEET_NAME", "EnvSheet")
	t.Setenv("PRSHEET_STRICT_EXIT", "yes")

	cfg, err := Resolve(configPath, Flags{SheetName: "FlagSheet", Format: output.FormatXLSX})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if cfg.Credential != "/file/sa.json" {
		t.Errorf("Credential = %s, want value from file", cfg.Credential)
	}
	if cfg.SheetID != "env-id" {
		t.Errorf("SheetID = %s, want value from env", cfg.SheetID)
	}
	if cfg.SheetName != "FlagSheet" {
		t.Errorf("SheetName = %s, want value from flag", cfg.SheetName)
	}
	if !cfg.StrictExitCodes {
		t.Error("StrictExitCodes = false, want true from env")
	}
	if cfg.Output.Format != output.FormatXLSX {
		t.Errorf("Format = %s, want xlsx", cfg.Output.Format)
	}
}

func TestResolve_ExpandsCredentialPath(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")

	cfg, err := Resolve("", Flags{Credential: "~/keys/sa.json"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := filepath.Join(home, "keys", "sa.json"); cfg.Credential != want {
		t.Errorf("Credential = %s, want %s", cfg.Credential, want)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Credential = "sa.json"
		cfg.SheetID = "id"
		cfg.SheetName = "Sheet1"
		return cfg
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantMsg string
	}{
		{
			name:   "valid",
			modify: func(*Config) {},
		},
		{
			name:    "missing everything reports credential first",
			modify:  func(c *Config) { c.Credential, c.SheetID, c.SheetName = "", "", "" },
			wantMsg: "Credential is missing",
		},
		{
			name:    "missing sheet id",
			modify:  func(c *Config) { c.SheetID = "" },
			wantMsg: "Sheet ID is missing",
		},
		{
			name:    "missing sheet name",
			modify:  func(c *Config) { c.SheetName = "" },
			wantMsg: "Sheet name is missing",
		},
		{
			name:   "unknown format is left to fetch",
			modify: func(c *Config) { c.Output.Format = "csv" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var prErr *prerrors.Error
			if !errors.As(err, &prErr) {
				t.Fatalf("Validate() error = %v, want *errors.Error", err)
			}
			if prErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", prErr.Message, tt.wantMsg)
			}
			if !errors.Is(err, prerrors.ErrMissingConfig) {
				t.Error("error is not ErrMissingConfig")
			}
		})
	}
}

func TestValidateOutput(t *testing.T) {
	for _, format := range []string{output.FormatJSON, output.FormatNDJSON, output.FormatXLSX} {
		cfg := DefaultConfig()
		cfg.Output.Format = format
		if err := cfg.ValidateOutput(); err != nil {
			t.Errorf("ValidateOutput(%q) error = %v", format, err)
		}
	}

	cfg := DefaultConfig()
	cfg.Output.Format = "csv"
	err := cfg.ValidateOutput()

	var prErr *prerrors.Error
	if !errors.As(err, &prErr) {
		t.Fatalf("ValidateOutput() error = %v, want *errors.Error", err)
	}
	if want := `Unknown output format "csv" (expected json, ndjson or xlsx)`; prErr.Message != want {
		t.Errorf("Message = %q, want %q", prErr.Message, want)
	}
	if !errors.Is(err, prerrors.ErrMissingConfig) {
		t.Error("error is not ErrMissingConfig")
	}
}

func TestStrictExitFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"yes", true},
		{"off", false},
	}
	for _, tt := range tests {
		t.Setenv("PRSHEET_STRICT_EXIT", tt.value)
		if got := StrictExitFromEnv(); got != tt.want {
			t.Errorf("StrictExitFromEnv() with %q = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestRanges(t *testing.T) {
	cfg := &Config{SheetName: "Releases"}

	if got := cfg.SheetRange(); got != "Releases!A:Z" {
		t.Errorf("SheetRange() = %s, want Releases!A:Z", got)
	}
	if got := cfg.QualifiedRange("A5:Z5"); got != "Releases!A5:Z5" {
		t.Errorf("QualifiedRange() = %s, want Releases!A5:Z5", got)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"1", true},
		{"on", true},
		{"false", false},
		{"no", false},
		{"0", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := parseBool(tt.input); got != tt.want {
			t.Errorf("parseBool(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
