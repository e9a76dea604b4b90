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
	"bytes"
	"fmt"
	"io"
	"strings"

	prerrors "github.com/sirseerhq/prsheet/internal/errors"
	"github.com/sirseerhq/prsheet/internal/output"
	"github.com/sirseerhq/prsheet/internal/table"
	"github.com/sirseerhq/prsheet/internal/tracker"
	"github.com/spf13/cobra"
)

func (a *app) newFetchCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch prettified google sheet data",
		Long: `Fetch the whole sheet and print it as JSON:

  {"range": "Releases!A1:Z42", "values": [{"Number": "1234", ...}, ...]}

Each row becomes an object keyed by the header row. Use --format ndjson for
one object per line, or --format xlsx with --output for a workbook.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolve()
			if err != nil {
				return err
			}
			if err := cfg.ValidateOutput(); err != nil {
				return err
			}
			if cfg.Output.Format == output.FormatXLSX && outputFile == "" {
				return prerrors.NewSourceless(prerrors.ErrMissingConfig,
					"The xlsx format requires --output")
			}

			svc, err := a.connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			res, err := svc.Run(cmd.Context(), tracker.FetchCommand{})
			if err != nil {
				return err
			}

			return a.writeSnapshot(cfg.Output.Format, outputFile, *res.Snapshot)
		},
	}

	cmd.Flags().StringVar(&a.flags.Format, "format", "", "Output format: json, ndjson or xlsx (default json)")
	cmd.Flags().StringVar(&outputFile, "output", "", "Output file path (default: stdout)")

	return cmd
}

// writeSnapshot renders snap in format to path, or to stdout when path is
// empty. JSON on stdout is printed as a success message.
func (a *app) writeSnapshot(format, path string, snap table.Snapshot) error {
	if path == "" && format == output.FormatJSON {
		var buf bytes.Buffer
		if err := renderSnapshot(format, &buf, snap); err != nil {
			return err
		}
		a.printer().Success(strings.TrimSuffix(buf.String(), "\n"))
		return nil
	}
	if path != "" && format == output.FormatNDJSON {
		return a.writeRecords(path, snap)
	}

	w, err := output.Open(path, a.stdout)
	if err != nil {
		return prerrors.New(prerrors.ErrSerialization, "Could not open output", err)
	}
	if err := renderSnapshot(format, w, snap); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return prerrors.New(prerrors.ErrSerialization, "Could not write output", err)
	}

	if path != "" {
		a.printer().Success(fmt.Sprintf("%d row(s) from [%s] written to %s", len(snap.Values), snap.Range, path))
	}
	return nil
}

// writeRecords streams the snapshot rows to path as NDJSON and reports how
// many records landed in the file.
func (a *app) writeRecords(path string, snap table.Snapshot) error {
	fw, err := output.NewFileWriter(path)
	if err != nil {
		return prerrors.New(prerrors.ErrSerialization, "Could not open output", err)
	}
	if err := fw.WriteSnapshot(snap); err != nil {
		fw.Close()
		return prerrors.New(prerrors.ErrSerialization, "Could not serialize sheet data", err)
	}
	if err := fw.Close(); err != nil {
		return prerrors.New(prerrors.ErrSerialization, "Could not write output", err)
	}

	a.printer().Success(fmt.Sprintf("%d row(s) from [%s] written to %s", fw.Count(), snap.Range, path))
	return nil
}

func renderSnapshot(format string, w io.Writer, snap table.Snapshot) error {
	sw, err := output.NewSnapshotWriter(format, w)
	if err != nil {
		return prerrors.New(prerrors.ErrMissingConfig, "Unsupported output format", err)
	}
	if err := sw.WriteSnapshot(snap); err != nil {
		return prerrors.New(prerrors.ErrSerialization, "Could not serialize sheet data", err)
	}
	return nil
}
