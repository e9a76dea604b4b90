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

import (
	"time"

	"github.com/rs/zerolog"
)

// Stats counts the remote work done by one invocation.
type Stats struct {
	apiCalls    int
	rowsRead    int
	rowsWritten int
	startedAt   time.Time
	completedAt time.Time
}

// NewStats starts a new set of counters.
func NewStats() *Stats {
	return &Stats{startedAt: time.Now()}
}

// APICall records one remote request.
func (st *Stats) APICall() { st.apiCalls++ }

// RowsRead records decoded data rows.
func (st *Stats) RowsRead(n int) { st.rowsRead += n }

// RowsWritten records appended or updated rows.
func (st *Stats) RowsWritten(n int) { st.rowsWritten += n }

// Finish stamps the completion time.
func (st *Stats) Finish() { st.completedAt = time.Now() }

// APICalls returns the number of remote requests made.
func (st *Stats) APICalls() int { return st.apiCalls }

// Read returns the number of data rows decoded.
func (st *Stats) Read() int { return st.rowsRead }

// Written returns the number of rows appended or updated.
func (st *Stats) Written() int { return st.rowsWritten }

// Duration is the time between NewStats and Finish.
func (st *Stats) Duration() time.Duration {
	if st.completedAt.IsZero() {
		return time.Since(st.startedAt)
	}
	return st.completedAt.Sub(st.startedAt)
}

// Log writes the counters at debug level.
func (st *Stats) Log(logger zerolog.Logger) {
	logger.Debug().
		Int("api_calls", st.apiCalls).
		Int("rows_read", st.rowsRead).
		Int("rows_written", st.rowsWritten).
		Dur("duration", st.Duration()).
		Msg("Run complete")
}
