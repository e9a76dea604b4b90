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

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// SheetAppend records one values:append request.
type SheetAppend struct {
	SheetID          string
	Range            string
	ValueInputOption string
	Values           [][]interface{}
}

// SheetBatchUpdate records one values:batchUpdate request.
type SheetBatchUpdate struct {
	SheetID          string
	ValueInputOption string
	Data             []SheetValueRange
}

// SheetValueRange mirrors the API's ValueRange resource.
type SheetValueRange struct {
	Range          string          `json:"range,omitempty"`
	MajorDimension string          `json:"majorDimension,omitempty"`
	Values         [][]interface{} `json:"values,omitempty"`
}

// SheetServer is an in-memory stand-in for the Google Sheets v4 values API.
// It serves one table for every spreadsheet and records every write.
type SheetServer struct {
	*httptest.Server

	mu           sync.Mutex
	table        [][]interface{}
	failStatus   int
	fetches      []string
	appends      []SheetAppend
	batchUpdates []SheetBatchUpdate
}

// NewSheetServer starts a fake Sheets API serving table. The server is
// closed when the test ends.
func NewSheetServer(t *testing.T, table [][]interface{}) *SheetServer {
	t.Helper()
	s := &SheetServer{table: table}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Endpoint returns the base URL to pass to option.WithEndpoint.
func (s *SheetServer) Endpoint() string {
	return s.URL + "/"
}

// FailWith makes every following request fail with status.
func (s *SheetServer) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// Fetches returns the ranges requested by values.get calls.
func (s *SheetServer) Fetches() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.fetches...)
}

// Appends returns the recorded append requests.
func (s *SheetServer) Appends() []SheetAppend {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SheetAppend(nil), s.appends...)
}

// BatchUpdates returns the recorded batch update requests.
func (s *SheetServer) BatchUpdates() []SheetBatchUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SheetBatchUpdate(nil), s.batchUpdates...)
}

func (s *SheetServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failStatus != 0 {
		writeAPIError(w, s.failStatus)
		return
	}

	// /v4/spreadsheets/{id}/values/{range}[:append] or /v4/spreadsheets/{id}/values:batchUpdate
	rest := strings.TrimPrefix(r.URL.Path, "/v4/spreadsheets/")
	sheetID, call, ok := strings.Cut(rest, "/")
	if !ok || rest == r.URL.Path {
		http.NotFound(w, r)
		return
	}

	switch {
	case r.Method == http.MethodGet && strings.HasPrefix(call, "values/"):
		rng := strings.TrimPrefix(call, "values/")
		s.fetches = append(s.fetches, rng)
		resp := SheetValueRange{
			Range:          resolvedRange(rng, len(s.table)),
			MajorDimension: "ROWS",
			Values:         s.table,
		}
		writeJSON(w, resp)

	case r.Method == http.MethodPost && strings.HasSuffix(call, ":append"):
		var body SheetValueRange
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeAPIError(w, http.StatusBadRequest)
			return
		}
		s.appends = append(s.appends, SheetAppend{
			SheetID:          sheetID,
			Range:            strings.TrimSuffix(strings.TrimPrefix(call, "values/"), ":append"),
			ValueInputOption: r.URL.Query().Get("valueInputOption"),
			Values:           body.Values,
		})
		writeJSON(w, map[string]interface{}{"spreadsheetId": sheetID})

	case r.Method == http.MethodPost && call == "values:batchUpdate":
		var body struct {
			ValueInputOption string            `json:"valueInputOption"`
			Data             []SheetValueRange `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeAPIError(w, http.StatusBadRequest)
			return
		}
		s.batchUpdates = append(s.batchUpdates, SheetBatchUpdate{
			SheetID:          sheetID,
			ValueInputOption: body.ValueInputOption,
			Data:             body.Data,
		})
		writeJSON(w, map[string]interface{}{
			"spreadsheetId":    sheetID,
			"totalUpdatedRows": len(body.Data),
		})

	default:
		http.NotFound(w, r)
	}
}

// resolvedRange turns "Sheet!A:Z" into the bounded form the API reports.
func resolvedRange(rng string, rows int) string {
	sheet, _, _ := strings.Cut(rng, "!")
	if rows == 0 {
		return sheet + "!A1:Z1"
	}
	return sheet + "!A1:Z" + itoa(rows)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeAPIError writes an error body in the shape googleapi.CheckResponse parses.
func writeAPIError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"code":    status,
			"message": http.StatusText(status),
		},
	})
}
