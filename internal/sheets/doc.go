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

// Package sheets provides a client for the spreadsheet that stores the pull
// request rows. It exposes the three calls prsheet needs (fetch a range,
// append a row, write a batch of addressed rows) behind a small interface
// so the operations can be tested against a mock.
//
// The package includes:
//   - A Client interface for reading and writing rows
//   - A Google Sheets v4 implementation authenticated with a service account
//   - A mock client for testing
//
// Basic usage:
//
//	client, err := sheets.Dial(ctx, "service-account.json", "")
//	if err != nil {
//	    // Handle error
//	}
//	vr, err := client.Fetch(ctx, sheetID, "Releases!A:Z")
//
// Writes use the USER_ENTERED input option, so the spreadsheet interprets
// values as if they were typed (TRUE becomes a checkbox value, dates are
// parsed, formulas evaluate).
package sheets
