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

package sheets

import (
	"context"
	"os"

	"github.com/sirseerhq/prsheet/internal/apierror"
	prerrors "github.com/sirseerhq/prsheet/internal/errors"
	"github.com/sirseerhq/prsheet/internal/table"
	"github.com/sirseerhq/prsheet/pkg/version"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// valueInputOption makes the spreadsheet parse written values as user input.
const valueInputOption = "USER_ENTERED"

// GoogleClient implements Client on top of the Google Sheets v4 API.
type GoogleClient struct {
	service   *gsheets.Service
	inspector apierror.Inspector
}

// Dial reads a service account key and returns a client authorized for the
// spreadsheets scope. A non-empty endpoint replaces the API base URL.
func Dial(ctx context.Context, credentialPath, endpoint string) (*GoogleClient, error) {
	key, err := os.ReadFile(credentialPath)
	if err != nil {
		return nil, prerrors.New(prerrors.ErrCredentials,
			"Cannot read credentials, an error occurred", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, key, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, prerrors.New(prerrors.ErrCredentials,
			"There was an error trying to build connection with authenticator", err)
	}

	opts := []option.ClientOption{option.WithCredentials(creds)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	return NewClient(ctx, opts...)
}

// NewClient creates a client from explicit options. Tests use it with
// option.WithEndpoint and option.WithoutAuthentication.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*GoogleClient, error) {
	opts = append(opts, option.WithUserAgent(version.UserAgent()))

	service, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, prerrors.New(prerrors.ErrCredentials,
			"There was an error trying to build connection with authenticator", err)
	}

	return &GoogleClient{
		service:   service,
		inspector: apierror.NewInspector(),
	}, nil
}

// Fetch implements Client.
func (c *GoogleClient) Fetch(ctx context.Context, sheetID, rangeExpr string) (*ValueRange, error) {
	resp, err := c.service.Spreadsheets.Values.Get(sheetID, rangeExpr).Context(ctx).Do()
	if err != nil {
		return nil, c.mapError("Could not fetch data", err)
	}

	return &ValueRange{
		Range:  resp.Range,
		Values: table.RawTable(resp.Values),
	}, nil
}

// Append implements Client.
func (c *GoogleClient) Append(ctx context.Context, sheetID, rangeExpr string, row []string) error {
	request := &gsheets.ValueRange{
		Values: [][]interface{}{toCells(row)},
	}

	_, err := c.service.Spreadsheets.Values.Append(sheetID, rangeExpr, request).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return c.mapError("Could not populate data", err)
	}

	return nil
}

// BatchUpdate implements Client.
func (c *GoogleClient) BatchUpdate(ctx context.Context, sheetID string, updates []table.Update) error {
	data := make([]*gsheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		data = append(data, &gsheets.ValueRange{
			Range:  u.Range,
			Values: [][]interface{}{toCells(u.Values)},
		})
	}

	request := &gsheets.BatchUpdateValuesRequest{
		Data:             data,
		ValueInputOption: valueInputOption,
	}

	_, err := c.service.Spreadsheets.Values.BatchUpdate(sheetID, request).Context(ctx).Do()
	if err != nil {
		return c.mapError("Could not update data", err)
	}

	return nil
}

// mapError attaches the kind of failure to a call error.
func (c *GoogleClient) mapError(message string, err error) error {
	return prerrors.New(apierror.Kind(c.inspector, err), message, err)
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
