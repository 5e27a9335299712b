package gsheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sheets API quota is 60 read + 60 write requests per minute per user.
// Default limiter stays safely under the combined budget.
const defaultRequestsPerMinute = 50

// Client wraps the Google Sheets API service bound to a single spreadsheet.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
	limiter       *rate.Limiter
}

var _ ISheets = (*Client)(nil)

// NewClientFromCredentialsFile creates a Sheets client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, spreadsheetID string, requestsPerMinute int) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, spreadsheetID, requestsPerMinute)
}

// NewClientFromCredentialsJSON creates a Sheets client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, spreadsheetID string, requestsPerMinute int) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err == nil {
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := sheets.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create sheets service: %w", svcErr)
		}
		return newClient(svc, spreadsheetID, requestsPerMinute), nil
	}

	// Fallback: OAuth2 installed app credentials with a pre-generated token.json
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{sheets.SpreadsheetsScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := sheets.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create sheets service from OAuth token: %w", svcErr)
	}

	return newClient(svc, spreadsheetID, requestsPerMinute), nil
}

// NewClientFromHTTP creates a Sheets client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, spreadsheetID string, requestsPerMinute int) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return newClient(svc, spreadsheetID, requestsPerMinute), nil
}

func newClient(svc *sheets.Service, spreadsheetID string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	return &Client{
		service:       svc,
		spreadsheetID: spreadsheetID,
		limiter:       rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute/5+1),
	}
}

// ReadSheet returns every row of the named sheet, header included.
func (c *Client) ReadSheet(ctx context.Context, sheetName string) ([][]any, error) {
	return c.ReadRange(ctx, fmt.Sprintf("'%s'", sheetName))
}

// ReadRange returns the rows of an A1-notation range.
func (c *Client) ReadRange(ctx context.Context, a1Range string) ([][]any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, a1Range).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %q: %w", a1Range, err)
	}
	return resp.Values, nil
}

// AppendRow appends a single row after the last row with data.
func (c *Client) AppendRow(ctx context.Context, sheetName string, row []any) error {
	return c.AppendRows(ctx, sheetName, [][]any{row})
}

// AppendRows appends several rows in one call.
func (c *Client) AppendRows(ctx context.Context, sheetName string, rows [][]any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: rows}
	_, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, fmt.Sprintf("'%s'", sheetName), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to sheet %q: %w", sheetName, err)
	}
	return nil
}

// UpdateRange overwrites an A1-notation range with the given values.
func (c *Client) UpdateRange(ctx context.Context, a1Range string, values [][]any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: values}
	_, err := c.service.Spreadsheets.Values.
		Update(c.spreadsheetID, a1Range, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update range %q: %w", a1Range, err)
	}
	return nil
}

// EnsureSheet creates the named sheet with a header row when missing.
func (c *Client) EnsureSheet(ctx context.Context, sheetName string, header []string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	meta, err := c.service.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read spreadsheet metadata: %w", err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == sheetName {
			return nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	_, err = c.service.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: sheetName},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheetName, err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	return c.UpdateRange(ctx, fmt.Sprintf("'%s'!A1", sheetName), [][]any{headerRow})
}
