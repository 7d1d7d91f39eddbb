package gsheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Google Sheets values API.
type Client struct {
	service *sheets.Service
}

// NewClientFromCredentialsFile creates a Sheets client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Sheets client from raw credentials JSON.
// Service Account keys are preferred; OAuth installed-app credentials need a
// token.json next to the binary.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err == nil {
		svc, svcErr := sheets.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create sheets service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

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
	if oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{sheets.SpreadsheetsScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile(TokenFile)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	svc, svcErr := sheets.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create sheets service from OAuth token: %w", svcErr)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Sheets client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc}, nil
}

// GetValues reads every cell in rng. Dates come back as serial day numbers,
// checkboxes as booleans and numbers as float64.
func (c *Client) GetValues(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, rng).
		ValueRenderOption(ValueRenderUnformatted).
		DateTimeRenderOption(DateTimeRenderSerial).
		MajorDimension(MajorDimensionRows).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get values %s: %w", rng, err)
	}
	return resp.Values, nil
}

// UpdateValues writes values starting at rng in a single request. Cells are
// parsed as if typed by a user, so "2024-01-10" becomes a date and TRUE a
// boolean.
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) (UpdateResult, error) {
	vr := &sheets.ValueRange{
		Range:          rng,
		MajorDimension: MajorDimensionRows,
		Values:         values,
	}
	resp, err := c.service.Spreadsheets.Values.Update(spreadsheetID, rng, vr).
		ValueInputOption(ValueInputUserEntered).
		Context(ctx).
		Do()
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to update values %s: %w", rng, err)
	}
	return UpdateResult{
		UpdatedRange: resp.UpdatedRange,
		UpdatedRows:  int(resp.UpdatedRows),
		UpdatedCells: int(resp.UpdatedCells),
	}, nil
}
