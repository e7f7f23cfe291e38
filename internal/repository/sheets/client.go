package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const spreadsheetScope = "https://www.googleapis.com/auth/spreadsheets"

// Client wraps the Sheets API service for a single spreadsheet
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewClient builds a Sheets client authorized as a service account
// from its email and PEM private key.
func NewClient(ctx context.Context, serviceAccountEmail, privateKey, spreadsheetID string) (*Client, error) {
	conf := &jwt.Config{
		Email:      serviceAccountEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{spreadsheetScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// get reads a range of cells
func (c *Client) get(ctx context.Context, readRange string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	return resp.Values, nil
}

// append adds one row below the last row of a range
func (c *Client) append(ctx context.Context, writeRange string, row []interface{}) error {
	body := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, writeRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to range %s: %w", writeRange, err)
	}
	return nil
}

// cellString renders one cell; the API returns interface{} values
func cellString(cell interface{}) string {
	if cell == nil {
		return ""
	}
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprint(cell)
}
