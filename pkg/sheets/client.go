package sheets

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var ErrNoService = errors.New("sheets: service is nil")

// Client writes cell values through the Sheets v4 API
type Client struct {
	service    *sheets.Service
	inputUsing string
}

type Config struct {
	CredentialsPath string
	CredentialsJSON []byte
	// ValueInputOption is RAW or USER_ENTERED; RAW when empty
	ValueInputOption string
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	switch {
	case cfg.CredentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	case len(cfg.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	default:
		return nil, fmt.Errorf("sheets: credentials path or JSON is required")
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}

	input := cfg.ValueInputOption
	if input == "" {
		input = "RAW"
	}

	return &Client{
		service:    service,
		inputUsing: input,
	}, nil
}

// AppendValues adds rows after the last row of the table found in rng
func (c *Client) AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error {
	if c == nil || c.service == nil {
		return ErrNoService
	}

	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption(c.inputUsing).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append %s: %w", rng, err)
	}
	return nil
}

// UpdateValues overwrites cells starting at rng
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error {
	if c == nil || c.service == nil {
		return ErrNoService
	}

	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption(c.inputUsing).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: update %s: %w", rng, err)
	}
	return nil
}

// ClearValues empties the cells of rng, keeping formatting
func (c *Client) ClearValues(ctx context.Context, spreadsheetID, rng string) error {
	if c == nil || c.service == nil {
		return ErrNoService
	}

	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, rng, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: clear %s: %w", rng, err)
	}
	return nil
}
