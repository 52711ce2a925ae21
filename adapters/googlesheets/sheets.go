package googlesheets

import (
	"context"
	"fmt"
	"strconv"

	labsync "github.com/bhklab/lab-website-data-refresh"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Source implements labsync.Source backed by one Google spreadsheet.
type Source struct {
	service       *sheets.Service
	spreadsheetID string
}

// New creates a Google Sheets source with the provided client options.
func New(ctx context.Context, config Config, opts ...option.ClientOption) (*Source, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Source{
		service:       service,
		spreadsheetID: config.SpreadsheetID,
	}, nil
}

// FetchRows retrieves all rows of the worksheet. The first row is the
// header; each remaining row becomes a mapping from header name to cell
// text. Cells beyond the header width and columns with empty header names
// are dropped.
func (s *Source) FetchRows(ctx context.Context, worksheet string) ([]labsync.RawRow, error) {
	readRange := fmt.Sprintf("%s!A:ZZ", worksheet)
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get sheet data: %w", err)
	}

	if len(resp.Values) == 0 {
		return []labsync.RawRow{}, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		if col, ok := cell.(string); ok {
			header[i] = col
		}
	}

	rows := make([]labsync.RawRow, 0, len(resp.Values)-1)
	for i := 1; i < len(resp.Values); i++ {
		cells := resp.Values[i]
		if len(cells) == 0 {
			continue
		}

		row := make(labsync.RawRow)
		for j := 0; j < len(cells) && j < len(header); j++ {
			if header[j] == "" {
				continue
			}
			row[header[j]] = cellString(cells[j])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// cellString renders an API cell value as raw text the way it reads in the
// sheet. The Values API returns strings for formatted cells but may return
// numbers or bools for unformatted ones.
func cellString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
