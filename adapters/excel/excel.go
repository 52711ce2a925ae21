package excel

import (
	"context"
	"fmt"

	labsync "github.com/bhklab/lab-website-data-refresh"
	"github.com/xuri/excelize/v2"
)

// Source implements labsync.Source backed by a local Excel workbook.
type Source struct {
	config Config
}

// New creates an Excel source with the given configuration.
func New(config Config) (*Source, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Source{config: config}, nil
}

// FetchRows retrieves all rows of the worksheet. The first row is the
// header; each remaining row becomes a mapping from header name to cell
// text. A missing workbook or worksheet is an error: unlike an empty sheet,
// it means the export is wrong.
func (s *Source) FetchRows(ctx context.Context, worksheet string) ([]labsync.RawRow, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	f, err := excelize.OpenFile(s.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	index, err := f.GetSheetIndex(worksheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get sheet index: %w", err)
	}
	if index == -1 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, worksheet)
	}

	cells, err := f.GetRows(worksheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	if len(cells) == 0 {
		return []labsync.RawRow{}, nil
	}

	header := cells[0]
	rows := make([]labsync.RawRow, 0, len(cells)-1)
	for i := 1; i < len(cells); i++ {
		if len(cells[i]) == 0 {
			continue
		}

		row := make(labsync.RawRow)
		for j, value := range cells[i] {
			if j < len(header) && header[j] != "" {
				row[header[j]] = value
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
