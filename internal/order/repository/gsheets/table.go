package gsheets

import (
	"context"
	"fmt"
	"strings"

	"household-orders/internal/order/repository"
)

// Read fetches the whole tab. The first row is the header.
func (r *implRepository) Read(ctx context.Context) (repository.Table, error) {
	values, err := r.client.GetValues(ctx, r.spreadsheetID, r.sheetRange())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Read"), err)
		return repository.Table{}, fmt.Errorf("%w: %v", repository.ErrFailedToRead, err)
	}
	return toTable(values), nil
}

// Overwrite replaces the tab content with t using a single values.update.
// Rows and columns that held data before but are not part of t are blanked
// in the same request, so the sheet is never observed half cleared.
func (r *implRepository) Overwrite(ctx context.Context, t repository.Table) error {
	existing, err := r.client.GetValues(ctx, r.spreadsheetID, r.sheetRange())
	if err != nil {
		r.l.Errorf(ctx, "%s extent: %v", r.dsn("Overwrite"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToOverwrite, err)
	}

	values := toValues(t, len(existing), maxWidth(existing))
	res, err := r.client.UpdateValues(ctx, r.spreadsheetID, r.anchor(), values)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Overwrite"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToOverwrite, err)
	}

	r.l.Debugf(ctx, "%s: %d rows, %d cells written to %s", r.dsn("Overwrite"), res.UpdatedRows, res.UpdatedCells, res.UpdatedRange)
	return nil
}

func toTable(values [][]interface{}) repository.Table {
	if len(values) == 0 {
		return repository.Table{}
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		if cell != nil {
			header[i] = fmt.Sprint(cell)
		}
	}
	return repository.Table{
		Header: header,
		Rows:   values[1:],
	}
}

// toValues lays out t as a rectangular grid at least rows x cols wide,
// padding with empty strings, which clear cells on a USER_ENTERED write.
func toValues(t repository.Table, rows, cols int) [][]interface{} {
	width := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if cols > width {
		width = cols
	}

	height := len(t.Rows) + 1
	if rows > height {
		height = rows
	}

	grid := make([][]interface{}, height)
	for i := range grid {
		grid[i] = make([]interface{}, width)
		for j := range grid[i] {
			grid[i][j] = ""
		}
	}
	for j, h := range t.Header {
		grid[0][j] = escapeCell(h)
	}
	for i, row := range t.Rows {
		for j, cell := range row {
			if cell == nil {
				continue
			}
			grid[i+1][j] = escapeCell(cell)
		}
	}
	return grid
}

// escapeCell keeps user text from being evaluated as a formula.
func escapeCell(cell interface{}) interface{} {
	s, ok := cell.(string)
	if !ok || s == "" {
		return cell
	}
	switch s[0] {
	case '=', '+', '-', '@', '\'':
		return "'" + s
	}
	return strings.TrimRight(s, "\r\n")
}

func maxWidth(values [][]interface{}) int {
	w := 0
	for _, row := range values {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}
