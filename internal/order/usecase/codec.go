package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"household-orders/internal/model"
	"household-orders/internal/order"
	"household-orders/internal/order/repository"
	"household-orders/pkg/datemath"
)

type columns struct {
	id, product, dueDate, done int
}

// decode normalizes a raw table into an OrderList.
//
// A table without the id, product and due date columns is an empty list,
// not an error. A blank done flag means "not done"; a due date that cannot
// be read fails the whole load.
func (uc *implUseCase) decode(ctx context.Context, tbl repository.Table) (model.OrderList, error) {
	cols := columns{
		id:      tbl.ColumnIndex(order.ColumnID),
		product: tbl.ColumnIndex(order.ColumnProduct),
		dueDate: tbl.ColumnIndex(order.ColumnDueDate),
		done:    tbl.ColumnIndex(order.ColumnDone),
	}
	if tbl.IsEmpty() {
		return model.OrderList{}, nil
	}
	if cols.id < 0 || cols.product < 0 || cols.dueDate < 0 {
		uc.l.Warnf(ctx, "uc.decode: unrecognized header %q, treating store as empty", tbl.Header)
		return model.OrderList{}, nil
	}

	list := make(model.OrderList, 0, len(tbl.Rows))
	var unnumbered []int
	for r, row := range tbl.Rows {
		if cols.isBlankRow(row) {
			continue
		}
		line := r + 2 // 1-based, after the header

		id, ok, err := toInt(tbl.Cell(r, cols.id))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", order.ErrMalformedID, line, err)
		}
		if !ok {
			unnumbered = append(unnumbered, len(list))
		}

		due, err := toDate(tbl.Cell(r, cols.dueDate))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", order.ErrMalformedDate, line, err)
		}

		list = append(list, model.Order{
			ID:      id,
			Product: toText(tbl.Cell(r, cols.product)),
			DueDate: due,
			Done:    toBool(tbl.Cell(r, cols.done)),
		})
	}

	// Rows typed by hand into the sheet may lack an id; number them after
	// the current maximum so ids stay unique.
	next := list.NextID()
	for _, i := range unnumbered {
		list[i].ID = next
		next++
	}
	if len(unnumbered) > 0 {
		uc.l.Warnf(ctx, "uc.decode: assigned ids to %d rows without one", len(unnumbered))
	}

	seen := make(map[int]struct{}, len(list))
	for _, o := range list {
		if _, dup := seen[o.ID]; dup {
			return nil, fmt.Errorf("%w: %d", order.ErrDuplicateID, o.ID)
		}
		seen[o.ID] = struct{}{}
	}
	return list, nil
}

// encode lays out list in the canonical schema.
func encode(list model.OrderList) repository.Table {
	rows := make([][]interface{}, 0, len(list))
	for _, o := range list {
		rows = append(rows, []interface{}{o.ID, o.Product, datemath.Format(o.DueDate), o.Done})
	}
	header := make([]string, len(order.Columns))
	copy(header, order.Columns)
	return repository.Table{Header: header, Rows: rows}
}

// isBlankRow reports whether row has no id, product or due date, whatever
// its done cell holds.
func (c columns) isBlankRow(row []interface{}) bool {
	for _, i := range []int{c.id, c.product, c.dueDate} {
		if i < len(row) && !isBlank(row[i]) {
			return false
		}
	}
	return true
}

func isBlank(cell interface{}) bool {
	if cell == nil {
		return true
	}
	s, ok := cell.(string)
	return ok && strings.TrimSpace(s) == ""
}

// toInt reads an id cell. ok is false for a blank cell.
func toInt(cell interface{}) (id int, ok bool, err error) {
	if isBlank(cell) {
		return 0, false, nil
	}
	switch v := cell.(type) {
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	case float64:
		if v != math.Trunc(v) || v < 1 {
			return 0, false, fmt.Errorf("id %v is not a positive integer", v)
		}
		return int(v), true, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			return 0, false, fmt.Errorf("id %q is not a positive integer", v)
		}
		return n, true, nil
	}
	return 0, false, fmt.Errorf("id %v has unsupported type %T", cell, cell)
}

func toText(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.TrimSpace(fmt.Sprint(cell))
}

// toDate reads a due date cell: a spreadsheet serial number or text.
func toDate(cell interface{}) (time.Time, error) {
	switch v := cell.(type) {
	case float64:
		return datemath.FromSerial(v)
	case int:
		return datemath.FromSerial(float64(v))
	case time.Time:
		return datemath.CivilDate(v), nil
	case string:
		return datemath.ParseDate(v)
	case nil:
		return time.Time{}, fmt.Errorf("due date is blank")
	}
	return time.Time{}, fmt.Errorf("due date %v has unsupported type %T", cell, cell)
}

// toBool coerces a done cell. Blank is false; text that is not a known
// boolean word counts as true, like any other non-empty value.
func toBool(cell interface{}) bool {
	switch v := cell.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		switch s {
		case "", "false", "falso", "no", "n", "0", "f":
			return false
		}
		return true
	}
	return true
}
