package usecase_test

import (
	"context"
	"errors"
	"testing"

	"household-orders/internal/order"
	"household-orders/internal/order/repository"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty store", func(t *testing.T) {
		list, err := newUseCase(&memRepo{}).Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 0 {
			t.Errorf("expected empty list, got %v", list)
		}
	})

	t.Run("Unrecognized columns", func(t *testing.T) {
		repo := &memRepo{table: repository.Table{
			Header: []string{"Item", "When"},
			Rows:   [][]interface{}{{"Latte", "2024-01-01"}},
		}}
		list, err := newUseCase(repo).Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 0 {
			t.Errorf("expected empty list, got %v", list)
		}
	})

	t.Run("Trims header and normalizes cells", func(t *testing.T) {
		repo := &memRepo{table: repository.Table{
			Header: []string{" ID ", "Prodotto ", " Data", "Consegnato  "},
			Rows: [][]interface{}{
				{float64(1), " Latte ", float64(45292), true},
				{"2", "Pane", "10/01/2024", "FALSE"},
				{float64(3), "Uova", "2024-01-03"},
				{"", "", "", ""},
				{float64(4), float64(12), "2024-01-04", ""},
			},
		}}
		list, err := newUseCase(repo).Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 4 {
			t.Fatalf("expected 4 orders (blank row skipped), got %d", len(list))
		}
		if list[0].Product != "Latte" || !list[0].DueDate.Equal(day(2024, 1, 1)) || !list[0].Done {
			t.Errorf("unexpected first order: %+v", list[0])
		}
		if list[1].ID != 2 || !list[1].DueDate.Equal(day(2024, 1, 10)) || list[1].Done {
			t.Errorf("unexpected second order: %+v", list[1])
		}
		if list[2].Done {
			t.Errorf("missing done cell should be false: %+v", list[2])
		}
		if list[3].Product != "12" || list[3].Done {
			t.Errorf("unexpected fourth order: %+v", list[3])
		}
	})

	t.Run("Blank done column is all false", func(t *testing.T) {
		repo := &memRepo{table: repository.Table{
			Header: header,
			Rows: [][]interface{}{
				{float64(1), "Latte", "2024-01-01", nil},
				{float64(2), "Pane", "2024-01-02", ""},
				{float64(3), "Uova", "2024-01-03"},
			},
		}}
		list, err := newUseCase(repo).Load(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for _, o := range list {
			if o.Done {
				t.Errorf("order %d should not be done", o.ID)
			}
		}
	})

	t.Run("Checkbox-only rows are skipped", func(t *testing.T) {
		repo := &memRepo{table: repository.Table{
			Header: header,
			Rows: [][]interface{}{
				{float64(1), "Milk", float64(45292), false},
				{"", "", "", false},
				{nil, nil, nil, true},
				{"", " ", ""},
			},
		}}
		list, err := newUseCase(repo).Load(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(list) != 1 || list[0].ID != 1 || list[0].Product != "Milk" {
			t.Errorf("expected only Milk, got %+v", list)
		}
	})

	t.Run("Row with a product but no date is malformed", func(t *testing.T) {
		repo := &memRepo{table: repository.Table{
			Header: header,
			Rows:   [][]interface{}{{"", "Milk", "", false}},
		}}
		_, err := newUseCase(repo).Load(ctx)
		if !errors.Is(err, order.ErrMalformedDate) {
			t.Errorf("expected ErrMalformedDate, got %v", err)
		}
	})

	t.Run("Missing done column", func(t *testing.T) {
		repo := &memRepo{table: repository.Table{
			Header: []string{"ID", "Prodotto", "Data"},
			Rows:   [][]interface{}{{float64(1), "Latte", "2024-01-01"}},
		}}
		list, err := newUseCase(repo).Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 || list[0].Done {
			t.Errorf("unexpected list: %+v", list)
		}
	})

	t.Run("Malformed date fails the load", func(t *testing.T) {
		for _, cell := range []interface{}{"domani", nil, ""} {
			repo := &memRepo{table: repository.Table{
				Header: header,
				Rows: [][]interface{}{
					{float64(1), "Latte", "2024-01-01", false},
					{float64(2), "Pane", cell, false},
				},
			}}
			_, err := newUseCase(repo).Load(ctx)
			if !errors.Is(err, order.ErrMalformedDate) {
				t.Errorf("cell %#v: expected ErrMalformedDate, got %v", cell, err)
			}
		}
	})

	t.Run("Malformed id fails the load", func(t *testing.T) {
		repo := &memRepo{table: repository.Table{
			Header: header,
			Rows:   [][]interface{}{{"uno", "Latte", "2024-01-01", false}},
		}}
		_, err := newUseCase(repo).Load(ctx)
		if !errors.Is(err, order.ErrMalformedID) {
			t.Errorf("expected ErrMalformedID, got %v", err)
		}
	})

	t.Run("Duplicate id fails the load", func(t *testing.T) {
		repo := &memRepo{table: repository.Table{
			Header: header,
			Rows: [][]interface{}{
				{float64(1), "Latte", "2024-01-01", false},
				{float64(1), "Pane", "2024-01-02", false},
			},
		}}
		_, err := newUseCase(repo).Load(ctx)
		if !errors.Is(err, order.ErrDuplicateID) {
			t.Errorf("expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("Rows without id are numbered after the max", func(t *testing.T) {
		repo := &memRepo{table: repository.Table{
			Header: header,
			Rows: [][]interface{}{
				{nil, "Latte", "2024-01-01", false},
				{float64(7), "Pane", "2024-01-02", false},
				{"", "Uova", "2024-01-03", false},
			},
		}}
		list, err := newUseCase(repo).Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list[0].ID != 8 || list[1].ID != 7 || list[2].ID != 9 {
			t.Errorf("unexpected ids: %d %d %d", list[0].ID, list[1].ID, list[2].ID)
		}
	})

	t.Run("Store unavailable", func(t *testing.T) {
		repo := &memRepo{readErr: repository.ErrFailedToRead}
		_, err := newUseCase(repo).Load(ctx)
		if !errors.Is(err, order.ErrStoreUnavailable) {
			t.Errorf("expected ErrStoreUnavailable, got %v", err)
		}
		if !errors.Is(err, repository.ErrFailedToRead) {
			t.Errorf("expected repository cause to be kept, got %v", err)
		}
	})

	t.Run("Every load reads the store", func(t *testing.T) {
		repo := &memRepo{}
		uc := newUseCase(repo)
		uc.Load(ctx)
		uc.Load(ctx)
		if repo.reads != 2 {
			t.Errorf("expected 2 reads, got %d", repo.reads)
		}
	})
}

func TestBoard(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{table: repository.Table{
		Header: header,
		Rows: [][]interface{}{
			{float64(1), "Milk", "2024-01-01", false},
			{float64(2), "Bread", "2024-01-05", false},
			{float64(3), "Almond milk", "2024-01-09", false},
			{float64(4), "Soap", "2024-01-02", true},
		},
	}}
	uc := newUseCase(repo)

	t.Run("No query", func(t *testing.T) {
		out, err := uc.Board(ctx, order.BoardInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Today.Equal(day(2024, 1, 5)) {
			t.Errorf("unexpected today: %v", out.Today)
		}
		if out.Total != 4 || out.Matched != 4 {
			t.Errorf("expected 4/4, got %d/%d", out.Matched, out.Total)
		}
		if len(out.Buckets.Overdue) != 1 || len(out.Buckets.DueToday) != 1 ||
			len(out.Buckets.Upcoming) != 1 || len(out.Buckets.Completed) != 1 {
			t.Errorf("unexpected buckets: %+v", out.Buckets)
		}
	})

	t.Run("Query filters before classification", func(t *testing.T) {
		out, err := uc.Board(ctx, order.BoardInput{Query: " MILK "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Query != "MILK" {
			t.Errorf("expected trimmed query, got %q", out.Query)
		}
		if out.Total != 4 || out.Matched != 2 {
			t.Errorf("expected 2/4, got %d/%d", out.Matched, out.Total)
		}
		if len(out.Buckets.Overdue) != 1 || len(out.Buckets.Upcoming) != 1 || len(out.Buckets.DueToday) != 0 {
			t.Errorf("unexpected buckets: %+v", out.Buckets)
		}
	})

	t.Run("Search never writes", func(t *testing.T) {
		if repo.writes != 0 {
			t.Errorf("expected no writes, got %d", repo.writes)
		}
	})
}
