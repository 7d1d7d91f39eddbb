package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"household-orders/internal/order/repository"
)

type fileData struct {
	Header []string        `json:"header"`
	Rows   [][]interface{} `json:"rows"`
}

// Read loads the file. A missing file is an empty dataset.
func (r *implRepository) Read(ctx context.Context) (repository.Table, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return repository.Table{}, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("Read"), err)
		return repository.Table{}, fmt.Errorf("%w: read file: %v", repository.ErrFailedToRead, err)
	}
	if len(b) == 0 {
		return repository.Table{}, nil
	}

	var data fileData
	if err := json.Unmarshal(b, &data); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Read"), err)
		return repository.Table{}, fmt.Errorf("%w: json unmarshal: %v", repository.ErrFailedToRead, err)
	}
	return repository.Table{Header: data.Header, Rows: data.Rows}, nil
}

// Overwrite writes t to a temp file in the same directory and renames it
// over the target, so readers see either the old or the new dataset.
func (r *implRepository) Overwrite(ctx context.Context, t repository.Table) error {
	b, err := json.MarshalIndent(fileData{Header: t.Header, Rows: t.Rows}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: json marshal: %v", repository.ErrFailedToOverwrite, err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".orders-*.json")
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Overwrite"), err)
		return fmt.Errorf("%w: create temp: %v", repository.ErrFailedToOverwrite, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		r.l.Errorf(ctx, "%s: %v", r.dsn("Overwrite"), err)
		return fmt.Errorf("%w: write file: %v", repository.ErrFailedToOverwrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close file: %v", repository.ErrFailedToOverwrite, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Overwrite"), err)
		return fmt.Errorf("%w: rename: %v", repository.ErrFailedToOverwrite, err)
	}
	return nil
}
