package jsonfile

import (
	"fmt"

	"household-orders/internal/order/repository"
	"household-orders/pkg/log"
)

// File-backed storage. Single JSON file, human-readable, rewritten whole on
// every overwrite. Meant for local development without a spreadsheet.

type implRepository struct {
	path string
	l    log.Logger
}

// New creates a Repository storing the dataset in the JSON file at path.
func New(path string, l log.Logger) repository.Repository {
	if path == "" {
		panic("order/repository/jsonfile: path is required")
	}
	return &implRepository{path: path, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("order/repository/jsonfile.%s", method)
}
