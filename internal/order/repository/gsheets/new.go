package gsheets

import (
	"context"
	"fmt"
	"strings"

	"household-orders/internal/order/repository"
	pkgSheets "household-orders/pkg/gsheets"
	"household-orders/pkg/log"
)

// ValuesClient is the part of the Sheets API the repository needs.
// *gsheets.Client satisfies it.
type ValuesClient interface {
	GetValues(ctx context.Context, spreadsheetID, rng string) ([][]interface{}, error)
	UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]interface{}) (pkgSheets.UpdateResult, error)
}

type implRepository struct {
	client        ValuesClient
	spreadsheetID string
	sheetName     string
	l             log.Logger
}

// New creates a Google Sheets backed Repository reading and writing a whole tab.
func New(client ValuesClient, spreadsheetID, sheetName string, l log.Logger) repository.Repository {
	if client == nil {
		panic("order/repository/gsheets: client is required")
	}
	return &implRepository{
		client:        client,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		l:             l,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("order/repository/gsheets.%s", method)
}

// sheetRange is the A1 range covering the whole tab.
func (r *implRepository) sheetRange() string {
	return "'" + strings.ReplaceAll(r.sheetName, "'", "''") + "'"
}

// anchor is the top-left cell every overwrite starts from.
func (r *implRepository) anchor() string {
	return r.sheetRange() + "!A1"
}
