// Package bootstrap builds the order stack from configuration for the
// command entry points.
package bootstrap

import (
	"context"
	"fmt"

	"household-orders/config"
	"household-orders/internal/order"
	"household-orders/internal/order/repository"
	sheetsRepo "household-orders/internal/order/repository/gsheets"
	fileRepo "household-orders/internal/order/repository/jsonfile"
	"household-orders/internal/order/usecase"
	"household-orders/internal/pages"
	"household-orders/pkg/datemath"
	"household-orders/pkg/gsheets"
	"household-orders/pkg/log"
)

// Logger builds the zap logger described by cfg.
func Logger(cfg config.LoggerConfig) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Level,
		Mode:         cfg.Mode,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
	})
}

// OrderRepository opens the configured store.
func OrderRepository(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverSheets:
		client, err := gsheets.NewClientFromCredentialsFile(ctx, cfg.GoogleSheets.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("google sheets client: %w", err)
		}
		l.Infof(ctx, "Order store: Google Sheets %s / %s", cfg.GoogleSheets.SpreadsheetID, cfg.GoogleSheets.SheetName)
		return sheetsRepo.New(client, cfg.GoogleSheets.SpreadsheetID, cfg.GoogleSheets.SheetName, l), nil
	case config.StoreDriverFile:
		l.Infof(ctx, "Order store: file %s", cfg.FileStore.Path)
		return fileRepo.New(cfg.FileStore.Path, l), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// OrderUseCase wires the store, the timezone and the order use case.
func OrderUseCase(ctx context.Context, cfg *config.Config, l log.Logger) (order.UseCase, *datemath.Parser, error) {
	dm, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		return nil, nil, err
	}
	repo, err := OrderRepository(ctx, cfg, l)
	if err != nil {
		return nil, nil, err
	}
	return usecase.New(l, repo, dm, nil), dm, nil
}

// PagesContent converts the configured cards and links.
func PagesContent(cfg config.PagesConfig) pages.Content {
	cards := make([]pages.Card, 0, len(cfg.Cards))
	for _, c := range cfg.Cards {
		cards = append(cards, pages.Card{Name: c.Name, ImageURL: c.ImageURL})
	}
	links := make([]pages.Link, 0, len(cfg.Links))
	for _, l := range cfg.Links {
		links = append(links, pages.Link{Label: l.Label, URL: l.URL, Group: l.Group})
	}
	return pages.NewContent(cards, links, cfg.MapQuery)
}
