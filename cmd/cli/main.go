package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"household-orders/config"
	"household-orders/internal/bootstrap"
	"household-orders/internal/order"
	"household-orders/pkg/datemath"
)

// app is what every subcommand needs once the config is loaded.
type app struct {
	uc       order.UseCase
	dateMath *datemath.Parser
}

var (
	cfgFile string
	current app

	rootCmd = &cobra.Command{
		Use:   "orders",
		Short: "🏠 Household shopping list from the terminal",
		Long: `orders reads and edits the same order list as the web page.

Every command reads the whole list from the store; add, toggle and
clear-completed rewrite it and print the refreshed board.`,
		SilenceUsage:      true,
		PersistentPreRunE: initApp,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config/config.yaml)")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(toggleCmd())
	rootCmd.AddCommand(clearCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initApp(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Commands print their own output; keep the logger quiet unless asked.
	logCfg := cfg.Logger
	if logCfg.Level == "debug" {
		logCfg.Level = "warn"
	}
	l := bootstrap.Logger(logCfg)

	uc, dm, err := bootstrap.OrderUseCase(cmd.Context(), cfg, l)
	if err != nil {
		return fmt.Errorf("failed to open order store: %w", err)
	}
	current = app{uc: uc, dateMath: dm}
	return nil
}
