package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"household-orders/internal/order"
)

func addCmd() *cobra.Command {
	var due string
	cmd := &cobra.Command{
		Use:   "add <product>",
		Short: "Add an order",
		Long: `Add a not done order with the next free id.

--due accepts 2024-01-31, 31/01/2024 or relative words such as today,
domani, "in 3 days" or "next friday". It defaults to today.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := resolveDue(due, time.Now())
			if err != nil {
				return err
			}
			out, err := current.uc.Add(cmd.Context(), order.AddInput{
				Product: strings.Join(args, " "),
				DueDate: dueDate,
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, noticeStyle.Render(fmt.Sprintf("✅ Added #%d %s", out.Order.ID, out.Order.Product)))
			return printBoard(w, out.Board)
		},
	}
	cmd.Flags().StringVar(&due, "due", "", "due date (default today)")
	return cmd
}

func resolveDue(raw string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return current.dateMath.Today(now), nil
	}
	d, err := current.dateMath.Parse(raw, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", order.ErrInvalidDueDate, err)
	}
	return d, nil
}
