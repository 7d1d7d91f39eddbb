package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"household-orders/internal/order"
)

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Remove every completed order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := current.uc.ClearCompleted(cmd.Context(), order.ClearInput{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Removed == 0 {
				fmt.Fprintln(w, noticeStyle.Render("Nothing to remove"))
			} else {
				fmt.Fprintln(w, noticeStyle.Render(fmt.Sprintf("🧹 Removed %d completed orders", out.Removed)))
			}
			return printBoard(w, out.Board)
		},
	}
}
