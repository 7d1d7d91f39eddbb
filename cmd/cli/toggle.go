package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"household-orders/internal/order"
)

func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark an order done, or open again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			out, err := current.uc.ToggleDone(cmd.Context(), order.ToggleInput{ID: id})
			if err != nil {
				return err
			}
			state := "open"
			if out.Order.Done {
				state = "done"
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, noticeStyle.Render(fmt.Sprintf("#%d %s is %s", out.Order.ID, out.Order.Product, state)))
			return printBoard(w, out.Board)
		},
	}
}
