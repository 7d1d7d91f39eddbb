package main

import (
	"github.com/spf13/cobra"

	"household-orders/internal/order"
)

func listCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the board",
		Long: `Show overdue, due today, upcoming and completed orders.

--query keeps only the products containing the text, ignoring case.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := current.uc.Board(cmd.Context(), order.BoardInput{Query: query})
			if err != nil {
				return err
			}
			return printBoard(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by product")
	return cmd
}
