package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"household-orders/internal/model"
	"household-orders/internal/order"
)

const displayDate = "02/01/2006"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("245"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

type section struct {
	title  string
	orders []model.Order
	style  *lipgloss.Style
}

func sections(b order.Buckets) []section {
	return []section{
		{title: "🔴 Overdue", orders: b.Overdue, style: &overdueStyle},
		{title: "📅 Today", orders: b.DueToday},
		{title: "🗓️  Upcoming", orders: b.Upcoming},
		{title: "✅ Completed", orders: b.Completed, style: &doneStyle},
	}
}

// printBoard writes the board as one table per bucket. Empty buckets are
// skipped.
func printBoard(w io.Writer, out order.BoardOutput) error {
	header := fmt.Sprintf("%d of %d orders · today %s", out.Matched, out.Total, out.Today.Format(displayDate))
	if out.Query != "" {
		header += fmt.Sprintf(" · search %q", out.Query)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, s := range sections(out.Buckets) {
		if len(s.orders) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", titleStyle.Render(s.title)); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, o := range s.orders {
			product := o.Product
			if s.style != nil {
				product = s.style.Render(product)
			}
			if _, err := fmt.Fprintf(tw, "  #%d\t%s\t%s\n", o.ID, product, o.DueDate.Format(displayDate)); err != nil {
				return err
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
