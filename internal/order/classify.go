package order

import (
	"sort"
	"strings"
	"time"

	"household-orders/internal/model"
)

// Classify splits list into buckets relative to today. It never touches the
// store and does not modify list.
func Classify(list model.OrderList, today time.Time) Buckets {
	var b Buckets
	for _, o := range list {
		switch {
		case o.Done:
			b.Completed = append(b.Completed, o)
		case o.DueDate.Before(today):
			b.Overdue = append(b.Overdue, o)
		case o.DueDate.Equal(today):
			b.DueToday = append(b.DueToday, o)
		default:
			b.Upcoming = append(b.Upcoming, o)
		}
	}

	sort.SliceStable(b.Completed, func(i, j int) bool {
		return b.Completed[i].DueDate.After(b.Completed[j].DueDate)
	})
	sort.SliceStable(b.Overdue, func(i, j int) bool {
		return b.Overdue[i].DueDate.Before(b.Overdue[j].DueDate)
	})
	sort.SliceStable(b.DueToday, func(i, j int) bool {
		return b.DueToday[i].Product < b.DueToday[j].Product
	})
	sort.SliceStable(b.Upcoming, func(i, j int) bool {
		return b.Upcoming[i].DueDate.Before(b.Upcoming[j].DueDate)
	})
	return b
}

// Filter keeps the Orders whose product contains query, ignoring case.
// An empty query returns list itself.
func Filter(list model.OrderList, query string) model.OrderList {
	if query == "" {
		return list
	}
	q := strings.ToLower(query)
	out := make(model.OrderList, 0, len(list))
	for _, o := range list {
		if strings.Contains(strings.ToLower(o.Product), q) {
			out = append(out, o)
		}
	}
	return out
}
