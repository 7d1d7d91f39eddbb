package order_test

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
	"time"

	"household-orders/internal/model"
	"household-orders/internal/order"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ids(orders []model.Order) []int {
	out := make([]int, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestClassify(t *testing.T) {
	today := day(2024, 1, 5)

	t.Run("Overdue only", func(t *testing.T) {
		list := model.OrderList{{ID: 1, Product: "Milk", DueDate: day(2024, 1, 1)}}
		b := order.Classify(list, today)

		if !reflect.DeepEqual(ids(b.Overdue), []int{1}) {
			t.Errorf("expected overdue=[1], got %v", ids(b.Overdue))
		}
		if len(b.DueToday)+len(b.Upcoming)+len(b.Completed) != 0 {
			t.Errorf("expected other buckets empty, got %+v", b)
		}
	})

	t.Run("Done goes to completed whatever the date", func(t *testing.T) {
		list := model.OrderList{{ID: 1, Product: "Milk", DueDate: day(2024, 1, 1), Done: true}}
		b := order.Classify(list, today)

		if !reflect.DeepEqual(ids(b.Completed), []int{1}) {
			t.Errorf("expected completed=[1], got %v", ids(b.Completed))
		}
		if len(b.Overdue) != 0 {
			t.Errorf("expected overdue empty, got %v", ids(b.Overdue))
		}
	})

	t.Run("Ordering per bucket", func(t *testing.T) {
		list := model.OrderList{
			{ID: 1, Product: "Pane", DueDate: day(2024, 1, 5)},
			{ID: 2, Product: "Acqua", DueDate: day(2024, 1, 5)},
			{ID: 3, Product: "Uova", DueDate: day(2024, 1, 3)},
			{ID: 4, Product: "Sale", DueDate: day(2024, 1, 1)},
			{ID: 5, Product: "Olio", DueDate: day(2024, 1, 20)},
			{ID: 6, Product: "Riso", DueDate: day(2024, 1, 8)},
			{ID: 7, Product: "Caffè", DueDate: day(2024, 1, 2), Done: true},
			{ID: 8, Product: "Zucchero", DueDate: day(2024, 1, 9), Done: true},
		}
		b := order.Classify(list, today)

		if got := ids(b.Overdue); !reflect.DeepEqual(got, []int{4, 3}) {
			t.Errorf("overdue: expected [4 3] (due date ascending), got %v", got)
		}
		if got := ids(b.DueToday); !reflect.DeepEqual(got, []int{2, 1}) {
			t.Errorf("due today: expected [2 1] (product ascending), got %v", got)
		}
		if got := ids(b.Upcoming); !reflect.DeepEqual(got, []int{6, 5}) {
			t.Errorf("upcoming: expected [6 5] (due date ascending), got %v", got)
		}
		if got := ids(b.Completed); !reflect.DeepEqual(got, []int{8, 7}) {
			t.Errorf("completed: expected [8 7] (due date descending), got %v", got)
		}
	})

	t.Run("Does not modify input", func(t *testing.T) {
		list := model.OrderList{
			{ID: 1, Product: "B", DueDate: day(2024, 1, 9)},
			{ID: 2, Product: "A", DueDate: day(2024, 1, 6)},
		}
		before := list.Clone()
		order.Classify(list, today)
		if !reflect.DeepEqual(list, before) {
			t.Errorf("Classify modified its input")
		}
	})
}

// Every order lands in exactly one bucket, for any list and any today.
func TestClassifyPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := day(2024, 1, 1)

	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(30)
		list := make(model.OrderList, n)
		for i := range list {
			list[i] = model.Order{
				ID:      i + 1,
				Product: string(rune('a' + rng.Intn(26))),
				DueDate: base.AddDate(0, 0, rng.Intn(20)),
				Done:    rng.Intn(3) == 0,
			}
		}
		today := base.AddDate(0, 0, rng.Intn(20))

		b := order.Classify(list, today)
		if b.Len() != len(list) {
			t.Fatalf("iteration %d: expected %d orders in buckets, got %d", iter, len(list), b.Len())
		}

		seen := map[int]int{}
		for _, bucket := range [][]model.Order{b.Overdue, b.DueToday, b.Upcoming, b.Completed} {
			for _, o := range bucket {
				seen[o.ID]++
			}
		}
		got := make([]int, 0, len(seen))
		for id, count := range seen {
			if count != 1 {
				t.Fatalf("iteration %d: order %d appears in %d buckets", iter, id, count)
			}
			got = append(got, id)
		}
		sort.Ints(got)
		want := ids(list)
		sort.Ints(want)
		if len(want) > 0 && !reflect.DeepEqual(got, want) {
			t.Fatalf("iteration %d: bucket union %v differs from input %v", iter, got, want)
		}
	}
}

func TestFilter(t *testing.T) {
	list := model.OrderList{
		{ID: 1, Product: "Milk", DueDate: day(2024, 1, 1)},
		{ID: 2, Product: "Bread", DueDate: day(2024, 1, 10)},
		{ID: 3, Product: "Almond milk", DueDate: day(2024, 1, 10)},
	}

	t.Run("Empty query is identity", func(t *testing.T) {
		got := order.Filter(list, "")
		if !reflect.DeepEqual(got, list) {
			t.Errorf("expected identical list, got %v", got)
		}
	})

	t.Run("Case insensitive substring", func(t *testing.T) {
		for _, q := range []string{"mil", "MIL", "Milk"} {
			got := order.Filter(list, q)
			if !reflect.DeepEqual(ids(got), []int{1, 3}) {
				t.Errorf("Filter(%q): expected [1 3], got %v", q, ids(got))
			}
		}
	})

	t.Run("No match", func(t *testing.T) {
		if got := order.Filter(list, "olio"); len(got) != 0 {
			t.Errorf("expected no matches, got %v", ids(got))
		}
	})
}
