package model

import "time"

// Order is one shopping-list entry.
type Order struct {
	ID      int
	Product string
	DueDate time.Time // calendar date, midnight UTC
	Done    bool
}

// OrderList is the whole list as persisted, in store order.
type OrderList []Order

// MaxID returns the largest id in the list, 0 when empty.
func (l OrderList) MaxID() int {
	max := 0
	for _, o := range l {
		if o.ID > max {
			max = o.ID
		}
	}
	return max
}

// NextID is the id the next added Order gets.
func (l OrderList) NextID() int {
	return l.MaxID() + 1
}

// Index returns the position of the Order with the given id, or -1.
func (l OrderList) Index(id int) int {
	for i, o := range l {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy that can be mutated without touching l.
func (l OrderList) Clone() OrderList {
	out := make(OrderList, len(l))
	copy(out, l)
	return out
}
