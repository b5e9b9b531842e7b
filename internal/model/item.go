package model

import "time"

// Item is the domain model for a todo entry.
// Only IsDone ever changes after creation.
type Item struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	IsDone    bool      `json:"isDone"`
	CreatedAt time.Time `json:"createdAt"`
}

// Collection is an ordered snapshot of items, newest first.
// A snapshot is never modified once handed out; mutations build a new one.
type Collection []Item

// Index returns the position of the item with the given id, or -1.
func (c Collection) Index(id int) int {
	for i, it := range c {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Lookup returns the item with the given id.
func (c Collection) Lookup(id int) (Item, bool) {
	if i := c.Index(id); i >= 0 {
		return c[i], true
	}
	return Item{}, false
}

// IDs lists item ids in collection order.
func (c Collection) IDs() []int {
	out := make([]int, 0, len(c))
	for _, it := range c {
		out = append(out, it.ID)
	}
	return out
}
