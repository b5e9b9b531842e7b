package model

import (
	"reflect"
	"testing"
)

func TestCollectionLookup(t *testing.T) {
	c := Collection{
		{ID: 3, Content: "신발 사기"},
		{ID: 0, Content: "React 공부하기"},
		{ID: 1, Content: "빨래 널기", IsDone: true},
	}

	t.Run("found", func(t *testing.T) {
		if got := c.Index(0); got != 1 {
			t.Fatalf("Index(0) = %d, want 1", got)
		}
		it, ok := c.Lookup(1)
		if !ok || !it.IsDone || it.Content != "빨래 널기" {
			t.Fatalf("Lookup(1) = %+v, %v", it, ok)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if got := c.Index(42); got != -1 {
			t.Fatalf("Index(42) = %d, want -1", got)
		}
		if _, ok := c.Lookup(42); ok {
			t.Fatal("Lookup(42) reported a match")
		}
	})

	t.Run("ids keep order", func(t *testing.T) {
		if got, want := c.IDs(), []int{3, 0, 1}; !reflect.DeepEqual(got, want) {
			t.Fatalf("IDs() = %v, want %v", got, want)
		}
	})

	t.Run("nil collection", func(t *testing.T) {
		var empty Collection
		if empty.Index(0) != -1 || len(empty.IDs()) != 0 {
			t.Fatal("nil collection should behave as empty")
		}
	})
}
