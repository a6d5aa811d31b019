package cursor_test

import (
	"testing"

	"github.com/dogmatiq/primitivekit/collection"
	. "github.com/dogmatiq/primitivekit/cursor"
	"github.com/google/go-cmp/cmp"
)

func TestSlice(t *testing.T) {
	t.Parallel()

	t.Run("it splits off the first half of the remaining elements", func(t *testing.T) {
		t.Parallel()

		c := OfSlice([]int32{1, 2, 3, 4, 5}, collection.Ordered)

		prefix, err := c.TrySplit()
		if err != nil {
			t.Fatal(err)
		}

		var head, tail []int32
		if err := prefix.ForEachRemaining(func(v int32) { head = append(head, v) }); err != nil {
			t.Fatal(err)
		}
		if err := c.ForEachRemaining(func(v int32) { tail = append(tail, v) }); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]int32{1, 2}, head); diff != "" {
			t.Fatal(diff)
		}
		if diff := cmp.Diff([]int32{3, 4, 5}, tail); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it does not split fewer than two elements", func(t *testing.T) {
		t.Parallel()

		c := OfSlice([]int32{1}, 0)

		prefix, err := c.TrySplit()
		if err != nil {
			t.Fatal(err)
		}
		if prefix != nil {
			t.Fatal("did not expect a split")
		}
	})

	t.Run("it reports an exact size", func(t *testing.T) {
		t.Parallel()

		c := OfSlice([]int64{1, 2, 3}, 0)

		if got := c.EstimateSize(); got != 3 {
			t.Fatalf("unexpected estimate: got %d, want 3", got)
		}

		if _, err := c.TryAdvance(func(int64) {}); err != nil {
			t.Fatal(err)
		}

		if got := c.EstimateSize(); got != 2 {
			t.Fatalf("unexpected estimate: got %d, want 2", got)
		}

		want := collection.Sized | collection.Subsized
		if got := c.Characteristics(); got != want {
			t.Fatalf("unexpected characteristics: got %s, want %s", got, want)
		}
	})

	t.Run("it does not share elements between the prefix and the remainder", func(t *testing.T) {
		t.Parallel()

		values := []int32{1, 2, 3, 4}
		c := OfSlice(values, 0)

		prefix, err := c.TrySplit()
		if err != nil {
			t.Fatal(err)
		}

		if err := prefix.ForEachRemaining(func(int32) {}); err != nil {
			t.Fatal(err)
		}

		var tail []int32
		if err := c.ForEachRemaining(func(v int32) { tail = append(tail, v) }); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]int32{3, 4}, tail); diff != "" {
			t.Fatal(diff)
		}
	})
}
