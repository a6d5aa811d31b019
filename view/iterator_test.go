package view_test

import (
	"testing"

	"github.com/dogmatiq/primitivekit/collection"
	"github.com/dogmatiq/primitivekit/driver/memory/memorylist"
	"github.com/dogmatiq/primitivekit/internal/spy"
	. "github.com/dogmatiq/primitivekit/view"
	"github.com/google/go-cmp/cmp"
)

func TestOfIterator(t *testing.T) {
	t.Parallel()

	setup := func(p Policy, values ...int32) (*Iterator[int32], *memorylist.List[int32], *spy.Log) {
		var log spy.Log
		list := memorylist.New(values...)
		return OfIterator[int32](spy.OfIterator(list.Iterator(), &log), p), list, &log
	}

	t.Run("it forwards HasNext and Next under every policy", func(t *testing.T) {
		t.Parallel()

		for _, p := range policies {
			it, _, log := setup(p, 1)

			if !it.HasNext() {
				t.Fatal("expected an element")
			}

			v, err := it.NextAny()
			if err != nil {
				t.Fatal(err)
			}
			if v != int32(1) {
				t.Fatalf("unexpected element: got %v, want 1", v)
			}

			if _, err := it.Next(); err != collection.ErrExhausted {
				t.Fatalf("unexpected error: got %v, want %v", err, collection.ErrExhausted)
			}

			want := []string{"Iterator.HasNext", "Iterator.Next", "Iterator.Next"}
			if diff := cmp.Diff(want, log.Calls()); diff != "" {
				t.Fatalf("%s: %s", p, diff)
			}
		}
	})

	t.Run("it forwards ForEachRemaining only under the pure policy", func(t *testing.T) {
		t.Parallel()

		for _, p := range policies {
			it, _, log := setup(p, 1, 2)

			var got []any
			if err := it.ForEachRemainingAny(func(v any) { got = append(got, v) }); err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff([]any{int32(1), int32(2)}, got); diff != "" {
				t.Fatal(diff)
			}

			forwarded := log.Count("Iterator.ForEachRemaining") == 1
			if forwarded != (p == Pure) {
				t.Fatalf("%s: unexpected calls: %v", p, log.Calls())
			}
		}
	})

	t.Run("it removes elements unless the policy is minimal", func(t *testing.T) {
		t.Parallel()

		for _, p := range policies {
			it, list, _ := setup(p, 1, 2)

			if _, err := it.Next(); err != nil {
				t.Fatal(err)
			}

			err := it.Remove()

			if p == Minimal {
				if !collection.IsUnsupportedMutation(err) {
					t.Fatalf("unexpected error: %v", err)
				}
				if n := list.Len(); n != 2 {
					t.Fatalf("unexpected length: got %d, want 2", n)
				}
				continue
			}

			if err != nil {
				t.Fatal(err)
			}
			if n := list.Len(); n != 1 {
				t.Fatalf("%s: unexpected length: got %d, want 1", p, n)
			}
		}
	})
}
