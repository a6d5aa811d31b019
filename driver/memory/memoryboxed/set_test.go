package memoryboxed_test

import (
	"math"
	"testing"

	"github.com/dogmatiq/primitivekit/collection"
	. "github.com/dogmatiq/primitivekit/driver/memory/memoryboxed"
	"github.com/google/go-cmp/cmp"
)

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("it discards duplicate values", func(t *testing.T) {
		t.Parallel()

		s := New("a", int32(1), "a", math.NaN(), math.NaN())

		if n := s.Len(); n != 3 {
			t.Fatalf("unexpected length: got %d, want 3", n)
		}
	})

	t.Run("it distinguishes values of different types", func(t *testing.T) {
		t.Parallel()

		s := New(int32(1))

		ok, err := s.ContainsAny(int64(1))
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("did not expect int64(1) to be present")
		}
	})

	t.Run("it never considers a non-comparable value present", func(t *testing.T) {
		t.Parallel()

		v := []int{1}
		s := New(v, v, struct{ X any }{[]int{1}})

		if n := s.Len(); n != 3 {
			t.Fatalf("unexpected length: got %d, want 3", n)
		}

		ok, err := s.ContainsAny(v)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("did not expect a slice to be present")
		}
	})

	t.Run("it visits elements in insertion order", func(t *testing.T) {
		t.Parallel()

		s := New(3.0, "b", int64(1))
		s.Remove("b")

		var got []any
		if err := s.RangeAny(func(v any) bool {
			got = append(got, v)
			return true
		}); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]any{3.0, int64(1)}, got); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it has the same hash as an equal primitive set", func(t *testing.T) {
		t.Parallel()

		s := New(int32(4), int32(9))

		got, err := s.Hash()
		if err != nil {
			t.Fatal(err)
		}

		want := collection.HashElement[int32](4) + collection.HashElement[int32](9)
		if got != want {
			t.Fatalf("unexpected hash: got %d, want %d", got, want)
		}
	})
}
