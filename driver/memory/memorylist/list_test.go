package memorylist_test

import (
	"testing"

	"github.com/dogmatiq/primitivekit/collection"
	. "github.com/dogmatiq/primitivekit/driver/memory/memorylist"
	"github.com/google/go-cmp/cmp"
)

func TestList(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		collection.RunTests[int32](
			t,
			func(_ *testing.T, values ...int32) collection.Collection[int32] {
				return New(values...)
			},
		)
	})

	t.Run("float64", func(t *testing.T) {
		collection.RunTests[float64](
			t,
			func(_ *testing.T, values ...float64) collection.Collection[float64] {
				return New(values...)
			},
		)
	})

	t.Run("it preserves insertion order and duplicates", func(t *testing.T) {
		l := New[int64](3, 1, 3)

		if _, err := l.Add(1); err != nil {
			t.Fatal(err)
		}

		got, err := l.ToSlice()
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]int64{3, 1, 3, 1}, got); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it does not retain the slice passed to New", func(t *testing.T) {
		values := []int32{1, 2}
		l := New(values...)
		values[0] = 100

		ok, err := l.Contains(1)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("expected list to be unaffected")
		}
	})

	t.Run("it reports an ordered cursor", func(t *testing.T) {
		c := New[int32](1, 2).Cursor()

		if !c.Characteristics().Has(collection.Ordered) {
			t.Fatalf("unexpected characteristics: %s", c.Characteristics())
		}
	})

	t.Run("the zero value is an empty list", func(t *testing.T) {
		var l List[int32]

		if !l.IsEmpty() {
			t.Fatal("expected list to be empty")
		}

		if _, err := l.Add(1); err != nil {
			t.Fatal(err)
		}

		if n := l.Len(); n != 1 {
			t.Fatalf("unexpected length: got %d, want 1", n)
		}
	})
}

func BenchmarkList(b *testing.B) {
	collection.RunBenchmarks(
		b,
		func(values ...int64) collection.Collection[int64] {
			return New(values...)
		},
	)
}
