package memoryset_test

import (
	"math"
	"testing"

	"github.com/dogmatiq/primitivekit/collection"
	. "github.com/dogmatiq/primitivekit/driver/memory/memoryset"
)

func TestSet(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		collection.RunTests[int64](
			t,
			func(_ *testing.T, values ...int64) collection.Collection[int64] {
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

	t.Run("it identifies floats by their bit pattern", func(t *testing.T) {
		s := New(math.NaN(), 0.0)

		if ok, _ := s.Add(math.NaN()); ok {
			t.Fatal("did not expect NaN to be added twice")
		}

		if ok, _ := s.Add(math.Copysign(0, -1)); !ok {
			t.Fatal("expected -0.0 to be distinct from 0.0")
		}

		if n := s.Len(); n != 3 {
			t.Fatalf("unexpected length: got %d, want 3", n)
		}
	})

	t.Run("it visits the moved element after removing through an iterator", func(t *testing.T) {
		s := New[int32](1, 2, 3, 4)
		it := s.Iterator()

		seen := 0
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				t.Fatal(err)
			}
			seen++

			if v == 1 {
				if err := it.Remove(); err != nil {
					t.Fatal(err)
				}
			}
		}

		if seen != 4 {
			t.Fatalf("unexpected number of elements visited: got %d, want 4", seen)
		}

		if n := s.Len(); n != 3 {
			t.Fatalf("unexpected length: got %d, want 3", n)
		}
	})

	t.Run("it reports a distinct cursor", func(t *testing.T) {
		c := New[int32](1, 2).Cursor()

		if !c.Characteristics().Has(collection.Distinct) {
			t.Fatalf("unexpected characteristics: %s", c.Characteristics())
		}
	})
}

func BenchmarkSet(b *testing.B) {
	collection.RunBenchmarks(
		b,
		func(values ...int64) collection.Collection[int64] {
			return New(values...)
		},
	)
}
