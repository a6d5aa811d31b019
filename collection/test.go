package collection

import (
	"cmp"
	"errors"
	"slices"
	"sync"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

// A Factory returns a new collection containing the given values.
type Factory[T Element] func(t *testing.T, values ...T) Collection[T]

// RunTests runs tests that confirm a mutable [Collection] implementation
// behaves correctly.
//
// If the collections returned by the factory discard duplicate values, they
// are expected to do so consistently.
func RunTests[T Element](t *testing.T, factory Factory[T]) {
	RunReadTests(t, factory)
	runMutationTests(t, factory)
}

// RunReadTests runs tests that confirm the read-only operations of a
// [Collection] implementation behave correctly.
func RunReadTests[T Element](t *testing.T, factory Factory[T]) {
	t.Run("Kind", func(t *testing.T) {
		t.Parallel()

		c := factory(t)
		if got, want := c.Kind(), KindOf[T](); got != want {
			t.Fatalf("unexpected kind: got %s, want %s", got, want)
		}
	})

	t.Run("Len", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns zero for an empty collection", func(t *testing.T) {
			t.Parallel()

			c := factory(t)
			if n := c.Len(); n != 0 {
				t.Fatalf("unexpected length: got %d, want 0", n)
			}
			if !c.IsEmpty() {
				t.Fatal("expected collection to be empty")
			}
		})

		t.Run("it returns the number of elements", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)
			if n := c.Len(); n != 3 {
				t.Fatalf("unexpected length: got %d, want 3", n)
			}
			if c.IsEmpty() {
				t.Fatal("did not expect collection to be empty")
			}
		})
	})

	t.Run("Contains", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns true if the value is present", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)
			expectContains(t, c, 2, true)
		})

		t.Run("it returns false if the value is not present", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)
			expectContains(t, c, 4, false)
		})

		t.Run("it returns false for boxed values of a different kind", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)

			ok, err := c.ContainsAny(T(2))
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatal("expected boxed value of the same kind to be present")
			}

			ok, err = c.ContainsAny("2")
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				t.Fatal("did not expect a string to be present")
			}

			ok, err = c.ContainsAny(otherKind[T](2))
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				t.Fatal("did not expect a value of a different kind to be present")
			}
		})
	})

	t.Run("ContainsAll", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns true if every element of a primitive collection is present", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)
			ok, err := c.ContainsAll(factory(t, 3, 1))
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatal("expected ok to be true")
			}
		})

		t.Run("it returns false if any element of a primitive collection is absent", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)
			ok, err := c.ContainsAll(factory(t, 3, 4))
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				t.Fatal("expected ok to be false")
			}
		})

		t.Run("it returns true for an empty collection", func(t *testing.T) {
			t.Parallel()

			c := factory(t)
			ok, err := c.ContainsAll(factory(t))
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatal("expected ok to be true")
			}
		})
	})

	t.Run("Range", func(t *testing.T) {
		t.Parallel()

		t.Run("it visits every element", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)
			expectElements(t, c, 1, 2, 3)
		})

		t.Run("it stops when the function returns false", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)
			n := 0

			if err := c.Range(func(T) bool {
				n++
				return false
			}); err != nil {
				t.Fatal(err)
			}

			if n != 1 {
				t.Fatalf("unexpected number of calls: got %d, want 1", n)
			}
		})

		t.Run("it visits boxed elements", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)
			var got []T

			if err := c.RangeAny(func(v any) bool {
				got = append(got, v.(T))
				return true
			}); err != nil {
				t.Fatal(err)
			}

			slices.Sort(got)
			if diff := gocmp.Diff([]T{1, 2, 3}, got); diff != "" {
				t.Fatal(diff)
			}
		})
	})

	t.Run("ToSlice", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns a non-nil slice for an empty collection", func(t *testing.T) {
			t.Parallel()

			c := factory(t)
			s, err := c.ToSlice()
			if err != nil {
				t.Fatal(err)
			}
			if s == nil || len(s) != 0 {
				t.Fatalf("unexpected slice: %#v", s)
			}
		})

		t.Run("it does not share memory with the collection", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)
			s, err := c.ToSlice()
			if err != nil {
				t.Fatal(err)
			}

			for i := range s {
				s[i] = 100
			}

			expectElements(t, c, 1, 2, 3)
		})
	})

	t.Run("Iterator", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns ErrExhausted after the last element", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1)
			it := c.Iterator()

			if _, err := it.Next(); err != nil {
				t.Fatal(err)
			}

			if it.HasNext() {
				t.Fatal("did not expect more elements")
			}

			if _, err := it.Next(); !errors.Is(err, ErrExhausted) {
				t.Fatalf("unexpected error: got %v, want %v", err, ErrExhausted)
			}
		})

		t.Run("it visits the remaining elements in bulk", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)
			it := c.Iterator()

			first, err := it.Next()
			if err != nil {
				t.Fatal(err)
			}

			got := []T{first}
			if err := it.ForEachRemaining(func(v T) {
				got = append(got, v)
			}); err != nil {
				t.Fatal(err)
			}

			slices.Sort(got)
			if diff := gocmp.Diff([]T{1, 2, 3}, got); diff != "" {
				t.Fatal(diff)
			}
		})
	})

	t.Run("Cursor", func(t *testing.T) {
		t.Parallel()

		t.Run("it visits every element exactly once across splits", func(t *testing.T) {
			t.Parallel()

			values := make([]T, 3000)
			for i := range values {
				values[i] = T(i)
			}

			c := factory(t, values...)
			cur := c.Cursor()

			var got []T
			collect := func(v T) { got = append(got, v) }

			for {
				batch, err := cur.TrySplit()
				if err != nil {
					t.Fatal(err)
				}
				if batch == nil {
					break
				}
				if err := batch.ForEachRemaining(collect); err != nil {
					t.Fatal(err)
				}
			}

			if err := cur.ForEachRemaining(collect); err != nil {
				t.Fatal(err)
			}

			slices.Sort(got)
			if diff := gocmp.Diff(values, got); diff != "" {
				t.Fatal(diff)
			}
		})
	})

	t.Run("ParallelRange", func(t *testing.T) {
		t.Parallel()

		t.Run("it visits every element", func(t *testing.T) {
			t.Parallel()

			values := make([]T, 5000)
			for i := range values {
				values[i] = T(i)
			}

			c := factory(t, values...)

			var (
				m   sync.Mutex
				got []T
			)

			if err := c.ParallelRange(4, func(v T) error {
				m.Lock()
				defer m.Unlock()
				got = append(got, v)
				return nil
			}); err != nil {
				t.Fatal(err)
			}

			slices.Sort(got)
			if diff := gocmp.Diff(values, got); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it returns the error returned by the function", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)
			want := errors.New("<error>")

			err := c.ParallelRange(2, func(T) error {
				return want
			})
			if !errors.Is(err, want) {
				t.Fatalf("unexpected error: got %v, want %v", err, want)
			}
		})
	})
}

func runMutationTests[T Element](t *testing.T, factory Factory[T]) {
	t.Run("Add", func(t *testing.T) {
		t.Parallel()

		t.Run("it adds the value", func(t *testing.T) {
			t.Parallel()

			c := factory(t)

			ok, err := c.Add(1)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatal("expected collection to change")
			}

			expectContains(t, c, 1, true)
		})

		t.Run("it does not add duplicates to a set", func(t *testing.T) {
			t.Parallel()

			if !distinct(t, factory) {
				t.Skip("collection permits duplicates")
			}

			c := factory(t, 1)

			ok, err := c.Add(1)
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				t.Fatal("did not expect collection to change")
			}

			if n := c.Len(); n != 1 {
				t.Fatalf("unexpected length: got %d, want 1", n)
			}
		})

		t.Run("it adds every element of another collection", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1)

			if _, err := c.AddAll(factory(t, 2, 3)); err != nil {
				t.Fatal(err)
			}

			expectElements(t, c, 1, 2, 3)
		})
	})

	t.Run("Remove", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns true if the value was removed", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)

			ok, err := c.Remove(2)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatal("expected collection to change")
			}

			expectElements(t, c, 1, 3)
		})

		t.Run("it returns false if the value was not present", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)

			ok, err := c.Remove(4)
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				t.Fatal("did not expect collection to change")
			}

			expectElements(t, c, 1, 2, 3)
		})

		t.Run("it removes elements through the iterator", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)
			it := c.Iterator()

			if err := it.Remove(); !errors.Is(err, ErrNoCurrentElement) {
				t.Fatalf("unexpected error: got %v, want %v", err, ErrNoCurrentElement)
			}

			for it.HasNext() {
				v, err := it.Next()
				if err != nil {
					t.Fatal(err)
				}

				if v == 2 {
					if err := it.Remove(); err != nil {
						t.Fatal(err)
					}

					if err := it.Remove(); !errors.Is(err, ErrNoCurrentElement) {
						t.Fatalf("unexpected error: got %v, want %v", err, ErrNoCurrentElement)
					}
				}
			}

			expectElements(t, c, 1, 3)
		})

		t.Run("it removes elements that match a predicate", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3, 4)

			ok, err := c.RemoveIf(func(v T) bool { return v > 2 })
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatal("expected collection to change")
			}

			expectElements(t, c, 1, 2)
		})

		t.Run("it removes elements of another collection", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3, 4)

			if _, err := c.RemoveAll(factory(t, 2, 4, 5)); err != nil {
				t.Fatal(err)
			}

			expectElements(t, c, 1, 3)
		})

		t.Run("it retains elements of another collection", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3, 4)

			if _, err := c.RetainAll(factory(t, 2, 4, 5)); err != nil {
				t.Fatal(err)
			}

			expectElements(t, c, 2, 4)
		})

		t.Run("it removes every element", func(t *testing.T) {
			t.Parallel()

			c := factory(t, 1, 2, 3)

			if err := c.Clear(); err != nil {
				t.Fatal(err)
			}

			if !c.IsEmpty() {
				t.Fatal("expected collection to be empty")
			}
		})
	})

	t.Run("property-based", func(t *testing.T) {
		t.Parallel()

		isSet := distinct(t, factory)

		rapid.Check(t, func(rt *rapid.T) {
			c := factory(t)

			var model []T
			value := rapid.Custom(func(rt *rapid.T) T {
				return T(rapid.IntRange(-8, 8).Draw(rt, "value"))
			})

			indexOf := func(v T) int {
				return slices.IndexFunc(model, func(x T) bool { return Same(x, v) })
			}

			rt.Repeat(
				map[string]func(*rapid.T){
					"Add": func(rt *rapid.T) {
						v := value.Draw(rt, "v")

						ok, err := c.Add(v)
						if err != nil {
							rt.Fatal(err)
						}

						expect := !isSet || indexOf(v) < 0
						if ok != expect {
							rt.Fatalf("unexpected add result for %v: got %t, want %t", v, ok, expect)
						}
						if expect {
							model = append(model, v)
						}
					},
					"Remove": func(rt *rapid.T) {
						v := value.Draw(rt, "v")

						ok, err := c.Remove(v)
						if err != nil {
							rt.Fatal(err)
						}

						i := indexOf(v)
						if ok != (i >= 0) {
							rt.Fatalf("unexpected remove result for %v: got %t, want %t", v, ok, i >= 0)
						}
						if i >= 0 {
							model = slices.Delete(model, i, i+1)
						}
					},
					"Contains": func(rt *rapid.T) {
						v := value.Draw(rt, "v")

						ok, err := c.Contains(v)
						if err != nil {
							rt.Fatal(err)
						}

						if expect := indexOf(v) >= 0; ok != expect {
							rt.Fatalf("unexpected contains result for %v: got %t, want %t", v, ok, expect)
						}
					},
					"": func(rt *rapid.T) {
						if n := c.Len(); n != len(model) {
							rt.Fatalf("unexpected length: got %d, want %d", n, len(model))
						}

						got, err := c.ToSlice()
						if err != nil {
							rt.Fatal(err)
						}

						want := append([]T{}, model...)
						slices.Sort(got)
						slices.Sort(want)

						if diff := gocmp.Diff(want, got); diff != "" {
							rt.Fatal(diff)
						}
					},
				},
			)
		})
	})
}

// distinct returns true if the factory's collections discard duplicate values.
func distinct[T Element](t *testing.T, factory Factory[T]) bool {
	return factory(t, 1, 1).Len() == 1
}

func expectContains[T Element](t *testing.T, c Collection[T], v T, want bool) {
	t.Helper()

	ok, err := c.Contains(v)
	if err != nil {
		t.Fatal(err)
	}
	if ok != want {
		t.Fatalf("unexpected contains result for %v: got %t, want %t", v, ok, want)
	}
}

func expectElements[T Element](t *testing.T, c Collection[T], want ...T) {
	t.Helper()

	var got []T
	if err := c.Range(func(v T) bool {
		got = append(got, v)
		return true
	}); err != nil {
		t.Fatal(err)
	}

	slices.SortFunc(got, cmp.Compare[T])
	slices.SortFunc(want, cmp.Compare[T])

	if diff := gocmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
}

// otherKind returns v as a boxed value of a kind other than T.
func otherKind[T Element](v int) any {
	if KindOf[T]() == KindInt64 {
		return int32(v)
	}
	return int64(v)
}
