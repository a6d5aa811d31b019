package view_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/dogmatiq/primitivekit/collection"
	"github.com/dogmatiq/primitivekit/driver/memory/memoryboxed"
	"github.com/dogmatiq/primitivekit/driver/memory/memorylist"
	"github.com/dogmatiq/primitivekit/driver/memory/memoryset"
	"github.com/dogmatiq/primitivekit/internal/spy"
	. "github.com/dogmatiq/primitivekit/view"
	"github.com/google/go-cmp/cmp"
)

var policies = []Policy{Pure, Shallow, Minimal}

func TestOf(t *testing.T) {
	t.Parallel()

	for _, p := range []Policy{Pure, Shallow} {
		t.Run(p.String(), func(t *testing.T) {
			t.Parallel()

			t.Run("list", func(t *testing.T) {
				t.Parallel()

				collection.RunTests[int32](
					t,
					func(t *testing.T, values ...int32) collection.Collection[int32] {
						return Of[int32](memorylist.New(values...), p)
					},
				)
			})

			t.Run("set", func(t *testing.T) {
				t.Parallel()

				collection.RunTests[float64](
					t,
					func(t *testing.T, values ...float64) collection.Collection[float64] {
						return OfSet[float64](memoryset.New(values...), p)
					},
				)
			})
		})
	}

	t.Run("it panics if the policy is unknown", func(t *testing.T) {
		t.Parallel()

		expectPanic(t, func() {
			Of[int32](memorylist.New[int32](), Policy(3))
		})
	})

	t.Run("it reports its policy", func(t *testing.T) {
		t.Parallel()

		for _, p := range policies {
			if got := Of[int32](memorylist.New[int32](), p).Policy(); got != p {
				t.Fatalf("unexpected policy: got %s, want %s", got, p)
			}
		}
	})

	t.Run("operations that do not expose elements call the delegate exactly once", func(t *testing.T) {
		t.Parallel()

		for _, p := range policies {
			t.Run(p.String(), func(t *testing.T) {
				t.Parallel()

				cases := []struct {
					Op   string
					Call func(collection.Collection[int32])
				}{
					{"Len", func(c collection.Collection[int32]) { c.Len() }},
					{"IsEmpty", func(c collection.Collection[int32]) { c.IsEmpty() }},
					{"Kind", func(c collection.Collection[int32]) { c.Kind() }},
				}

				for _, c := range cases {
					next := spy.Of[int32](memorylist.New[int32](1, 2, 3))
					c.Call(Of[int32](next, p))

					if diff := cmp.Diff([]string{c.Op}, next.Calls()); diff != "" {
						t.Fatalf("unexpected calls for %s:\n%s", c.Op, diff)
					}
				}
			})
		}
	})

	t.Run("when the policy is pure", func(t *testing.T) {
		t.Parallel()

		t.Run("it forwards each operation to the matching operation of the delegate", func(t *testing.T) {
			t.Parallel()

			cases := []struct {
				Op   string
				Call func(collection.Collection[int32]) error
			}{
				{"Contains", func(c collection.Collection[int32]) error { _, err := c.Contains(2); return err }},
				{"ContainsAll", func(c collection.Collection[int32]) error {
					_, err := c.ContainsAll(memorylist.New[int32](2))
					return err
				}},
				{"Range", func(c collection.Collection[int32]) error { return c.Range(func(int32) bool { return true }) }},
				{"ToSlice", func(c collection.Collection[int32]) error { _, err := c.ToSlice(); return err }},
				{"Add", func(c collection.Collection[int32]) error { _, err := c.Add(4); return err }},
				{"Remove", func(c collection.Collection[int32]) error { _, err := c.Remove(1); return err }},
				{"AddAll", func(c collection.Collection[int32]) error {
					_, err := c.AddAll(memorylist.New[int32](4))
					return err
				}},
				{"RemoveAll", func(c collection.Collection[int32]) error {
					_, err := c.RemoveAll(memorylist.New[int32](1))
					return err
				}},
				{"RetainAll", func(c collection.Collection[int32]) error {
					_, err := c.RetainAll(memorylist.New[int32](1))
					return err
				}},
				{"RemoveIf", func(c collection.Collection[int32]) error {
					_, err := c.RemoveIf(func(v int32) bool { return v == 1 })
					return err
				}},
				{"Clear", func(c collection.Collection[int32]) error { return c.Clear() }},
				{"ParallelRange", func(c collection.Collection[int32]) error {
					return c.ParallelRange(2, func(int32) error { return nil })
				}},
			}

			for _, c := range cases {
				next := spy.Of[int32](memorylist.New[int32](1, 2, 3))

				if err := c.Call(Of[int32](next, Pure)); err != nil {
					t.Fatal(err)
				}

				if diff := cmp.Diff([]string{c.Op}, next.Calls()); diff != "" {
					t.Fatalf("unexpected calls for %s:\n%s", c.Op, diff)
				}
			}
		})
	})

	t.Run("when the policy is shallow", func(t *testing.T) {
		t.Parallel()

		t.Run("it derives compound operations from the delegate's primitives", func(t *testing.T) {
			t.Parallel()

			next := spy.Of[int32](memorylist.New[int32](1, 2, 3))
			v := Of[int32](next, Shallow)

			if _, err := v.Contains(2); err != nil {
				t.Fatal(err)
			}
			if _, err := v.ContainsAll(memorylist.New[int32](3)); err != nil {
				t.Fatal(err)
			}
			if _, err := v.ToSlice(); err != nil {
				t.Fatal(err)
			}
			if _, err := v.AddAll(memorylist.New[int32](4, 5)); err != nil {
				t.Fatal(err)
			}
			if _, err := v.RemoveIf(func(v int32) bool { return v == 4 }); err != nil {
				t.Fatal(err)
			}
			if err := v.ParallelRange(2, func(int32) error { return nil }); err != nil {
				t.Fatal(err)
			}

			for _, op := range next.Calls() {
				switch op {
				case "Len", "Iterator", "Iterator.HasNext", "Iterator.Next", "Iterator.Remove", "Add":
				default:
					t.Fatalf("unexpected call to %s", op)
				}
			}

			if n := next.Count("Add"); n != 2 {
				t.Fatalf("unexpected number of calls to Add: got %d, want 2", n)
			}

			got, err := next.Next.ToSlice()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]int32{1, 2, 3, 5}, got); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it stops at the first match, calling HasNext and Next once per element visited", func(t *testing.T) {
			t.Parallel()

			// 2 is the second of three elements, so the third is never visited.
			next := spy.Of[int32](memorylist.New[int32](1, 2, 3))

			ok, err := Of[int32](next, Shallow).Contains(2)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatal("expected element to be found")
			}

			want := []string{
				"Iterator",
				"Iterator.HasNext", "Iterator.Next",
				"Iterator.HasNext", "Iterator.Next",
			}
			if diff := cmp.Diff(want, next.Calls()); diff != "" {
				t.Fatal(diff)
			}
		})
	})

	t.Run("when the policy is minimal", func(t *testing.T) {
		t.Parallel()

		t.Run("derived operations fail with a protocol violation", func(t *testing.T) {
			t.Parallel()

			cases := []struct {
				Op   string
				Call func(collection.Collection[int32]) error
			}{
				{"Contains", func(c collection.Collection[int32]) error { _, err := c.Contains(1); return err }},
				{"ContainsAll", func(c collection.Collection[int32]) error {
					_, err := c.ContainsAll(memorylist.New[int32](1))
					return err
				}},
				{"Range", func(c collection.Collection[int32]) error { return c.Range(func(int32) bool { return true }) }},
				{"ToSlice", func(c collection.Collection[int32]) error { _, err := c.ToSlice(); return err }},
				{"Remove", func(c collection.Collection[int32]) error { _, err := c.Remove(1); return err }},
				{"RemoveAll", func(c collection.Collection[int32]) error {
					_, err := c.RemoveAll(memorylist.New[int32](1))
					return err
				}},
				{"RetainAll", func(c collection.Collection[int32]) error {
					_, err := c.RetainAll(memorylist.New[int32](1))
					return err
				}},
				{"RemoveIf", func(c collection.Collection[int32]) error {
					_, err := c.RemoveIf(func(int32) bool { return true })
					return err
				}},
				{"Clear", func(c collection.Collection[int32]) error { return c.Clear() }},
				{"ParallelRange", func(c collection.Collection[int32]) error {
					return c.ParallelRange(2, func(int32) error { return nil })
				}},
				{"Cursor", func(c collection.Collection[int32]) error {
					_, err := c.Cursor().TryAdvance(func(int32) {})
					return err
				}},
			}

			for _, c := range cases {
				next := spy.Of[int32](memorylist.New[int32](1, 2, 3))

				err := c.Call(Of[int32](next, Minimal))
				if !collection.IsProtocolViolation(err) {
					t.Fatalf("unexpected error for %s: %v", c.Op, err)
				}

				if n := next.Count("Iterator"); n != 0 {
					t.Fatalf("unexpected call to the delegate's iterator for %s", c.Op)
				}
			}
		})

		t.Run("derived operations succeed on an empty delegate", func(t *testing.T) {
			t.Parallel()

			v := Of[int32](memorylist.New[int32](), Minimal)

			ok, err := v.Contains(1)
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				t.Fatal("did not expect element to be found")
			}

			s, err := v.ToSlice()
			if err != nil {
				t.Fatal(err)
			}
			if len(s) != 0 {
				t.Fatalf("unexpected elements: %v", s)
			}
		})

		t.Run("it does not support adding elements", func(t *testing.T) {
			t.Parallel()

			next := spy.Of[int32](memorylist.New[int32]())
			v := Of[int32](next, Minimal)

			if _, err := v.Add(1); !collection.IsUnsupportedMutation(err) {
				t.Fatalf("unexpected error: %v", err)
			}

			if _, err := v.AddAll(memorylist.New[int32](1)); !collection.IsUnsupportedMutation(err) {
				t.Fatalf("unexpected error: %v", err)
			}

			if n := next.Count("Add"); n != 0 {
				t.Fatalf("unexpected number of calls to Add: got %d, want 0", n)
			}
		})
	})

	t.Run("when constructed with a separate source", func(t *testing.T) {
		t.Parallel()

		newHollow := func(p Policy) *hollow {
			h := &hollow{}
			h.Collection = OfSource[int32](memorylist.New[int32](1, 2, 3), h, p)
			return h
		}

		for _, p := range []Policy{Shallow, Minimal} {
			t.Run(p.String(), func(t *testing.T) {
				t.Parallel()

				t.Run("it derives operations from the source's primitives", func(t *testing.T) {
					t.Parallel()

					h := newHollow(p)

					ok, err := h.Contains(2)
					if err != nil {
						t.Fatal(err)
					}
					if ok {
						t.Fatal("did not expect the element to be found")
					}

					got, err := h.ToSlice()
					if err != nil {
						t.Fatal(err)
					}
					if len(got) != 0 {
						t.Fatalf("unexpected elements: got %v, want none", got)
					}
				})

				t.Run("it forwards operations that do not expose elements to the delegate", func(t *testing.T) {
					t.Parallel()

					if n := newHollow(p).Collection.Len(); n != 3 {
						t.Fatalf("unexpected length: got %d, want 3", n)
					}
				})
			})
		}

		t.Run("it ignores the source when the policy is pure", func(t *testing.T) {
			t.Parallel()

			ok, err := newHollow(Pure).Contains(2)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatal("expected the element to be found")
			}
		})

		t.Run("it uses the view itself when the source is nil", func(t *testing.T) {
			t.Parallel()

			ok, err := OfSource[int32](memorylist.New[int32](1, 2, 3), nil, Shallow).Contains(2)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatal("expected the element to be found")
			}
		})
	})

	t.Run("it visits a collection argument of the same kind without boxing", func(t *testing.T) {
		t.Parallel()

		for _, p := range []Policy{Pure, Shallow} {
			arg := spy.Of[int32](memorylist.New[int32](1, 2))

			ok, err := Of[int32](memorylist.New[int32](1, 2, 3), p).ContainsAll(arg)
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Fatal("expected ok to be true")
			}

			if n := arg.Count("RangeAny"); n != 0 {
				t.Fatalf("%s: unexpected number of calls to RangeAny: got %d, want 0", p, n)
			}
		}

		t.Run("when the policy is minimal", func(t *testing.T) {
			t.Parallel()

			arg := spy.Of[int32](memorylist.New[int32](1, 2))

			_, err := Of[int32](memorylist.New[int32](1, 2, 3), Minimal).ContainsAll(arg)
			if !collection.IsProtocolViolation(err) {
				t.Fatalf("unexpected error: got %v, want a protocol violation", err)
			}

			if n := arg.Count("Iterator"); n != 1 {
				t.Fatalf("unexpected number of calls to Iterator: got %d, want 1", n)
			}
			if n := arg.Count("RangeAny"); n != 0 {
				t.Fatalf("unexpected number of calls to RangeAny: got %d, want 0", n)
			}
		})
	})

	t.Run("it visits a collection argument of another kind in boxed form", func(t *testing.T) {
		t.Parallel()

		for _, p := range policies {
			arg := spy.Of[int64](memorylist.New[int64](1, 2))

			ok, err := Of[int32](memorylist.New[int32](1, 2, 3), p).ContainsAll(arg)
			if err != nil {
				t.Fatalf("%s: %s", p, err)
			}
			if ok {
				t.Fatalf("%s: did not expect int64 elements to be present", p)
			}

			if n := arg.Count("RangeAny"); n != 1 {
				t.Fatalf("%s: unexpected number of calls to RangeAny: got %d, want 1", p, n)
			}
			if n := arg.Count("Iterator"); n != 0 {
				t.Fatalf("%s: unexpected number of calls to Iterator: got %d, want 0", p, n)
			}
		}
	})

	t.Run("it adds the elements of a boxed collection", func(t *testing.T) {
		t.Parallel()

		for _, p := range []Policy{Pure, Shallow} {
			next := memorylist.New[int32](1)

			if _, err := Of[int32](next, p).AddAll(memoryboxed.New(int32(2), int32(3))); err != nil {
				t.Fatal(err)
			}

			got, err := next.ToSlice()
			if err != nil {
				t.Fatal(err)
			}

			slices.Sort(got)
			if diff := cmp.Diff([]int32{1, 2, 3}, got); diff != "" {
				t.Fatalf("%s: %s", p, diff)
			}
		}
	})

	t.Run("it returns delegate errors unchanged", func(t *testing.T) {
		t.Parallel()

		want := errors.New("<error>")

		for _, p := range []Policy{Pure, Shallow} {
			next := rejecting[int32]{memorylist.New[int32](), want}

			if _, err := Of[int32](next, p).Add(1); err != want {
				t.Fatalf("%s: unexpected error: got %v, want %v", p, err, want)
			}
		}
	})
}

// rejecting is a collection that fails to add any element.
type rejecting[T collection.Element] struct {
	collection.Collection[T]
	err error
}

func (c rejecting[T]) Add(T) (bool, error) {
	return false, c.err
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()

	fn()
}

// hollow is a view that presents its delegate as empty by overriding the
// view's primitives.
type hollow struct {
	*Collection[int32]
}

func (h *hollow) Len() int {
	return 0
}

func (h *hollow) Iterator() collection.Iterator[int32] {
	return memorylist.New[int32]().Iterator()
}
