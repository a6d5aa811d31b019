// Package spy provides collections that record the operations invoked on them.
package spy

import (
	"sync"

	"github.com/dogmatiq/primitivekit/collection"
)

// Log is a record of operation names.
type Log struct {
	m     sync.Mutex
	calls []string
}

func (l *Log) record(op string) {
	l.m.Lock()
	defer l.m.Unlock()
	l.calls = append(l.calls, op)
}

// Calls returns the names of the recorded operations, in order.
func (l *Log) Calls() []string {
	l.m.Lock()
	defer l.m.Unlock()
	return append([]string(nil), l.calls...)
}

// Count returns the number of times op was recorded.
func (l *Log) Count(op string) int {
	l.m.Lock()
	defer l.m.Unlock()

	n := 0
	for _, c := range l.calls {
		if c == op {
			n++
		}
	}
	return n
}

// Reset discards the recorded operations.
func (l *Log) Reset() {
	l.m.Lock()
	defer l.m.Unlock()
	l.calls = nil
}

// Of returns a spy that forwards to c.
func Of[T collection.Element](c collection.Collection[T]) *Collection[T] {
	return &Collection[T]{Next: c}
}

// Collection is a [collection.Collection] that records each operation before
// forwarding it to Next.
type Collection[T collection.Element] struct {
	Next collection.Collection[T]
	Log
}

// Set is a [collection.Set] that records each operation before forwarding it
// to Next.
type Set[T collection.Element] struct {
	Collection[T]
	NextSet collection.Set[T]
}

// OfSet returns a spy that forwards to s.
func OfSet[T collection.Element](s collection.Set[T]) *Set[T] {
	return &Set[T]{
		Collection: Collection[T]{Next: s},
		NextSet:    s,
	}
}

// Equal records and forwards the call.
func (s *Set[T]) Equal(other any) (bool, error) {
	s.record("Equal")
	return s.NextSet.Equal(other)
}

// Hash records and forwards the call.
func (s *Set[T]) Hash() (uint64, error) {
	s.record("Hash")
	return s.NextSet.Hash()
}

// Kind records and forwards the call.
func (c *Collection[T]) Kind() collection.Kind {
	c.record("Kind")
	return c.Next.Kind()
}

// Len records and forwards the call.
func (c *Collection[T]) Len() int {
	c.record("Len")
	return c.Next.Len()
}

// IsEmpty records and forwards the call.
func (c *Collection[T]) IsEmpty() bool {
	c.record("IsEmpty")
	return c.Next.IsEmpty()
}

// Iterator records the call and returns an iterator that records its own
// operations to the same log.
func (c *Collection[T]) Iterator() collection.Iterator[T] {
	c.record("Iterator")
	return OfIterator(c.Next.Iterator(), &c.Log)
}

// Contains records and forwards the call.
func (c *Collection[T]) Contains(v T) (bool, error) {
	c.record("Contains")
	return c.Next.Contains(v)
}

// ContainsAny records and forwards the call.
func (c *Collection[T]) ContainsAny(v any) (bool, error) {
	c.record("ContainsAny")
	return c.Next.ContainsAny(v)
}

// ContainsAll records and forwards the call.
func (c *Collection[T]) ContainsAll(other collection.Boxed) (bool, error) {
	c.record("ContainsAll")
	return c.Next.ContainsAll(other)
}

// Range records and forwards the call.
func (c *Collection[T]) Range(fn collection.RangeFunc[T]) error {
	c.record("Range")
	return c.Next.Range(fn)
}

// RangeAny records and forwards the call.
func (c *Collection[T]) RangeAny(fn func(any) bool) error {
	c.record("RangeAny")
	return c.Next.RangeAny(fn)
}

// ToSlice records and forwards the call.
func (c *Collection[T]) ToSlice() ([]T, error) {
	c.record("ToSlice")
	return c.Next.ToSlice()
}

// Cursor records and forwards the call.
func (c *Collection[T]) Cursor() collection.Cursor[T] {
	c.record("Cursor")
	return c.Next.Cursor()
}

// ParallelRange records and forwards the call.
func (c *Collection[T]) ParallelRange(workers int, fn func(T) error) error {
	c.record("ParallelRange")
	return c.Next.ParallelRange(workers, fn)
}

// Add records and forwards the call.
func (c *Collection[T]) Add(v T) (bool, error) {
	c.record("Add")
	return c.Next.Add(v)
}

// Remove records and forwards the call.
func (c *Collection[T]) Remove(v T) (bool, error) {
	c.record("Remove")
	return c.Next.Remove(v)
}

// AddAll records and forwards the call.
func (c *Collection[T]) AddAll(other collection.Boxed) (bool, error) {
	c.record("AddAll")
	return c.Next.AddAll(other)
}

// RemoveAll records and forwards the call.
func (c *Collection[T]) RemoveAll(other collection.Boxed) (bool, error) {
	c.record("RemoveAll")
	return c.Next.RemoveAll(other)
}

// RetainAll records and forwards the call.
func (c *Collection[T]) RetainAll(other collection.Boxed) (bool, error) {
	c.record("RetainAll")
	return c.Next.RetainAll(other)
}

// RemoveIf records and forwards the call.
func (c *Collection[T]) RemoveIf(pred func(T) bool) (bool, error) {
	c.record("RemoveIf")
	return c.Next.RemoveIf(pred)
}

// Clear records and forwards the call.
func (c *Collection[T]) Clear() error {
	c.record("Clear")
	return c.Next.Clear()
}

// Iterator is a [collection.Iterator] that records each operation before
// forwarding it to its delegate.
type Iterator[T collection.Element] struct {
	next collection.Iterator[T]
	log  *Log
}

// OfIterator returns a spy that forwards to it and records to log.
func OfIterator[T collection.Element](it collection.Iterator[T], log *Log) *Iterator[T] {
	return &Iterator[T]{next: it, log: log}
}

// HasNext records and forwards the call.
func (it *Iterator[T]) HasNext() bool {
	it.log.record("Iterator.HasNext")
	return it.next.HasNext()
}

// Next records and forwards the call.
func (it *Iterator[T]) Next() (T, error) {
	it.log.record("Iterator.Next")
	return it.next.Next()
}

// Remove records and forwards the call.
func (it *Iterator[T]) Remove() error {
	it.log.record("Iterator.Remove")
	return it.next.Remove()
}

// ForEachRemaining records and forwards the call.
func (it *Iterator[T]) ForEachRemaining(fn func(T)) error {
	it.log.record("Iterator.ForEachRemaining")
	return it.next.ForEachRemaining(fn)
}
