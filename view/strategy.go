package view

import (
	"github.com/dogmatiq/primitivekit/collection"
	"github.com/dogmatiq/primitivekit/derive"
)

// strategy realizes the element-producing and mutating operations of a view.
//
// It is chosen once, when the view is constructed. A [Pure] view uses the
// delegate itself.
type strategy[T collection.Element] interface {
	Contains(v T) (bool, error)
	ContainsAll(c collection.Boxed) (bool, error)
	Range(fn collection.RangeFunc[T]) error
	ToSlice() ([]T, error)
	Cursor() collection.Cursor[T]
	ParallelRange(workers int, fn func(T) error) error
	Add(v T) (bool, error)
	Remove(v T) (bool, error)
	AddAll(c collection.Boxed) (bool, error)
	RemoveAll(c collection.Boxed) (bool, error)
	RetainAll(c collection.Boxed) (bool, error)
	RemoveIf(pred func(T) bool) (bool, error)
	Clear() error
}

func newStrategy[T collection.Element](
	p Policy,
	self collection.Source[T],
	next collection.Collection[T],
) strategy[T] {
	switch p {
	case Pure:
		return next
	case Shallow:
		return derived[T]{self, next.Add}
	default:
		return derived[T]{self, derive.Add[T]}
	}
}

// derived is a strategy that computes every operation from the primitives of
// a [collection.Source] (usually the view itself), never from the compound
// operations of the delegate.
type derived[T collection.Element] struct {
	source collection.Source[T]
	add    func(T) (bool, error)
}

func (d derived[T]) Contains(v T) (bool, error) {
	return derive.Contains(d.source, v)
}

func (d derived[T]) ContainsAll(c collection.Boxed) (bool, error) {
	return derive.ContainsAll(d.source, c)
}

func (d derived[T]) Range(fn collection.RangeFunc[T]) error {
	return derive.Range(d.source, fn)
}

func (d derived[T]) ToSlice() ([]T, error) {
	return derive.ToSlice(d.source)
}

func (d derived[T]) Cursor() collection.Cursor[T] {
	return derive.Cursor(d.source)
}

func (d derived[T]) ParallelRange(workers int, fn func(T) error) error {
	return derive.ParallelRange(d.source, workers, fn)
}

func (d derived[T]) Add(v T) (bool, error) {
	return d.add(v)
}

func (d derived[T]) Remove(v T) (bool, error) {
	return derive.Remove(d.source, v)
}

func (d derived[T]) AddAll(c collection.Boxed) (bool, error) {
	return derive.AddAll[T](d, c)
}

func (d derived[T]) RemoveAll(c collection.Boxed) (bool, error) {
	return derive.RemoveAll(d.source, c)
}

func (d derived[T]) RetainAll(c collection.Boxed) (bool, error) {
	return derive.RetainAll(d.source, c)
}

func (d derived[T]) RemoveIf(pred func(T) bool) (bool, error) {
	return derive.RemoveIf(d.source, pred)
}

func (d derived[T]) Clear() error {
	return derive.Clear(d.source)
}
