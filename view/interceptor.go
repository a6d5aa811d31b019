package view

import (
	"github.com/dogmatiq/primitivekit/collection"
	"github.com/dogmatiq/primitivekit/derive"
	"github.com/dogmatiq/primitivekit/internal/x/xatomic"
)

// Interceptor defines functions that are invoked around the mutation of
// individual elements of a collection.
//
// Bulk operations on an intercepted collection are performed one element at a
// time so that the functions are invoked for every element affected.
type Interceptor[T collection.Element] struct {
	beforeAdd    xatomic.Value[func(T) error]
	afterAdd     xatomic.Value[func(T) error]
	beforeRemove xatomic.Value[func(T) error]
	afterRemove  xatomic.Value[func(T) error]
}

// BeforeAdd sets the function that is invoked before an element is added.
func (i *Interceptor[T]) BeforeAdd(fn func(v T) error) {
	i.beforeAdd.Store(fn)
}

// AfterAdd sets the function that is invoked after an element is added.
func (i *Interceptor[T]) AfterAdd(fn func(v T) error) {
	i.afterAdd.Store(fn)
}

// BeforeRemove sets the function that is invoked before an element is
// removed.
func (i *Interceptor[T]) BeforeRemove(fn func(v T) error) {
	i.beforeRemove.Store(fn)
}

// AfterRemove sets the function that is invoked after an element is removed.
func (i *Interceptor[T]) AfterRemove(fn func(v T) error) {
	i.afterRemove.Store(fn)
}

// WithInterceptor returns a collection that invokes the functions defined by
// the given [Interceptor] when modifying c.
func WithInterceptor[T collection.Element](
	c collection.Collection[T],
	in *Interceptor[T],
) collection.Collection[T] {
	if in == nil {
		return c
	}

	return &intercepted[T]{
		Next:        c,
		Interceptor: in,
	}
}

type intercepted[T collection.Element] struct {
	Next        collection.Collection[T]
	Interceptor *Interceptor[T]
}

func (c *intercepted[T]) Kind() collection.Kind { return c.Next.Kind() }
func (c *intercepted[T]) Len() int              { return c.Next.Len() }
func (c *intercepted[T]) IsEmpty() bool         { return c.Next.IsEmpty() }

func (c *intercepted[T]) Contains(v T) (bool, error) {
	return c.Next.Contains(v)
}

func (c *intercepted[T]) ContainsAny(v any) (bool, error) {
	return c.Next.ContainsAny(v)
}

func (c *intercepted[T]) ContainsAll(other collection.Boxed) (bool, error) {
	return c.Next.ContainsAll(other)
}

func (c *intercepted[T]) Range(fn collection.RangeFunc[T]) error {
	return c.Next.Range(fn)
}

func (c *intercepted[T]) RangeAny(fn func(any) bool) error {
	return c.Next.RangeAny(fn)
}

func (c *intercepted[T]) ToSlice() ([]T, error) {
	return c.Next.ToSlice()
}

func (c *intercepted[T]) Cursor() collection.Cursor[T] {
	return c.Next.Cursor()
}

func (c *intercepted[T]) ParallelRange(workers int, fn func(T) error) error {
	return c.Next.ParallelRange(workers, fn)
}

func (c *intercepted[T]) Iterator() collection.Iterator[T] {
	return &interceptedIterator[T]{
		next: c.Next.Iterator(),
		in:   c.Interceptor,
	}
}

func (c *intercepted[T]) Add(v T) (bool, error) {
	if err := invoke(&c.Interceptor.beforeAdd, v); err != nil {
		return false, err
	}

	ok, err := c.Next.Add(v)
	if err != nil {
		return false, err
	}

	if err := invoke(&c.Interceptor.afterAdd, v); err != nil {
		return false, err
	}

	return ok, nil
}

func (c *intercepted[T]) Remove(v T) (bool, error) {
	if err := invoke(&c.Interceptor.beforeRemove, v); err != nil {
		return false, err
	}

	ok, err := c.Next.Remove(v)
	if err != nil {
		return false, err
	}

	if err := invoke(&c.Interceptor.afterRemove, v); err != nil {
		return false, err
	}

	return ok, nil
}

func (c *intercepted[T]) AddAll(other collection.Boxed) (bool, error) {
	return derive.AddAll[T](c, other)
}

func (c *intercepted[T]) RemoveAll(other collection.Boxed) (bool, error) {
	return derive.RemoveAll[T](c, other)
}

func (c *intercepted[T]) RetainAll(other collection.Boxed) (bool, error) {
	return derive.RetainAll[T](c, other)
}

func (c *intercepted[T]) RemoveIf(pred func(T) bool) (bool, error) {
	return derive.RemoveIf[T](c, pred)
}

func (c *intercepted[T]) Clear() error {
	return derive.Clear[T](c)
}

type interceptedIterator[T collection.Element] struct {
	next collection.Iterator[T]
	in   *Interceptor[T]

	last T
	ok   bool
}

func (it *interceptedIterator[T]) HasNext() bool {
	return it.next.HasNext()
}

func (it *interceptedIterator[T]) Next() (T, error) {
	v, err := it.next.Next()
	it.last, it.ok = v, err == nil
	return v, err
}

func (it *interceptedIterator[T]) Remove() error {
	if !it.ok {
		return collection.ErrNoCurrentElement
	}

	if err := invoke(&it.in.beforeRemove, it.last); err != nil {
		return err
	}

	if err := it.next.Remove(); err != nil {
		return err
	}
	it.ok = false

	return invoke(&it.in.afterRemove, it.last)
}

func (it *interceptedIterator[T]) ForEachRemaining(fn func(T)) error {
	return derive.ForEachRemaining[T](it, fn)
}

func invoke[T collection.Element](fn *xatomic.Value[func(T) error], v T) error {
	if fn := fn.Load(); fn != nil {
		return fn(v)
	}
	return nil
}
