package rawvec

import "iter"

// Iterator is a restartable bidirectional cursor over a vector's live
// elements. Positions are indices into the vector, not raw addresses, so a
// cursor survives reallocation; what it observes after a mutation is the
// post-mutation sequence. Cursors at or after an insertion or erasure
// position no longer refer to the element they did before, and addresses
// handed out by Ref go stale whenever the vector reallocates or shifts
// elements.
type Iterator[T any] struct {
	v   *Vector[T]
	pos int
}

// Begin returns a cursor positioned before the first element; call Next to
// reach it.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v, pos: -1}
}

// End returns a cursor positioned after the last element; call Prev to reach
// the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, pos: v.size}
}

// Next advances to the following element, reporting whether one exists.
func (it *Iterator[T]) Next() bool {
	if it.pos+1 >= it.v.size {
		it.pos = it.v.size
		return false
	}
	it.pos++
	return true
}

// Prev steps back to the preceding element, reporting whether one exists.
func (it *Iterator[T]) Prev() bool {
	if it.pos-1 < 0 {
		it.pos = -1
		return false
	}
	it.pos--
	return true
}

// Index returns the cursor's current position.
func (it *Iterator[T]) Index() int {
	return it.pos
}

// Value returns a copy of the current element.
func (it *Iterator[T]) Value() T {
	return it.v.Get(it.pos)
}

// Ref returns the address of the current element. The address is valid only
// until the vector reallocates or shifts elements.
func (it *Iterator[T]) Ref() *T {
	return it.v.At(it.pos)
}

// Set replaces the current element, destroying the previous value.
func (it *Iterator[T]) Set(value T) {
	it.v.Set(it.pos, value)
}

// Restart repositions the cursor before the first element.
func (it *Iterator[T]) Restart() {
	it.pos = -1
}

// All returns an index/value sequence over the live elements, usable with
// range. The vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.Address(i)) {
				return
			}
		}
	}
}

// Values returns a value sequence over the live elements, usable with range.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.Address(i)) {
				return
			}
		}
	}
}

// Refs returns a sequence of element addresses for in-place mutation, usable
// with range. The addresses are valid only until the vector reallocates or
// shifts elements.
func (v *Vector[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data.Address(i)) {
				return
			}
		}
	}
}
