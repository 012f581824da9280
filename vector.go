package rawvec

import "fmt"

// Vector is a growable array of T stored contiguously in a RawMemory
// reservation. Slots [0, Len()) hold live values; slots [Len(), Cap()) are
// raw. Growth is geometric: when a mutation needs more room than the current
// reservation, capacity doubles (or becomes one, from zero).
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	data RawMemory[T]
	size int
	tr   traits
}

// New returns an empty vector with no reservation.
func New[T any]() *Vector[T] {
	return &Vector[T]{tr: traitsOf[T]()}
}

// NewWithSize returns a vector of n default-constructed (zero) elements in a
// reservation of exactly n slots. A negative n is a caller bug and panics.
func NewWithSize[T any](n int) (*Vector[T], error) {
	if n < 0 {
		panic(fmt.Sprintf("rawvec: negative size %d", n))
	}
	data, err := NewRawMemory[T](n)
	if err != nil {
		return nil, err
	}
	v := &Vector[T]{data: data, size: n, tr: traitsOf[T]()}
	clear(v.live())
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots in the current reservation.
func (v *Vector[T]) Cap() int {
	return v.data.Capacity()
}

// At returns the address of element i for in-place reads and writes. The
// address is valid until the next operation that reallocates or shifts
// elements. Panics if i is out of range.
func (v *Vector[T]) At(i int) *T {
	v.boundsCheck(i)
	return v.data.Address(i)
}

// Get returns a copy of element i. Panics if i is out of range.
func (v *Vector[T]) Get(i int) T {
	v.boundsCheck(i)
	return *v.data.Address(i)
}

// Set replaces element i with value, destroying the previous value. Panics
// if i is out of range.
func (v *Vector[T]) Set(i int, value T) {
	v.boundsCheck(i)
	if v.traits().destroys {
		destroySpan(v.data.view(i, 1), v.tr)
	}
	*v.data.Address(i) = value
}

// Swap exchanges the contents of v and other in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.tr, other.tr = other.tr, v.tr
}

// MoveFrom replaces v's contents with other's, destroying v's previous
// elements. other is left empty with no reservation. Constant time, never
// allocates. v.MoveFrom(v) is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Swap(other)
	other.Release()
}

// Clone returns an independent copy of v in a reservation of exactly Len()
// slots. Cloning element types are copied via Clone; a failure releases
// everything constructed so far and returns the element's error, leaving v
// untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{tr: v.traits()}
	data, err := NewRawMemory[T](v.size)
	if err != nil {
		return nil, err
	}
	if err := v.transferSpan(&data, 0, v.size, 0); err != nil {
		data.Release()
		return nil, err
	}
	out.data = data
	out.size = v.size
	return out, nil
}

// Reserve grows the reservation to exactly n slots, relocating live elements.
// A request within the current capacity is a no-op; capacity never shrinks.
// On failure the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Capacity() {
		return nil
	}
	newData, err := NewRawMemory[T](n)
	if err != nil {
		return err
	}
	if err := v.transferSpan(&newData, 0, v.size, 0); err != nil {
		newData.Release()
		return err
	}
	v.adoptStorage(&newData)
	return nil
}

// Resize changes the live count to n: growing default-constructs (zeroes) the
// new elements, reserving more capacity if needed; shrinking destroys the
// tail. Capacity never shrinks. A negative n is a caller bug and panics.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		panic(fmt.Sprintf("rawvec: negative size %d", n))
	case n > v.size:
		if n > v.data.Capacity() {
			if err := v.Reserve(n); err != nil {
				return err
			}
		}
		clear(v.data.view(v.size, n-v.size))
		v.size = n
	case n < v.size:
		v.destroyRange(n, v.size)
		v.size = n
	}
	return nil
}

// Append places value in the next free slot, growing the reservation first if
// it is full. When growing, the value is staged at its final position in the
// new reservation before the old elements relocate around it, so a failed
// relocation leaves the vector (and the value) untouched.
func (v *Vector[T]) Append(value T) error {
	if v.size == v.data.Capacity() {
		newData, err := NewRawMemory[T](v.grownCapacity())
		if err != nil {
			return err
		}
		*newData.Address(v.size) = value
		if err := v.transferSpan(&newData, 0, v.size, 0); err != nil {
			newData.Release()
			return err
		}
		v.adoptStorage(&newData)
	} else {
		*v.data.Address(v.size) = value
	}
	v.size++
	return nil
}

// Pop destroys the last element. Popping an empty vector is a caller bug and
// panics.
func (v *Vector[T]) Pop() {
	if v.size == 0 {
		panic("rawvec: Pop on empty vector")
	}
	v.size--
	v.destroyRange(v.size, v.size+1)
}

// Insert places value at position pos, shifting later elements one slot
// right, and returns the index of the inserted element. pos may equal Len(),
// which appends. When the reservation is full the vector grows: the value is
// staged at its final position in the new reservation, then the prefix and
// suffix relocate around it. Inserting an element of the vector into itself
// is safe: the argument is captured before any relocation. Panics if pos is
// outside [0, Len()].
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("rawvec: insert position %d out of range [0, %d]", pos, v.size))
	}
	if v.size == v.data.Capacity() {
		newData, err := NewRawMemory[T](v.grownCapacity())
		if err != nil {
			return 0, err
		}
		*newData.Address(pos) = value
		if err := v.transferSpan(&newData, 0, pos, 0); err != nil {
			newData.Release()
			return 0, err
		}
		if err := v.transferSpan(&newData, pos, v.size-pos, pos+1); err != nil {
			destroySpan(newData.view(0, pos), v.tr)
			newData.Release()
			return 0, err
		}
		v.adoptStorage(&newData)
		v.size++
		return pos, nil
	}

	if pos == v.size {
		*v.data.Address(v.size) = value
		v.size++
		return pos, nil
	}

	// Shift [pos, size) one slot right into the free trailing slot, then
	// drop value into the vacated position.
	slots := v.data.view(0, v.size+1)
	copy(slots[pos+1:], slots[pos:v.size])
	slots[pos] = value
	v.size++
	return pos, nil
}

// Erase removes the element at pos, shifting later elements one slot left.
// Erasing from an empty vector is a no-op. Panics if pos is outside
// [0, Len()) on a non-empty vector.
func (v *Vector[T]) Erase(pos int) {
	if v.size == 0 {
		return
	}
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("rawvec: erase position %d out of range [0, %d)", pos, v.size))
	}
	if v.traits().destroys {
		destroySpan(v.data.view(pos, 1), v.tr)
	}
	slots := v.live()
	copy(slots[pos:], slots[pos+1:])
	v.size--
	// The trailing slot is a stale duplicate of the shifted values; return
	// it to the raw state without destroying it.
	clear(slots[v.size : v.size+1])
}

// CopyFrom replaces v's contents with element-wise copies of other's. When
// other does not fit in v's reservation, a full copy is built first and
// swapped in, so a failure leaves v unchanged. Otherwise the reservation is
// reused: the overlapping prefix is assigned in place, then the surplus tail
// is destroyed or the missing suffix constructed; a failed element copy in
// this branch leaves a valid vector with v's original size and the elements
// copied so far. v.CopyFrom(v) is a no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	tr := v.traits()

	if other.size > v.data.Capacity() {
		tmp, err := other.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}

	n := min(v.size, other.size)
	src := other.live()
	if tr.clones {
		for i := 0; i < n; i++ {
			c, err := any(src[i]).(Cloner[T]).Clone()
			if err != nil {
				return fmt.Errorf("rawvec: copying element %d: %w", i, err)
			}
			destroySpan(v.data.view(i, 1), tr)
			*v.data.Address(i) = c
		}
	} else {
		// Overwriting a live element is a replacement, not a move: destroy
		// the old values before the block copy.
		if tr.destroys {
			destroySpan(v.data.view(0, n), tr)
		}
		copy(v.data.view(0, n), src[:n])
	}

	switch {
	case other.size < v.size:
		v.destroyRange(other.size, v.size)
	case other.size > v.size:
		out := v.data.view(v.size, other.size-v.size)
		extra := src[v.size:]
		if tr.clones {
			for i := range extra {
				c, err := any(extra[i]).(Cloner[T]).Clone()
				if err != nil {
					destroySpan(out[:i], tr)
					return fmt.Errorf("rawvec: copying element %d: %w", v.size+i, err)
				}
				out[i] = c
			}
		} else {
			copy(out, extra)
		}
	}
	v.size = other.size
	return nil
}

// Release destroys all live elements and drops the reservation. The vector
// is left empty and remains usable.
func (v *Vector[T]) Release() {
	v.destroyRange(0, v.size)
	v.size = 0
	v.data.Release()
}

// grownCapacity doubles the reservation, starting from one slot.
func (v *Vector[T]) grownCapacity() int {
	if c := v.data.Capacity(); c > 0 {
		return c * 2
	}
	return 1
}

// transferSpan places n live elements starting at slot srcOff into dst
// starting at slot dstOff. Cloning element types are copied one by one so
// every original stays intact until the whole span has transferred; a failed
// clone unwinds the partial span in dst and reports the element's error. All
// other types relocate as a single block move, which cannot fail.
func (v *Vector[T]) transferSpan(dst *RawMemory[T], srcOff, n, dstOff int) error {
	if n == 0 {
		return nil
	}
	src := v.data.view(srcOff, n)
	out := dst.view(dstOff, n)
	if !v.traits().clones {
		copy(out, src)
		return nil
	}
	for i := range src {
		c, err := any(src[i]).(Cloner[T]).Clone()
		if err != nil {
			destroySpan(out[:i], v.tr)
			return fmt.Errorf("rawvec: relocating element %d: %w", srcOff+i, err)
		}
		out[i] = c
	}
	return nil
}

// adoptStorage swaps in newData after a successful transfer and drops the old
// reservation. Originals of cloning element types were copied, not moved, so
// they are destroyed here; bitwise-moved originals go down with the old
// block untouched.
func (v *Vector[T]) adoptStorage(newData *RawMemory[T]) {
	if v.traits().clones {
		v.destroyRange(0, v.size)
	}
	v.data.Swap(newData)
	newData.Release()
}

func (v *Vector[T]) destroyRange(from, to int) {
	if to <= from {
		return
	}
	destroySpan(v.data.view(from, to-from), v.traits())
}

func (v *Vector[T]) live() []T {
	return v.data.view(0, v.size)
}

func (v *Vector[T]) boundsCheck(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("rawvec: index %d out of range [0, %d)", i, v.size))
	}
}

// traits returns the element type's lifecycle capabilities, resolving them on
// first use for vectors not built by a constructor.
func (v *Vector[T]) traits() traits {
	if !v.tr.known {
		v.tr = traitsOf[T]()
	}
	return v.tr
}
