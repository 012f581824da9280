// Package rawvec implements a growable, contiguously-stored vector on top of
// a raw memory reservation. RawMemory owns the reservation; Vector owns the
// element lifecycle inside it.
package rawvec

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// ErrSizeOverflow is returned when a requested reservation cannot be
// represented in the address space (capacity * element size overflows).
var ErrSizeOverflow = errors.New("rawvec: reservation size overflows address space")

// RawMemory is a contiguous reservation of uninitialized slots for values of
// type T. It has no notion of element lifetime: it never constructs, reads,
// or destroys values, it only hands out slot addresses. Exactly one RawMemory
// owns a given reservation at a time; ownership moves via Swap or MoveFrom
// and is never duplicated, so RawMemory has no copy operation.
type RawMemory[T any] struct {
	buf      []byte         // backing reservation, nil when capacity == 0
	base     unsafe.Pointer // first slot, aligned for T
	capacity int            // number of slots
}

// NewRawMemory reserves capacity slots for values of type T. The slots are
// not zeroed. A capacity of zero holds no memory. A negative capacity is a
// caller bug and panics.
func NewRawMemory[T any](capacity int) (RawMemory[T], error) {
	if capacity < 0 {
		panic(fmt.Sprintf("rawvec: negative capacity %d", capacity))
	}
	if capacity == 0 {
		return RawMemory[T]{}, nil
	}

	elemSize := sizeOf[T]()
	align := alignOf[T]()
	if elemSize > 0 && uintptr(capacity) > (uintptr(math.MaxInt)-align+1)/elemSize {
		return RawMemory[T]{}, fmt.Errorf("%w: %d slots of %d bytes", ErrSizeOverflow, capacity, elemSize)
	}

	// Over-allocate by align-1 so the base can be rounded up manually.
	total := uintptr(capacity)*elemSize + align - 1
	if total == 0 {
		total = 1
	}
	buf := make([]byte, total)
	base := unsafe.Pointer(unsafe.SliceData(buf))
	if off := uintptr(base) % align; off != 0 {
		base = unsafe.Add(base, align-off)
	}
	return RawMemory[T]{buf: buf, base: base, capacity: capacity}, nil
}

// Capacity returns the number of slots in the reservation.
func (m *RawMemory[T]) Capacity() int {
	return m.capacity
}

// At returns the address of slot i. The slot may be uninitialized; the caller
// decides whether a live value occupies it. Panics if i is not a valid slot.
func (m *RawMemory[T]) At(i int) *T {
	if i < 0 || i >= m.capacity {
		panic(fmt.Sprintf("rawvec: slot %d out of capacity %d", i, m.capacity))
	}
	return m.Address(i)
}

// Address returns a pointer positioned offset slots past the base without any
// bounds check. The caller guarantees the offset stays within capacity.
func (m *RawMemory[T]) Address(offset int) *T {
	return (*T)(unsafe.Add(m.base, uintptr(offset)*sizeOf[T]()))
}

// Swap exchanges the reservations of m and other in constant time.
func (m *RawMemory[T]) Swap(other *RawMemory[T]) {
	*m, *other = *other, *m
}

// MoveFrom transfers other's reservation into m, dropping m's previous one.
// other is left empty.
func (m *RawMemory[T]) MoveFrom(other *RawMemory[T]) {
	if m == other {
		return
	}
	*m = *other
	*other = RawMemory[T]{}
}

// Release drops the reservation without inspecting its contents. Values that
// may occupy slots are the caller's responsibility and must be destroyed
// before Release. Releasing an empty RawMemory is a no-op.
func (m *RawMemory[T]) Release() {
	*m = RawMemory[T]{}
}

// view returns the n slots starting at offset from as a slice. The slots may
// be uninitialized.
func (m *RawMemory[T]) view(from, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice(m.Address(from), n)
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func alignOf[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}
