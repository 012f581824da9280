package rawvec

// Cloner is implemented by element types whose copy is a deep operation that
// can fail. When a vector of such a type relocates or copies its elements, it
// clones every element into the destination before any original is destroyed,
// so a mid-transfer failure leaves the vector in its prior state.
//
// Clone must be declared on the value receiver; a pointer-receiver method is
// not visible to the capability check.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer is implemented by element types that own resources released on
// destruction. The vector calls Destroy exactly once for every live element
// it destroys (Pop, Erase, shrinking Resize, surplus during CopyFrom,
// originals after a cloning relocation, Release).
//
// A Destroyer type whose values cannot be duplicated safely should also
// implement Cloner; otherwise Clone and CopyFrom fall back to a shallow copy
// and both instances end up claiming the same resource.
type Destroyer interface {
	Destroy()
}

// traits records, once per vector, which lifecycle capabilities the element
// type opted into.
type traits struct {
	known    bool
	clones   bool
	destroys bool
}

func traitsOf[T any]() traits {
	var zero T
	_, clones := any(zero).(Cloner[T])
	_, destroys := any(zero).(Destroyer)
	return traits{known: true, clones: clones, destroys: destroys}
}

// destroySpan destroys the live values in slots and returns them to the raw
// (zeroed) state.
func destroySpan[T any](slots []T, tr traits) {
	if tr.destroys {
		for i := range slots {
			any(slots[i]).(Destroyer).Destroy()
		}
	}
	clear(slots)
}
