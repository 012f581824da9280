// Package rawvec implements a growable array (vector) stored in a raw memory
// reservation, split into two layers: RawMemory, which owns an allocated but
// uninitialized block of element slots, and Vector, which owns the element
// lifecycle inside that block.
//
// # Overview
//
// A Vector keeps its elements contiguous and grows geometrically: when a
// mutation needs more room, it reserves a block of double the capacity,
// relocates the live elements, and drops the old block. Slots beyond Len()
// are raw memory with no live values. This is useful for:
//
//   - Dense, index-addressed collections with amortized O(1) append
//   - Element types that own resources and need deterministic destruction
//   - Avoiding per-element allocations for large homogeneous data
//
// # Basic Usage
//
//	v := rawvec.New[int]()
//	defer v.Release() // Destroy elements and drop the reservation
//
//	v.Append(1)
//	v.Append(2)
//	v.Insert(1, 9)        // [1 9 2]
//	v.Erase(0)            // [9 2]
//	first := v.Get(0)     // 9
//	*v.At(1) = 7          // in-place write
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Element Lifecycle
//
// Plain element types are moved bitwise during relocation, which cannot fail.
// Two opt-in interfaces refine the lifecycle:
//
//   - Cloner: the element's copy is deep and can fail. Relocation and
//     copying clone every element before any original is destroyed, so a
//     failure leaves the vector in its prior state.
//   - Destroyer: the element owns resources. Every live element the vector
//     destroys gets exactly one Destroy call.
//
// # Failure Atomicity
//
// Operations that allocate or relocate (Reserve, growing Resize, growing
// Append/Insert, Clone, growing CopyFrom) either complete fully or return an
// error with the vector left in its prior valid state. Swap and MoveFrom
// never allocate and never fail.
//
// # Thread Safety
//
// Vector and RawMemory are not safe for concurrent use and provide no
// synchronization.
//
// # Important Notes
//
//   - Addresses from At, Ref, and Refs are valid only until an operation
//     reallocates or shifts elements; erase and insert shift every element
//     at or after their position
//   - Slots beyond Len() are raw memory and are never exposed
//   - Element types containing Go pointers are stored in pointerless backing
//     memory; keep whatever those pointers reference reachable elsewhere
//     while it lives in a vector
//
// # Metrics and Monitoring
//
// The vector reports reservation statistics:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Live bytes: %d\n", m.SizeInUse)
//	fmt.Printf("Reserved bytes: %d\n", m.Reserved)
package rawvec
