package rawvec

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * int(sizeOf[T]())
}

// Reserved returns the total size (in bytes) of the current reservation.
func (v *Vector[T]) Reserved() int {
	return v.data.Capacity() * int(sizeOf[T]())
}

// Utilization returns the ratio of live slots to reserved slots (0.0 to 1.0).
// Returns 0.0 if the vector has no reservation.
func (v *Vector[T]) Utilization() float64 {
	c := v.data.Capacity()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.Len(),
		Cap:         v.Cap(),
		ElemSize:    int(sizeOf[T]()),
		SizeInUse:   v.SizeInUse(),
		Reserved:    v.Reserved(),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Live elements
	Cap         int     // Reserved slots
	ElemSize    int     // Bytes per element
	SizeInUse   int     // Bytes occupied by live elements
	Reserved    int     // Bytes in the reservation
	Utilization float64 // Ratio of live to reserved slots (0.0-1.0)
}
