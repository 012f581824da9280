package rawvec_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/rawvec"
)

// TestEdgeCases covers boundary conditions of the public contract
func TestEdgeCases(t *testing.T) {
	t.Run("EmptyVectorQueries", func(t *testing.T) {
		v := rawvec.New[int]()
		if v.Len() != 0 || v.Cap() != 0 {
			t.Errorf("empty vector: len=%d cap=%d, want 0, 0", v.Len(), v.Cap())
		}
		v.Erase(0) // no-op on empty
		if v.Len() != 0 {
			t.Error("Erase on empty vector must be a no-op")
		}
	})

	t.Run("ZeroSizedConstruction", func(t *testing.T) {
		v, err := rawvec.NewWithSize[int](0)
		if err != nil {
			t.Fatal(err)
		}
		if v.Len() != 0 || v.Cap() != 0 {
			t.Errorf("NewWithSize(0): len=%d cap=%d, want 0, 0", v.Len(), v.Cap())
		}
	})

	t.Run("ContractViolations", func(t *testing.T) {
		v := rawvec.New[int]()
		if err := v.Append(1); err != nil {
			t.Fatal(err)
		}

		testPanic := func(name string, fn func()) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}

		testPanic("Get out of range", func() { v.Get(1) })
		testPanic("At out of range", func() { v.At(-1) })
		testPanic("Set out of range", func() { v.Set(5, 0) })
		testPanic("Insert past end", func() { v.Insert(2, 0) })
		testPanic("Erase out of range", func() { v.Erase(1) })
		testPanic("Resize negative", func() { v.Resize(-1) })
		testPanic("Pop on empty", func() {
			w := rawvec.New[int]()
			w.Pop()
		})
	})

	t.Run("MultipleReleases", func(t *testing.T) {
		v := rawvec.New[int]()
		v.Append(1)
		v.Release()
		// Multiple releases should be safe
		v.Release()
		v.Release()
	})

	t.Run("InsertAtEveryPosition", func(t *testing.T) {
		for pos := 0; pos <= 6; pos++ {
			v := rawvec.New[int]()
			for i := 0; i < 6; i++ {
				if err := v.Append(i); err != nil {
					t.Fatal(err)
				}
			}
			if _, err := v.Insert(pos, 99); err != nil {
				t.Fatal(err)
			}
			if v.Len() != 7 {
				t.Fatalf("Insert(%d): len=%d, want 7", pos, v.Len())
			}
			if got := v.Get(pos); got != 99 {
				t.Errorf("Insert(%d): element at pos = %d, want 99", pos, got)
			}
		}
	})

	t.Run("ZeroSizeElementType", func(t *testing.T) {
		v := rawvec.New[struct{}]()
		for i := 0; i < 100; i++ {
			if err := v.Append(struct{}{}); err != nil {
				t.Fatal(err)
			}
		}
		if v.Len() != 100 {
			t.Errorf("len=%d, want 100", v.Len())
		}
		v.Erase(50)
		if v.Len() != 99 {
			t.Errorf("len=%d, want 99", v.Len())
		}
	})

	t.Run("WideElementType", func(t *testing.T) {
		type record struct {
			id   int64
			name [32]byte
			tags [4]uint16
		}
		v := rawvec.New[record]()
		for i := 0; i < 50; i++ {
			r := record{id: int64(i)}
			r.name[0] = byte(i)
			if err := v.Append(r); err != nil {
				t.Fatal(err)
			}
		}
		for i := 0; i < 50; i++ {
			got := v.Get(i)
			if got.id != int64(i) || got.name[0] != byte(i) {
				t.Errorf("record %d corrupted: %+v", i, got)
			}
		}
	})
}

// TestMemoryIntegrity verifies elements survive heavy churn intact
func TestMemoryIntegrity(t *testing.T) {
	v := rawvec.New[[16]byte]()
	for i := 0; i < 200; i++ {
		var b [16]byte
		for j := range b {
			b[j] = byte(i)
		}
		if err := v.Append(b); err != nil {
			t.Fatal(err)
		}
	}

	// Erase every other element from the front half
	for i := 0; i < 50; i++ {
		v.Erase(i)
	}

	// Whatever remains must still be internally consistent: all 16 bytes of
	// an element carry the same pattern
	for i, b := range v.All() {
		for j := 1; j < 16; j++ {
			if b[j] != b[0] {
				t.Fatalf("element %d corrupted: %v", i, b)
			}
		}
	}
}

// TestGrowthSequence verifies the doubling policy from several seeds
func TestGrowthSequence(t *testing.T) {
	seeds := []int{0, 1, 3, 7}
	for _, seed := range seeds {
		t.Run(fmt.Sprintf("reserve-%d", seed), func(t *testing.T) {
			v := rawvec.New[int]()
			if err := v.Reserve(seed); err != nil {
				t.Fatal(err)
			}
			prev := v.Cap()
			for i := 0; i < 100; i++ {
				if err := v.Append(i); err != nil {
					t.Fatal(err)
				}
				c := v.Cap()
				if c != prev {
					want := 2 * prev
					if prev == 0 {
						want = 1
					}
					if c != want {
						t.Fatalf("capacity went %d -> %d, want %d", prev, c, want)
					}
					prev = c
				}
			}
		})
	}
}

// TestPointerElements stores pointer-typed elements through churn
func TestPointerElements(t *testing.T) {
	vals := make([]*int, 20)
	v := rawvec.New[*int]()
	for i := range vals {
		n := i * 11
		vals[i] = &n
		if err := v.Append(vals[i]); err != nil {
			t.Fatal(err)
		}
	}

	v.Erase(0)
	if _, err := v.Insert(5, vals[0]); err != nil {
		t.Fatal(err)
	}

	seen := 0
	for p := range v.Values() {
		if p == nil {
			t.Fatal("nil element leaked in")
		}
		seen++
	}
	if seen != 20 {
		t.Errorf("len=%d, want 20", seen)
	}
}
