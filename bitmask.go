package altecs

import (
	"math/bits"
)

// Bitmask is a 256-bit set of ComponentIDs describing which components an
// entity carries. Queries match entities by comparing masks.
type Bitmask [4]uint64

// Set sets the bit for id.
func (m *Bitmask) Set(id ComponentID) {
	m[id>>6] |= 1 << (id & 63)
}

// Clear clears the bit for id.
func (m *Bitmask) Clear(id ComponentID) {
	m[id>>6] &^= 1 << (id & 63)
}

// Has reports whether the bit for id is set.
func (m *Bitmask) Has(id ComponentID) bool {
	return m[id>>6]&(1<<(id&63)) != 0
}

// ContainsAll reports whether every bit of other is set in m.
func (m *Bitmask) ContainsAll(other Bitmask) bool {
	for i := range m {
		if m[i]&other[i] != other[i] {
			return false
		}
	}
	return true
}

// ContainsAny reports whether m and other share at least one bit.
func (m *Bitmask) ContainsAny(other Bitmask) bool {
	for i := range m {
		if m[i]&other[i] != 0 {
			return true
		}
	}
	return false
}

// IsZero reports whether no bits are set.
func (m *Bitmask) IsZero() bool {
	return m[0]|m[1]|m[2]|m[3] == 0
}

// Or returns the union of m and other.
func (m Bitmask) Or(other Bitmask) Bitmask {
	for i := range m {
		m[i] |= other[i]
	}
	return m
}

// AndNot returns the bits of m that are not in other.
func (m Bitmask) AndNot(other Bitmask) Bitmask {
	for i := range m {
		m[i] &^= other[i]
	}
	return m
}

// Count returns the number of bits set.
func (m *Bitmask) Count() int {
	n := 0
	for _, w := range m {
		n += bits.OnesCount64(w)
	}
	return n
}

// Each calls fn for every set bit in ascending order.
func (m *Bitmask) Each(fn func(id ComponentID)) {
	for i, w := range m {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(ComponentID(i*64 + b))
			w &= w - 1
		}
	}
}

// maskOf builds a mask with the given ids set.
func maskOf(ids ...ComponentID) Bitmask {
	var m Bitmask
	for _, id := range ids {
		m.Set(id)
	}
	return m
}
