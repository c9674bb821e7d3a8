package altecs

// Each calls fn for every alive entity that has component A, in index order.
// The set of entities is taken before the first call, so fn may spawn and
// despawn freely. An entity that loses the component before its turn is
// skipped.
func Each[A any](w *World, fn func(id EntityID, a *A)) {
	ca := componentID[A]()
	for _, id := range w.match(maskOf(ca), Bitmask{}) {
		if a := w.component(id, ca); a != nil {
			fn(id, (*A)(a))
		}
	}
}

// Each2 calls fn for every alive entity that has both A and B.
func Each2[A, B any](w *World, fn func(id EntityID, a *A, b *B)) {
	ca, cb := componentID[A](), componentID[B]()
	for _, id := range w.match(maskOf(ca, cb), Bitmask{}) {
		a, b := w.component(id, ca), w.component(id, cb)
		if a != nil && b != nil {
			fn(id, (*A)(a), (*B)(b))
		}
	}
}

// Each3 calls fn for every alive entity that has A, B and C.
func Each3[A, B, C any](w *World, fn func(id EntityID, a *A, b *B, c *C)) {
	ca, cb, cc := componentID[A](), componentID[B](), componentID[C]()
	for _, id := range w.match(maskOf(ca, cb, cc), Bitmask{}) {
		a, b, c := w.component(id, ca), w.component(id, cb), w.component(id, cc)
		if a != nil && b != nil && c != nil {
			fn(id, (*A)(a), (*B)(b), (*C)(c))
		}
	}
}

// Count returns the number of alive entities that have component A.
func Count[A any](w *World) int {
	return len(w.match(maskOf(componentID[A]()), Bitmask{}))
}

// Query returns the alive entities that have every component in with and
// none in without.
func Query(w *World, with, without Bitmask) []EntityID {
	return w.match(with, without)
}

// MaskOf returns a Bitmask with the component of A set.
func MaskOf[A any]() Bitmask {
	return maskOf(componentID[A]())
}
