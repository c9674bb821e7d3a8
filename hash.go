package altecs

// Hash returns the host's hash of name, used for models and weapons.
// It is Jenkins' one-at-a-time hash over the ASCII-lowercased name.
func Hash(name string) uint32 {
	var h uint32
	for i := 0; i < len(name); i++ {
		c := name[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		h += uint32(c)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}
