package branding

// Hash sums the code points of s left to right, wrapping modulo 2^32.
// It is the only source of variation in palette selection.
func Hash(s string) uint32 {
	var sum uint32
	for _, r := range s {
		sum += uint32(r)
	}
	return sum
}
