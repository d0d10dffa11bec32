package convert

// SetBit returns word with bit n set to b.
func SetBit(word uint32, n uint, b bool) uint32 {
	if b {
		return word | 1<<n
	}
	return word &^ (1 << n)
}

// SignExtend sign-extends the low bits bits of v.
func SignExtend(v uint32, bits uint) uint32 {
	shift := 32 - bits
	return uint32(int32(v<<shift) >> shift)
}
