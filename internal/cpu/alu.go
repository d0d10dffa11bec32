package cpu

import "GoCRIS/util/convert"

// flags is the NZVC result of an ALU operation.
type flags struct {
	N, Z, V, C bool
}

func sizeMask(size int) uint32 {
	switch size {
	case 1:
		return 0xff
	case 2:
		return 0xffff
	}
	return 0xffffffff
}

func signBit(size int) uint32 {
	return 1 << (uint(size)*8 - 1)
}

// merge replaces the low size bytes of old with v. Byte and word results
// leave the upper part of the destination register alone.
func merge(old, v uint32, size int) uint32 {
	m := sizeMask(size)
	return old&^m | v&m
}

// extend widens the low size bytes of v to 32 bits.
func extend(v uint32, size int, signed bool) uint32 {
	if signed {
		return convert.SignExtend(v, uint(size)*8)
	}
	return v & sizeMask(size)
}

func logicFlags(r uint32, size int) flags {
	r &= sizeMask(size)
	return flags{N: r&signBit(size) != 0, Z: r == 0}
}

func add(a, b uint32, size int) (uint32, flags) {
	m := sizeMask(size)
	a, b = a&m, b&m
	wide := uint64(a) + uint64(b)
	r := uint32(wide) & m
	f := logicFlags(r, size)
	f.C = wide>>(uint(size)*8) != 0
	same := ^(a ^ b)
	f.V = same&(a^r)&signBit(size) != 0
	return r, f
}

func sub(a, b uint32, size int) (uint32, flags) {
	m := sizeMask(size)
	a, b = a&m, b&m
	r := (a - b) & m
	f := logicFlags(r, size)
	f.C = b > a
	f.V = (a^b)&(a^r)&signBit(size) != 0
	return r, f
}

// mul forms the 64-bit product of the sign- or zero-extended operands.
// V is set when the product does not fit the 32-bit result.
func mul(a, b uint32, size int, signed bool) (lo, hi uint32, f flags) {
	a, b = extend(a, size, signed), extend(b, size, signed)
	var p uint64
	if signed {
		p = uint64(int64(int32(a)) * int64(int32(b)))
		f.V = int64(p) != int64(int32(uint32(p)))
	} else {
		p = uint64(a) * uint64(b)
		f.V = p>>32 != 0
	}
	lo, hi = uint32(p), uint32(p>>32)
	f.N = lo&0x80000000 != 0
	f.Z = lo == 0
	return lo, hi, f
}

// condition evaluates a CRIS branch condition code against CCS.
func (r *Registers) condition(cc uint8) bool {
	c, v, z, n := r.GetFlagC(), r.GetFlagV(), r.GetFlagZ(), r.GetFlagN()
	switch cc & 15 {
	case 0: // cc
		return !c
	case 1: // cs
		return c
	case 2: // ne
		return !z
	case 3: // eq
		return z
	case 4: // vc
		return !v
	case 5: // vs
		return v
	case 6: // pl
		return !n
	case 7: // mi
		return n
	case 8: // ls
		return c || z
	case 9: // hi
		return !c && !z
	case 10: // ge
		return n == v
	case 11: // lt
		return n != v
	case 12: // gt
		return !z && n == v
	case 13: // le
		return z || n != v
	case 14: // a
		return true
	}
	return false
}

func (r *Registers) setFlags(f flags) {
	r.SetFlagN(f.N)
	r.SetFlagZ(f.Z)
	r.SetFlagV(f.V)
	r.SetFlagC(f.C)
}
