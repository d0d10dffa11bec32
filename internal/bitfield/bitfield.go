// Package bitfield pulls LSB0-numbered fields out of raw instruction words.
//
// A field is named by its most significant bit (start, counted from bit 0)
// and its length, so a 4-bit field occupying bits 15..12 is (15, 4).
package bitfield

import "fmt"

// Uint returns the zero-extended field of length bits whose top bit is start.
// The word width does not matter with LSB0 numbering.
func Uint(word uint64, _, start, length uint) uint64 {
	return (word >> (start + 1 - length)) & mask(length)
}

// Sint returns the sign-extended field of length bits whose top bit is start.
func Sint(word uint64, wordBits, start, length uint) int64 {
	v := Uint(word, wordBits, start, length)
	shift := 64 - length
	return int64(v<<shift) >> shift
}

func mask(length uint) uint64 {
	if length >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << length) - 1
}

// Field is a validated field position inside a word of WordBits bits.
type Field struct {
	WordBits uint
	Start    uint
	Length   uint
}

// MustField validates a field definition. Field layouts come from fixed ISA
// tables, so a bad one is a programming error and panics at package init.
func MustField(wordBits, start, length uint) Field {
	if wordBits == 0 || wordBits > 64 {
		panic(fmt.Sprintf("bitfield: word width %d out of range", wordBits))
	}
	if length == 0 || start >= wordBits || length > start+1 {
		panic(fmt.Sprintf("bitfield: field (%d,%d) does not fit a %d-bit word", start, length, wordBits))
	}
	return Field{WordBits: wordBits, Start: start, Length: length}
}

// Uint extracts f from word, zero-extended.
func (f Field) Uint(word uint64) uint64 {
	return Uint(word, f.WordBits, f.Start, f.Length)
}

// Sint extracts f from word, sign-extended.
func (f Field) Sint(word uint64) int64 {
	return Sint(word, f.WordBits, f.Start, f.Length)
}
