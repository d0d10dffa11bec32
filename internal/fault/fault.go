// Package fault defines the single error type every simulation step reports.
package fault

import (
	"errors"
	"fmt"

	"GoCRIS/internal/interfaces"
)

type Kind uint8

const (
	IllegalInsn   Kind = iota // Decoded as the invalid instruction
	BusError                  // Access straddles its alignment unit, or writes read-only memory
	Unmapped                  // No region covers the access
	Unimplemented             // Valid instruction without semantics in this core
	Break                     // BREAK n executed
	Halt                      // HALT executed
)

var kindNames = [...]string{
	IllegalInsn:   "illegal instruction",
	BusError:      "bus error",
	Unmapped:      "unmapped memory",
	Unimplemented: "unimplemented instruction",
	Break:         "break",
	Halt:          "halt",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("fault(%d)", uint8(k))
}

type Direction uint8

const (
	Read Direction = iota
	Write
)

func (d Direction) String() string {
	if d == Write {
		return "write"
	}
	return "read"
}

// Fault carries everything needed to reconstruct a failed step without
// re-running: the access (address, width, direction, space) and the PC of
// the instruction that caused it.
type Fault struct {
	Kind  Kind
	Addr  uint32
	Width int
	Dir   Direction
	Space interfaces.Space
	PC    uint32
	HasPC bool
	Code  uint32 // BREAK number, or the raw instruction word
	Name  string // itype mnemonic, when known
}

func (f *Fault) Error() string {
	var s string
	switch f.Kind {
	case BusError, Unmapped:
		s = fmt.Sprintf("%s: %s of %d bytes at 0x%08x (%s space)", f.Kind, f.Dir, f.Width, f.Addr, f.Space)
	case Break:
		s = fmt.Sprintf("%s %d", f.Kind, f.Code)
	case IllegalInsn:
		s = fmt.Sprintf("%s 0x%04x", f.Kind, f.Code)
	case Unimplemented:
		s = fmt.Sprintf("%s %s", f.Kind, f.Name)
	default:
		s = f.Kind.String()
	}
	if f.HasPC {
		s += fmt.Sprintf(" at pc 0x%08x", f.PC)
	}
	return s
}

// Memory builds a bus-error or unmapped fault for an access.
func Memory(kind Kind, space interfaces.Space, dir Direction, addr uint32, width int) *Fault {
	return &Fault{Kind: kind, Space: space, Dir: dir, Addr: addr, Width: width}
}

// WithPC stamps pc on err if it is a Fault that has no PC yet. Other errors
// are returned unchanged.
func WithPC(err error, pc uint32) error {
	var f *Fault
	if errors.As(err, &f) && !f.HasPC {
		f.PC = pc
		f.HasPC = true
	}
	return err
}

// Is reports whether err is a Fault of kind k.
func Is(err error, k Kind) bool {
	var f *Fault
	return errors.As(err, &f) && f.Kind == k
}

// Internal is the panic value for model-construction bugs (table index
// mismatches, pending ring overflow). It is never returned as an error.
type Internal struct {
	Msg string
}

func (i Internal) Error() string {
	return "internal consistency fault: " + i.Msg
}

func Internalf(format string, a ...interface{}) Internal {
	return Internal{Msg: fmt.Sprintf(format, a...)}
}
