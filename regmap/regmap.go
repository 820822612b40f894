// Package regmap describes the register map of a memory-mapped device: the
// registers of an address block, the 32-bit words they are packed into, the
// bitfields of every word and the named values of coded fields.
//
// There is a single canonical layout. A field is located by its shift from the
// least significant bit of the word and its width, and is read and written with
// explicit shifts and masks. The two declaration orders used by C bitfield
// compilers are derived from it (see Word.Declaration and Place).
package regmap

import (
	"errors"
	"fmt"
	"strings"
)

// WordBits is the width of a register word.
const WordBits = 32

var (
	ErrLayout           = errors.New("invalid register layout")
	ErrUnknownWord      = errors.New("unknown register")
	ErrUnknownField     = errors.New("unknown field")
	ErrUnknownEnumValue = errors.New("unknown enumerated value")
	ErrValueRange       = errors.New("value does not fit field")
	ErrReservedField    = errors.New("field is reserved")
)

type Access string

const (
	ReadOnly  Access = "read-only"
	WriteOnly Access = "write-only"
	ReadWrite Access = "read-write"
)

func (a Access) Readable() bool {
	return a == ReadOnly || a == ReadWrite
}

func (a Access) Writable() bool {
	return a == WriteOnly || a == ReadWrite
}

// Register is a named location in the address block. Registers smaller than a
// word share the word at Offset &^ 3 with their neighbours.
type Register struct {
	Name   string
	Offset uint32
	Size   uint8
	Access Access
	// ReadEffect is set when reading the register changes the device state,
	// such as popping a FIFO.
	ReadEffect  bool
	Description string
}

// WordOffset returns the offset of the word containing the register.
func (r Register) WordOffset() uint32 {
	return r.Offset &^ 3
}

// Lane returns the bit position of the register inside its word.
func (r Register) Lane() uint8 {
	return uint8(r.Offset&3) * 8
}

// End returns the first byte offset past the register.
func (r Register) End() uint32 {
	return r.Offset + uint32(r.Size)/8
}

// Field is a bitfield of a word. Register names the register whose lanes hold
// the field and is empty for padding that belongs to no register.
type Field struct {
	Name     string
	Register string
	Shift    uint8
	Width    uint8
	Access   Access
	Enum     string
	Reserved bool
}

// Word is one 32-bit location and the fields laid out in it.
type Word struct {
	Name      string
	Offset    uint32
	Registers []string
	Fields    []Field
}

func (w *Word) Field(name string) (Field, bool) {
	for _, f := range w.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

type Value struct {
	Name  string
	Value uint32
}

// Enum is the set of named codes of a field. Several names may share one code.
type Enum struct {
	Name   string
	Values []Value
}

// Names returns every name given to v, in declaration order.
func (e *Enum) Names(v uint32) (names []string) {
	for _, ev := range e.Values {
		if ev.Value == v {
			names = append(names, ev.Name)
		}
	}
	return
}

// Value returns the code called name. Names match regardless of case.
func (e *Enum) Value(name string) (uint32, bool) {
	for _, ev := range e.Values {
		if strings.EqualFold(ev.Name, name) {
			return ev.Value, true
		}
	}
	return 0, false
}

// Max returns the largest code of the enum.
func (e *Enum) Max() (max uint32) {
	for _, ev := range e.Values {
		if ev.Value > max {
			max = ev.Value
		}
	}
	return
}

// Map is the register map of one address block.
type Map struct {
	Name      string
	Registers []Register
	Words     []Word
	Enums     []Enum
}

func (m *Map) Register(name string) (Register, bool) {
	for _, r := range m.Registers {
		if r.Name == name {
			return r, true
		}
	}
	return Register{}, false
}

// RegisterAt returns the register starting at offset.
func (m *Map) RegisterAt(offset uint32) (Register, bool) {
	for _, r := range m.Registers {
		if r.Offset == offset {
			return r, true
		}
	}
	return Register{}, false
}

func (m *Map) WordAt(offset uint32) (*Word, bool) {
	for i := range m.Words {
		if m.Words[i].Offset == offset {
			return &m.Words[i], true
		}
	}
	return nil, false
}

func (m *Map) Enum(name string) (*Enum, bool) {
	for i := range m.Enums {
		if m.Enums[i].Name == name {
			return &m.Enums[i], true
		}
	}
	return nil, false
}

// Readable reports whether w holds at least one readable register, and
// whether reading it has side effects.
func (m *Map) Readable(w *Word) (readable, effect bool) {
	for _, name := range w.Registers {
		r, ok := m.Register(name)
		if !ok {
			continue
		}
		readable = readable || r.Access.Readable()
		effect = effect || r.ReadEffect
	}
	return
}

// Lookup finds a word by its own name or by the name of one of its registers.
func (m *Map) Lookup(name string) (*Word, error) {
	for i := range m.Words {
		if m.Words[i].Name == name {
			return &m.Words[i], nil
		}
	}

	if r, ok := m.Register(name); ok {
		if w, ok := m.WordAt(r.WordOffset()); ok {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownWord, name)
}
