package regmap

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// BitOrder is the order in which a C compiler allocates bitfields.
type BitOrder int

const (
	// LSBFirst places the first declared field at bit 0 (little-endian bitfields).
	LSBFirst BitOrder = iota
	// MSBFirst places the first declared field at the top of the word (big-endian bitfields).
	MSBFirst
)

func (o BitOrder) String() string {
	if o == MSBFirst {
		return "msb-first"
	}
	return "lsb-first"
}

// Mask returns the bits of the word covered by the field.
func (f Field) Mask() uint32 {
	return uint32((uint64(1)<<f.Width - 1) << f.Shift)
}

// Max returns the largest value the field can hold.
func (f Field) Max() uint32 {
	return uint32(uint64(1)<<f.Width - 1)
}

// High returns the most significant bit of the field.
func (f Field) High() uint8 {
	return f.Shift + f.Width - 1
}

func (f Field) Fits(v uint32) bool {
	return v <= f.Max()
}

func (f Field) Get(word uint32) uint32 {
	return (word & f.Mask()) >> f.Shift
}

// Set returns word with the field replaced by v. Bits of v above the width of
// the field are dropped.
func (f Field) Set(word, v uint32) uint32 {
	return (word &^ f.Mask()) | ((v << f.Shift) & f.Mask())
}

func (f Field) String() string {
	if f.Width == 1 {
		return fmt.Sprintf("%s[%d]", f.Name, f.Shift)
	}
	return fmt.Sprintf("%s[%d:%d]", f.Name, f.High(), f.Shift)
}

// Place assigns shifts to fields listed in declaration order for a compiler
// using the given bit order. The widths must add up to a full word.
func Place(fields []Field, order BitOrder) ([]Field, error) {
	total := 0
	for _, f := range fields {
		if f.Width == 0 {
			return nil, fmt.Errorf("%w: field %s has no width", ErrLayout, f.Name)
		}
		total += int(f.Width)
	}
	if total != WordBits {
		return nil, fmt.Errorf("%w: field widths add up to %d bits", ErrLayout, total)
	}

	placed := slices.Clone(fields)
	pos := 0
	for i := range placed {
		if order == MSBFirst {
			pos += int(placed[i].Width)
			placed[i].Shift = uint8(WordBits - pos)
		} else {
			placed[i].Shift = uint8(pos)
			pos += int(placed[i].Width)
		}
	}
	return placed, nil
}

// Declaration returns the fields of the word in the order a compiler with the
// given bit order needs them declared to produce the canonical layout.
func (w *Word) Declaration(order BitOrder) []Field {
	fields := slices.Clone(w.Fields)
	slices.SortStableFunc(fields, func(a, b Field) int {
		if order == MSBFirst {
			return int(b.Shift) - int(a.Shift)
		}
		return int(a.Shift) - int(b.Shift)
	})
	return fields
}

// Check verifies that the fields of the word cover every bit exactly once.
func (w *Word) Check() error {
	next := 0
	for _, f := range w.Declaration(LSBFirst) {
		if f.Width == 0 {
			return fmt.Errorf("%w: %s.%s has no width", ErrLayout, w.Name, f.Name)
		}
		switch {
		case int(f.Shift) < next:
			return fmt.Errorf("%w: %s.%s overlaps bit %d", ErrLayout, w.Name, f.Name, f.Shift)
		case int(f.Shift) > next:
			return fmt.Errorf("%w: %s has no field at bit %d", ErrLayout, w.Name, next)
		}
		next = int(f.Shift) + int(f.Width)
	}
	if next != WordBits {
		return fmt.Errorf("%w: %s covers %d of %d bits", ErrLayout, w.Name, next, WordBits)
	}
	return nil
}
