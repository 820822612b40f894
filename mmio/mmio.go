// Package mmio gives word-granular access to a memory-mapped register block.
package mmio

import (
	"errors"
	"fmt"

	"omibyte.io/ctucanfd/regmap"
)

var (
	ErrUnaligned  = errors.New("unaligned access")
	ErrOutOfRange = errors.New("offset out of range")
	ErrReadOnly   = errors.New("bus is read-only")
	ErrClosed     = errors.New("bus is closed")
)

// Bus reads and writes 32-bit words at byte offsets from the block base.
type Bus interface {
	Read32(offset uint32) (uint32, error)
	Write32(offset, value uint32) error
}

func checkWord(offset uint32, size int) error {
	if offset%4 != 0 {
		return fmt.Errorf("%w: %#x", ErrUnaligned, offset)
	}
	if uint64(offset)+4 > uint64(size) {
		return fmt.Errorf("%w: %#x beyond %#x", ErrOutOfRange, offset, size)
	}
	return nil
}

// ReadRegister returns the value of a register narrower than a word, read from
// the word that contains it.
func ReadRegister(bus Bus, r regmap.Register) (uint32, error) {
	word, err := bus.Read32(r.WordOffset())
	if err != nil {
		return 0, err
	}
	word >>= r.Lane()
	if r.Size < regmap.WordBits {
		word &= 1<<r.Size - 1
	}
	return word, nil
}
