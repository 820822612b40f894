package regs

import (
	"fmt"

	"omibyte.io/ctucanfd/mmio"
)

// Word is implemented by the type of every word in the map.
type Word interface {
	~uint32
	Offset() Register
}

func (r Register) String() string {
	if reg, ok := Map.RegisterAt(uint32(r)); ok {
		return reg.Name
	}
	return fmt.Sprintf("Register(%#x)", uint32(r))
}

// Read loads a whole word from the bus.
func Read[W Word](bus mmio.Bus) (W, error) {
	var w W
	v, err := bus.Read32(uint32(w.Offset()))
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", w.Offset(), err)
	}
	return W(v), nil
}

// Write stores a whole word to the bus. Fields of registers sharing the word
// are written too, so start from a value read back when they matter.
func Write[W Word](bus mmio.Bus, w W) error {
	if err := bus.Write32(uint32(w.Offset()), uint32(w)); err != nil {
		return fmt.Errorf("write %s: %w", w.Offset(), err)
	}
	return nil
}

// Modify reads a word, lets fn change it and writes it back.
func Modify[W Word](bus mmio.Bus, fn func(w *W)) error {
	w, err := Read[W](bus)
	if err != nil {
		return err
	}
	fn(&w)
	return Write(bus, w)
}
