package regmap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// Validate checks the structural consistency of the map and returns every
// problem found, joined.
func (m *Map) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrLayout}, args...)...))
	}

	// Registers
	registers := map[string]Register{}
	for _, r := range m.Registers {
		if _, ok := registers[r.Name]; ok {
			fail("register %s declared twice", r.Name)
			continue
		}
		registers[r.Name] = r

		switch r.Size {
		case 8, 16, 32:
		default:
			fail("register %s has size %d", r.Name, r.Size)
			continue
		}
		if r.Offset%uint32(r.Size/8) != 0 {
			fail("register %s at %#x is not aligned to its size", r.Name, r.Offset)
		}
		if int(r.Lane())+int(r.Size) > WordBits {
			fail("register %s crosses a word boundary", r.Name)
		}
	}

	sorted := slices.Clone(m.Registers)
	slices.SortStableFunc(sorted, func(a, b Register) int {
		return int(a.Offset) - int(b.Offset)
	})
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.Offset == cur.Offset {
			fail("registers %s and %s share offset %#x", prev.Name, cur.Name, cur.Offset)
		} else if prev.End() > cur.Offset {
			fail("register %s overlaps %s", prev.Name, cur.Name)
		}
	}

	// Enums
	enums := map[string]*Enum{}
	for i := range m.Enums {
		e := &m.Enums[i]
		if _, ok := enums[e.Name]; ok {
			fail("enum %s declared twice", e.Name)
		}
		enums[e.Name] = e

		seen := map[string]bool{}
		for _, v := range e.Values {
			if seen[v.Name] {
				fail("enum %s declares %s twice", e.Name, v.Name)
			}
			seen[v.Name] = true
		}
	}

	// Words
	words := map[string]bool{}
	offsets := map[uint32]string{}
	for i := range m.Words {
		w := &m.Words[i]
		if words[w.Name] {
			fail("word %s declared twice", w.Name)
		}
		words[w.Name] = true

		if other, ok := offsets[w.Offset]; ok {
			fail("words %s and %s share offset %#x", other, w.Name, w.Offset)
		}
		offsets[w.Offset] = w.Name

		if w.Offset%4 != 0 {
			fail("word %s at %#x is not aligned", w.Name, w.Offset)
		}

		if err := w.Check(); err != nil {
			errs = append(errs, err)
		}

		for _, name := range w.Registers {
			r, ok := registers[name]
			if !ok {
				fail("word %s references unknown register %s", w.Name, name)
			} else if r.WordOffset() != w.Offset {
				fail("register %s is not part of word %s", name, w.Name)
			}
		}

		for _, f := range w.Fields {
			if f.Register == "" {
				if !f.Reserved {
					fail("%s.%s belongs to no register", w.Name, f.Name)
				}
			} else if r, ok := registers[f.Register]; !ok {
				fail("%s.%s references unknown register %s", w.Name, f.Name, f.Register)
			} else if r.WordOffset() != w.Offset {
				fail("%s.%s claims register %s of another word", w.Name, f.Name, r.Name)
			} else if f.Shift < r.Lane() || int(f.High()) >= int(r.Lane())+int(r.Size) {
				fail("%s.%s lies outside register %s", w.Name, f.Name, r.Name)
			}

			if f.Enum == "" {
				continue
			}
			e, ok := enums[f.Enum]
			if !ok {
				fail("%s.%s references unknown enum %s", w.Name, f.Name, f.Enum)
				continue
			}
			for _, v := range e.Values {
				if !f.Fits(v.Value) {
					fail("%s=%#x does not fit %d-bit field %s.%s", v.Name, v.Value, f.Width, w.Name, f.Name)
				}
			}
		}
	}

	return errors.Join(errs...)
}
