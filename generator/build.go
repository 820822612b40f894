package generator

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"omibyte.io/ctucanfd/ipxact"
	"omibyte.io/ctucanfd/regmap"
)

var ErrDescription = errors.New("invalid register description")

// Build converts an IP-XACT address block into a register map. Registers are
// packed into the 32-bit word containing them and the bits no field claims are
// filled with reserved fields, so every word covers exactly 32 bits.
func Build(block *ipxact.AddressBlockElement) (*regmap.Map, error) {
	m := &regmap.Map{Name: block.Name}

	registers := slices.Clone(block.Registers)
	slices.SortStableFunc(registers, func(a, b ipxact.RegisterElement) int {
		return int(a.AddressOffset) - int(b.AddressOffset)
	})

	defaultAccess := normalizeAccess(block.Access, regmap.ReadWrite)

	var words []*regmap.Word
	for _, register := range registers {
		size := register.Size
		if size == 0 {
			size = block.Width
		}
		if size == 0 {
			size = regmap.WordBits
		}

		reg := regmap.Register{
			Name:        strings.ToUpper(register.Name),
			Offset:      uint32(register.AddressOffset),
			Size:        uint8(size),
			Access:      normalizeAccess(register.Access, defaultAccess),
			Description: cleanDescription(register.Description),
		}
		for _, field := range register.Fields {
			if field.ReadAction != "" {
				reg.ReadEffect = true
			}
		}
		m.Registers = append(m.Registers, reg)

		// Registers without fields only contribute an address
		if len(register.Fields) == 0 {
			continue
		}

		var word *regmap.Word
		if n := len(words); n > 0 && words[n-1].Offset == reg.WordOffset() {
			word = words[n-1]
		} else {
			word = &regmap.Word{Offset: reg.WordOffset()}
			words = append(words, word)
		}
		word.Registers = append(word.Registers, reg.Name)

		fields := slices.Clone(register.Fields)
		slices.SortStableFunc(fields, func(a, b ipxact.FieldElement) int {
			return int(a.BitOffset) - int(b.BitOffset)
		})

		for _, field := range fields {
			if field.BitWidth == 0 || field.BitOffset+field.BitWidth > size {
				return nil, fmt.Errorf("%w: field %s.%s does not fit a %d-bit register", ErrDescription, reg.Name, field.Name, size)
			}

			f := regmap.Field{
				Name:     strings.ToUpper(field.Name),
				Register: reg.Name,
				Shift:    reg.Lane() + uint8(field.BitOffset),
				Width:    uint8(field.BitWidth),
				Access:   normalizeAccess(field.Access, reg.Access),
			}

			if len(field.EnumeratedValues) > 0 {
				name, err := addEnum(m, reg.Name+"_"+f.Name, field.EnumeratedValues, f)
				if err != nil {
					return nil, err
				}
				f.Enum = name
			}
			word.Fields = append(word.Fields, f)
		}
	}

	for _, word := range words {
		word.Name = strings.Join(word.Registers, "_")
		if err := fillReserved(m, word); err != nil {
			return nil, err
		}
		m.Words = append(m.Words, *word)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDescription, err)
	}
	if err := checkIdentifiers(m); err != nil {
		return nil, err
	}
	return m, nil
}

// addEnum registers the enumerated values of a field. A list identical to one
// already seen reuses the earlier enum so the generated type is shared.
func addEnum(m *regmap.Map, name string, elements []ipxact.EnumeratedValueElement, f regmap.Field) (string, error) {
	values := make([]regmap.Value, 0, len(elements))
	for _, ev := range elements {
		v := regmap.Value{
			Name:  strings.ToUpper(ev.Name),
			Value: uint32(ev.Value),
		}
		if uint64(ev.Value) > uint64(f.Max()) {
			return "", fmt.Errorf("%w: %s=%#x does not fit %d-bit field %s", ErrDescription, v.Name, uint64(ev.Value), f.Width, f.Name)
		}
		values = append(values, v)
	}

	for _, e := range m.Enums {
		if slices.Equal(e.Values, values) {
			return e.Name, nil
		}
	}

	m.Enums = append(m.Enums, regmap.Enum{Name: name, Values: values})
	return name, nil
}

func fillReserved(m *regmap.Map, word *regmap.Word) error {
	slices.SortStableFunc(word.Fields, func(a, b regmap.Field) int {
		return int(a.Shift) - int(b.Shift)
	})

	// Gaps are split where a register starts or ends so each piece has at
	// most one owner
	var bounds []uint8
	for _, name := range word.Registers {
		r, _ := m.Register(name)
		bounds = append(bounds, r.Lane(), r.Lane()+r.Size)
	}

	var fields []regmap.Field
	gap := func(lo, hi uint8) {
		for bit := lo + 1; bit <= hi; bit++ {
			if slices.Contains(bounds, bit) {
				fields = append(fields, reservedField(m, word, lo, bit-1))
				lo = bit
			}
		}
		fields = append(fields, reservedField(m, word, lo, hi))
	}

	next := uint8(0)
	for _, f := range word.Fields {
		if f.Shift < next {
			return fmt.Errorf("%w: %s.%s overlaps another field", ErrDescription, word.Name, f.Name)
		}
		if f.Shift > next {
			gap(next, f.Shift-1)
		}
		fields = append(fields, f)
		next = f.Shift + f.Width
	}
	if next < regmap.WordBits {
		gap(next, regmap.WordBits-1)
	}

	word.Fields = fields
	return nil
}

func reservedField(m *regmap.Map, word *regmap.Word, lo, hi uint8) regmap.Field {
	f := regmap.Field{
		Name:     fmt.Sprintf("RESERVED_%d_%d", hi, lo),
		Shift:    lo,
		Width:    hi - lo + 1,
		Reserved: true,
	}
	if hi == lo {
		f.Name = fmt.Sprintf("RESERVED_%d", lo)
	}

	// The gap belongs to the register whose lanes hold its lowest bit
	for _, name := range word.Registers {
		r, _ := m.Register(name)
		if lo >= r.Lane() && int(lo) < int(r.Lane())+int(r.Size) {
			f.Register = r.Name
			break
		}
	}
	return f
}

func normalizeAccess(access string, fallback regmap.Access) regmap.Access {
	switch access {
	case "read-only":
		return regmap.ReadOnly
	case "write-only", "writeOnce":
		return regmap.WriteOnly
	case "read-write", "read-writeOnce":
		return regmap.ReadWrite
	default:
		return fallback
	}
}

func cleanDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
