package regmap

import (
	"fmt"
	"strings"

	"omibyte.io/ctucanfd/ipxact"
)

type FieldValue struct {
	Field Field
	Value uint32
	// Names lists every enumerated name of Value. Aliased codes give more than one.
	Names []string
}

type Decoded struct {
	Word   *Word
	Raw    uint32
	Fields []FieldValue
}

// Decode splits a raw word value into its fields.
func (m *Map) Decode(name string, raw uint32) (Decoded, error) {
	w, err := m.Lookup(name)
	if err != nil {
		return Decoded{}, err
	}

	d := Decoded{Word: w, Raw: raw}
	for _, f := range w.Declaration(LSBFirst) {
		fv := FieldValue{Field: f, Value: f.Get(raw)}
		if e, ok := m.Enum(f.Enum); ok {
			fv.Names = e.Names(fv.Value)
		}
		d.Fields = append(d.Fields, fv)
	}
	return d, nil
}

// Encode applies FIELD=value assignments to start and returns the new raw word.
// A value is an enumerated name of the field, true/false for single bits, or
// an integer in any form accepted by ipxact.ParseInteger. Field and enumerated
// names match regardless of case.
func (m *Map) Encode(name string, start uint32, assignments ...string) (uint32, error) {
	w, err := m.Lookup(name)
	if err != nil {
		return 0, err
	}

	raw := start
	for _, a := range assignments {
		fieldName, text, ok := strings.Cut(a, "=")
		if !ok {
			return 0, fmt.Errorf("assignment %q is not FIELD=value", a)
		}

		f, ok := w.Field(strings.ToUpper(strings.TrimSpace(fieldName)))
		if !ok {
			return 0, fmt.Errorf("%w: %s.%s", ErrUnknownField, w.Name, fieldName)
		}
		if f.Reserved {
			return 0, fmt.Errorf("%w: %s.%s", ErrReservedField, w.Name, f.Name)
		}

		v, err := m.parseValue(f, strings.TrimSpace(text))
		if err != nil {
			return 0, err
		}
		raw = f.Set(raw, v)
	}
	return raw, nil
}

func (m *Map) parseValue(f Field, text string) (uint32, error) {
	if e, ok := m.Enum(f.Enum); ok {
		if v, ok := e.Value(text); ok {
			return v, nil
		}
	}

	if f.Width == 1 {
		switch strings.ToLower(text) {
		case "true":
			return 1, nil
		case "false":
			return 0, nil
		}
	}

	v, err := ipxact.ParseInteger(text)
	if err != nil {
		if f.Enum != "" {
			return 0, fmt.Errorf("%w: %s is not a value of %s", ErrUnknownEnumValue, text, f.Enum)
		}
		return 0, fmt.Errorf("%s: %w", f.Name, err)
	}
	if v > 0xffffffff || !f.Fits(uint32(v)) {
		return 0, fmt.Errorf("%w: %#x exceeds %d-bit field %s", ErrValueRange, uint64(v), f.Width, f.Name)
	}
	return uint32(v), nil
}
