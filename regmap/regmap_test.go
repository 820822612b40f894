package regmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMap() *Map {
	return &Map{
		Name: "test",
		Registers: []Register{
			{Name: "CTRL", Offset: 0x4, Size: 8, Access: ReadWrite},
			{Name: "CMD", Offset: 0x5, Size: 8, Access: WriteOnly},
			{Name: "STAT", Offset: 0x6, Size: 16, Access: ReadOnly},
			{Name: "DATA", Offset: 0x8, Size: 32, Access: ReadOnly},
		},
		Words: []Word{
			{
				Name:      "CTRL_CMD_STAT",
				Offset:    0x4,
				Registers: []string{"CTRL", "CMD", "STAT"},
				Fields: []Field{
					{Name: "EN", Register: "CTRL", Shift: 0, Width: 1, Access: ReadWrite},
					{Name: "MODE", Register: "CTRL", Shift: 1, Width: 3, Access: ReadWrite, Enum: "CTRL_MODE"},
					{Name: "RESERVED_7_4", Register: "CTRL", Shift: 4, Width: 4, Reserved: true},
					{Name: "GO", Register: "CMD", Shift: 8, Width: 1, Access: WriteOnly},
					{Name: "RESERVED_15_9", Register: "CMD", Shift: 9, Width: 7, Reserved: true},
					{Name: "COUNT", Register: "STAT", Shift: 16, Width: 16, Access: ReadOnly},
				},
			},
			{
				Name:      "DATA",
				Offset:    0x8,
				Registers: []string{"DATA"},
				Fields: []Field{
					{Name: "DATA", Register: "DATA", Shift: 0, Width: 32, Access: ReadOnly},
				},
			},
		},
		Enums: []Enum{
			{Name: "CTRL_MODE", Values: []Value{
				{Name: "IDLE", Value: 0x0},
				{Name: "RUN", Value: 0x1},
				{Name: "GO_ON", Value: 0x1},
				{Name: "HALT", Value: 0x7},
			}},
		},
	}
}

func TestFieldAccess(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		mask  uint32
		max   uint32
	}{
		{"bit0", Field{Shift: 0, Width: 1}, 0x1, 0x1},
		{"nibble", Field{Shift: 25, Width: 4}, 0x1e000000, 0xf},
		{"top", Field{Shift: 31, Width: 1}, 0x80000000, 0x1},
		{"full", Field{Shift: 0, Width: 32}, 0xffffffff, 0xffffffff},
		{"wide", Field{Shift: 16, Width: 16}, 0xffff0000, 0xffff},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.mask, tc.field.Mask())
			assert.Equal(t, tc.max, tc.field.Max())

			word := tc.field.Set(0, tc.max)
			assert.Equal(t, tc.mask, word)
			assert.Equal(t, tc.max, tc.field.Get(word))
			assert.Equal(t, ^tc.mask, tc.field.Set(0xffffffff, 0))
		})
	}
}

func TestFieldSetTruncates(t *testing.T) {
	f := Field{Name: "RTRTH", Shift: 25, Width: 4}
	word := f.Set(0x01ffffff, 0x1f)
	assert.Equal(t, uint32(0x1fffffff), word)
	assert.Equal(t, uint32(0xf), f.Get(word))
	assert.False(t, f.Fits(0x10))
	assert.Equal(t, "RTRTH[28:25]", f.String())
}

func TestPlaceRoundTrip(t *testing.T) {
	m := testMap()
	w, err := m.Lookup("CTRL_CMD_STAT")
	require.NoError(t, err)

	for _, order := range []BitOrder{LSBFirst, MSBFirst} {
		t.Run(order.String(), func(t *testing.T) {
			decl := w.Declaration(order)
			placed, err := Place(decl, order)
			require.NoError(t, err)
			assert.Equal(t, decl, placed)
		})
	}

	lsb := w.Declaration(LSBFirst)
	msb := w.Declaration(MSBFirst)
	require.Len(t, msb, len(lsb))
	for i := range lsb {
		assert.Equal(t, lsb[i].Name, msb[len(msb)-1-i].Name)
		assert.Equal(t, lsb[i].Width, msb[len(msb)-1-i].Width)
	}
	assert.Equal(t, "COUNT", msb[0].Name)
}

func TestPlaceRejectsShortWord(t *testing.T) {
	_, err := Place([]Field{{Name: "A", Width: 8}, {Name: "B", Width: 8}}, LSBFirst)
	assert.ErrorIs(t, err, ErrLayout)

	_, err = Place([]Field{{Name: "A", Width: 0}}, MSBFirst)
	assert.ErrorIs(t, err, ErrLayout)
}

func TestWordCheck(t *testing.T) {
	w := Word{Name: "W", Fields: []Field{
		{Name: "A", Shift: 0, Width: 8},
		{Name: "B", Shift: 4, Width: 28},
	}}
	assert.ErrorIs(t, w.Check(), ErrLayout)

	w.Fields[1] = Field{Name: "B", Shift: 9, Width: 23}
	assert.ErrorContains(t, w.Check(), "no field at bit 8")

	w.Fields[1] = Field{Name: "B", Shift: 8, Width: 16}
	assert.ErrorContains(t, w.Check(), "covers 24 of 32 bits")

	w.Fields[1] = Field{Name: "B", Shift: 8, Width: 24}
	assert.NoError(t, w.Check())
}

func TestValidate(t *testing.T) {
	require.NoError(t, testMap().Validate())

	tests := []struct {
		name   string
		mutate func(m *Map)
		msg    string
	}{
		{"duplicate offset", func(m *Map) { m.Registers[3].Offset = 0x6 }, "share offset"},
		{"overlap", func(m *Map) { m.Registers[0].Size = 16 }, "overlaps"},
		{"bad size", func(m *Map) { m.Registers[3].Size = 24 }, "has size 24"},
		{"crosses word", func(m *Map) { m.Registers[2].Offset = 0x7 }, "crosses a word boundary"},
		{"enum too wide", func(m *Map) { m.Enums[0].Values[3].Value = 0x8 }, "does not fit 3-bit field"},
		{"unknown enum", func(m *Map) { m.Words[0].Fields[1].Enum = "NOPE" }, "unknown enum NOPE"},
		{"field outside register", func(m *Map) { m.Words[0].Fields[3].Register = "CTRL" }, "lies outside register CTRL"},
		{"field of another word", func(m *Map) { m.Words[0].Fields[0].Register = "DATA" }, "claims register DATA of another word"},
		{"orphan field", func(m *Map) { m.Words[0].Fields[5].Register = "" }, "belongs to no register"},
		{"gap", func(m *Map) { m.Words[1].Fields[0].Width = 31 }, "covers 31 of 32 bits"},
		{"foreign register", func(m *Map) { m.Words[1].Registers = []string{"CTRL"} }, "not part of word DATA"},
		{"duplicate value name", func(m *Map) { m.Enums[0].Values[2].Name = "RUN" }, "declares RUN twice"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := testMap()
			tc.mutate(m)
			err := m.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrLayout)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLookup(t *testing.T) {
	m := testMap()

	w, err := m.Lookup("STAT")
	require.NoError(t, err)
	assert.Equal(t, "CTRL_CMD_STAT", w.Name)

	w, err = m.Lookup("DATA")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x8), w.Offset)

	_, err = m.Lookup("MISSING")
	assert.True(t, errors.Is(err, ErrUnknownWord))

	r, ok := m.RegisterAt(0x6)
	require.True(t, ok)
	assert.Equal(t, "STAT", r.Name)
	assert.Equal(t, uint8(16), r.Lane())
	assert.Equal(t, uint32(0x4), r.WordOffset())
	assert.Equal(t, uint32(0x8), r.End())
}

func TestReadable(t *testing.T) {
	m := testMap()
	m.Registers = append(m.Registers,
		Register{Name: "CLR", Offset: 0xc, Size: 32, Access: WriteOnly},
		Register{Name: "FIFO", Offset: 0x10, Size: 32, Access: ReadOnly, ReadEffect: true},
	)
	m.Words = append(m.Words,
		Word{Name: "CLR", Offset: 0xc, Registers: []string{"CLR"}},
		Word{Name: "FIFO", Offset: 0x10, Registers: []string{"FIFO"}},
	)

	tests := []struct {
		word     string
		readable bool
		effect   bool
	}{
		{"CTRL_CMD_STAT", true, false},
		{"DATA", true, false},
		{"CLR", false, false},
		{"FIFO", true, true},
	}
	for _, tc := range tests {
		w, err := m.Lookup(tc.word)
		require.NoError(t, err)
		readable, effect := m.Readable(w)
		assert.Equal(t, tc.readable, readable, tc.word)
		assert.Equal(t, tc.effect, effect, tc.word)
	}

	assert.True(t, ReadWrite.Writable())
	assert.False(t, ReadOnly.Writable())
	assert.True(t, WriteOnly.Writable())
}

func TestDecodeAliases(t *testing.T) {
	m := testMap()

	d, err := m.Decode("CTRL", 0x00420103)
	require.NoError(t, err)
	require.Len(t, d.Fields, 6)

	assert.Equal(t, "EN", d.Fields[0].Field.Name)
	assert.Equal(t, uint32(1), d.Fields[0].Value)
	assert.Equal(t, "MODE", d.Fields[1].Field.Name)
	assert.Equal(t, []string{"RUN", "GO_ON"}, d.Fields[1].Names)
	assert.Equal(t, uint32(1), d.Fields[3].Value)
	assert.Equal(t, uint32(0x42), d.Fields[5].Value)
}

func TestEncode(t *testing.T) {
	m := testMap()

	raw, err := m.Encode("CTRL_CMD_STAT", 0, "EN=true", "mode=HALT", "GO=1", "COUNT=0x1234")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1234010f), raw)

	raw, err = m.Encode("CTRL", raw, "EN=false")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1234010e), raw)

	// Enumerated names ignore case like field names, integers read like
	// Verilog or C literals with no octal form
	raw, err = m.Encode("CTRL", 0, "mode=halt", "count=010")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x000a000e), raw)

	raw, err = m.Encode("STAT", 0, "COUNT=16'h1234", "MODE=go_on")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12340002), raw)

	_, err = m.Encode("CTRL", 0, "COUNT=0x100000000")
	assert.ErrorIs(t, err, ErrValueRange)

	_, err = m.Encode("CTRL", 0, "MODE=FAST")
	assert.ErrorIs(t, err, ErrUnknownEnumValue)

	_, err = m.Encode("CTRL", 0, "COUNT=0x10000")
	assert.ErrorIs(t, err, ErrValueRange)

	_, err = m.Encode("CTRL", 0, "RESERVED_7_4=1")
	assert.ErrorIs(t, err, ErrReservedField)

	_, err = m.Encode("CTRL", 0, "NOPE=1")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = m.Encode("CTRL", 0, "EN")
	assert.Error(t, err)
}
