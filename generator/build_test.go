package generator

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omibyte.io/ctucanfd/ipxact"
	"omibyte.io/ctucanfd/regmap"
	"omibyte.io/ctucanfd/regs"
)

func loadBlock(t *testing.T) *ipxact.AddressBlockElement {
	t.Helper()

	f, err := os.Open("../regs/ctu_can_fd.xml")
	require.NoError(t, err)
	defer f.Close()

	c, err := ipxact.Decode(f)
	require.NoError(t, err)
	block, err := c.AddressBlock("CAN_Registers")
	require.NoError(t, err)
	return block
}

func TestBuildMatchesShippedMap(t *testing.T) {
	m, err := Build(loadBlock(t))
	require.NoError(t, err)

	if diff := cmp.Diff(&regs.Map, m); diff != "" {
		t.Errorf("built map differs from regs.Map (-want +got):\n%s", diff)
	}
}

func TestBuildPacksRegisters(t *testing.T) {
	m, err := Build(loadBlock(t))
	require.NoError(t, err)

	w, err := m.Lookup("ALC")
	require.NoError(t, err)
	assert.Equal(t, "ERR_CAPT_ALC", w.Name)
	assert.Equal(t, []string{"ERR_CAPT", "ALC"}, w.Registers)

	// ERR_CAPT and ALC are both 8 bits wide, the top half belongs to neither
	top, ok := w.Field("RESERVED_31_16")
	require.True(t, ok)
	assert.True(t, top.Reserved)
	assert.Empty(t, top.Register)

	r, ok := m.Register("RX_DATA")
	require.True(t, ok)
	assert.True(t, r.ReadEffect)
	r, _ = m.Register("RX_STATUS")
	assert.False(t, r.ReadEffect)

	// Registers without fields only have an address
	_, ok = m.Register("TXTB1_DATA_20")
	assert.True(t, ok)
	_, err = m.Lookup("TXTB1_DATA_20")
	assert.ErrorIs(t, err, regmap.ErrUnknownWord)
}

func block(registers ...ipxact.RegisterElement) *ipxact.AddressBlockElement {
	return &ipxact.AddressBlockElement{Name: "test", Width: 32, Access: "read-write", Registers: registers}
}

func TestBuildReservedNames(t *testing.T) {
	m, err := Build(block(
		ipxact.RegisterElement{Name: "ctrl", AddressOffset: 0x1, Size: 8, Fields: []ipxact.FieldElement{
			{Name: "en", BitOffset: 1, BitWidth: 1},
			{Name: "div", BitOffset: 4, BitWidth: 3},
		}},
	))
	require.NoError(t, err)
	require.Len(t, m.Words, 1)

	w := m.Words[0]
	assert.Equal(t, "CTRL", w.Name)
	assert.Equal(t, uint32(0), w.Offset)

	var names []string
	for _, f := range w.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"RESERVED_7_0", "RESERVED_8", "EN", "RESERVED_11_10", "DIV", "RESERVED_15", "RESERVED_31_16"}, names)

	// The gap below the register has no owner, the gaps inside it do
	assert.Empty(t, w.Fields[0].Register)
	assert.Equal(t, "CTRL", w.Fields[1].Register)
	assert.Equal(t, uint8(12), w.Fields[4].Shift)
	assert.Empty(t, w.Fields[6].Register)
}

func TestBuildSharesIdenticalEnums(t *testing.T) {
	values := []ipxact.EnumeratedValueElement{{Name: "off", Value: 0}, {Name: "on", Value: 1}}
	m, err := Build(block(
		ipxact.RegisterElement{Name: "A", AddressOffset: 0x0, Fields: []ipxact.FieldElement{
			{Name: "X", BitOffset: 0, BitWidth: 1, EnumeratedValues: values},
			{Name: "Y", BitOffset: 1, BitWidth: 2, EnumeratedValues: values},
			{Name: "Z", BitOffset: 3, BitWidth: 2, EnumeratedValues: []ipxact.EnumeratedValueElement{
				{Name: "low", Value: 0}, {Name: "zero", Value: 0}, {Name: "high", Value: 3},
			}},
		}},
	))
	require.NoError(t, err)
	require.Len(t, m.Enums, 2)

	w := m.Words[0]
	assert.Equal(t, "A_X", w.Fields[0].Enum)
	assert.Equal(t, "A_X", w.Fields[1].Enum)
	assert.Equal(t, "A_Z", w.Fields[2].Enum)
	assert.Equal(t, []string{"LOW", "ZERO"}, m.Enums[1].Names(0))
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		block *ipxact.AddressBlockElement
		msg   string
	}{
		{
			"field too wide",
			block(ipxact.RegisterElement{Name: "A", Size: 8, Fields: []ipxact.FieldElement{{Name: "F", BitOffset: 4, BitWidth: 8}}}),
			"does not fit a 8-bit register",
		},
		{
			"empty field",
			block(ipxact.RegisterElement{Name: "A", Fields: []ipxact.FieldElement{{Name: "F"}}}),
			"does not fit",
		},
		{
			"overlap",
			block(ipxact.RegisterElement{Name: "A", Fields: []ipxact.FieldElement{
				{Name: "F", BitOffset: 0, BitWidth: 4},
				{Name: "G", BitOffset: 2, BitWidth: 4},
			}}),
			"A.G overlaps another field",
		},
		{
			"enum too wide",
			block(ipxact.RegisterElement{Name: "A", Fields: []ipxact.FieldElement{
				{Name: "F", BitWidth: 1, EnumeratedValues: []ipxact.EnumeratedValueElement{{Name: "TWO", Value: 2}}},
			}}),
			"TWO=0x2 does not fit 1-bit field F",
		},
		{
			"enum value clash",
			block(ipxact.RegisterElement{Name: "A", Fields: []ipxact.FieldElement{
				{Name: "X", BitWidth: 1, EnumeratedValues: []ipxact.EnumeratedValueElement{{Name: "off", Value: 0}, {Name: "on", Value: 1}}},
				{Name: "Y", BitOffset: 1, BitWidth: 2, EnumeratedValues: []ipxact.EnumeratedValueElement{{Name: "off", Value: 0}, {Name: "slow", Value: 1}}},
			}}),
			"value of A_Y OFF collides with value of A_X OFF",
		},
		{
			"register named like an enum value",
			block(
				ipxact.RegisterElement{Name: "A", Fields: []ipxact.FieldElement{
					{Name: "X", BitWidth: 1, EnumeratedValues: []ipxact.EnumeratedValueElement{{Name: "idle", Value: 0}}},
				}},
				ipxact.RegisterElement{Name: "IDLE", AddressOffset: 0x4},
			),
			"value of A_X IDLE collides with register IDLE",
		},
		{
			"not an identifier",
			block(ipxact.RegisterElement{Name: "rx-data", Fields: []ipxact.FieldElement{{Name: "F", BitWidth: 1}}}),
			`register "RX-DATA" is not a Go identifier`,
		},
		{
			"shared offset",
			block(
				ipxact.RegisterElement{Name: "A", Size: 8, Fields: []ipxact.FieldElement{{Name: "F", BitWidth: 1}}},
				ipxact.RegisterElement{Name: "B", Size: 8, Fields: []ipxact.FieldElement{{Name: "G", BitOffset: 4, BitWidth: 1}}},
			),
			"share offset",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(tc.block)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDescription)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestBuildWideOffsets(t *testing.T) {
	m, err := Build(block(
		ipxact.RegisterElement{Name: "CTRL", AddressOffset: 0x0, Fields: []ipxact.FieldElement{{Name: "EN", BitWidth: 1}}},
		ipxact.RegisterElement{Name: "MEM", AddressOffset: 0x10000, Fields: []ipxact.FieldElement{{Name: "DATA", BitWidth: 32}}},
	))
	require.NoError(t, err)

	w, err := m.Lookup("MEM")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x10000), w.Offset)
}

func TestNormalizeAccess(t *testing.T) {
	assert.Equal(t, regmap.ReadOnly, normalizeAccess("read-only", regmap.ReadWrite))
	assert.Equal(t, regmap.WriteOnly, normalizeAccess("writeOnce", regmap.ReadWrite))
	assert.Equal(t, regmap.ReadWrite, normalizeAccess("read-writeOnce", regmap.ReadOnly))
	assert.Equal(t, regmap.ReadOnly, normalizeAccess("", regmap.ReadOnly))
}
