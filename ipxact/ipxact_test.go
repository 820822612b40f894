package ipxact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in   string
		want Integer
	}{
		{"42", 42},
		{" 0x2a ", 42},
		{"0X2A", 42},
		{"8'h2a", 42},
		{"'h2A", 42},
		{"'d42", 42},
		{"6'b101010", 42},
		{"'o52", 42},
		{"32'hCAFE_0000", 0xcafe0000},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseInteger(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, in := range []string{"", "8'", "'x12", "0xzz", "-1"} {
		_, err := ParseInteger(in)
		assert.Error(t, err, in)
	}
}

const component = `<?xml version="1.0" encoding="UTF-8"?>
<ipxact:component xmlns:ipxact="http://www.accellera.org/XMLSchema/IPXACT/1685-2014">
  <ipxact:vendor>example.org</ipxact:vendor>
  <ipxact:name>uart</ipxact:name>
  <ipxact:memoryMaps>
    <ipxact:memoryMap>
      <ipxact:name>regs</ipxact:name>
      <ipxact:addressBlock>
        <ipxact:name>first</ipxact:name>
        <ipxact:baseAddress>'h0</ipxact:baseAddress>
        <ipxact:range>16</ipxact:range>
        <ipxact:width>32</ipxact:width>
      </ipxact:addressBlock>
      <ipxact:addressBlock>
        <ipxact:name>ctrl</ipxact:name>
        <ipxact:baseAddress>0x100</ipxact:baseAddress>
        <ipxact:range>16</ipxact:range>
        <ipxact:width>32</ipxact:width>
        <ipxact:access>read-write</ipxact:access>
        <ipxact:register>
          <ipxact:name>CTRL</ipxact:name>
          <ipxact:description>Control.</ipxact:description>
          <ipxact:addressOffset>0x4</ipxact:addressOffset>
          <ipxact:size>8</ipxact:size>
          <ipxact:reset>
            <ipxact:value>0x1</ipxact:value>
          </ipxact:reset>
          <ipxact:field>
            <ipxact:name>MODE</ipxact:name>
            <ipxact:bitOffset>1</ipxact:bitOffset>
            <ipxact:bitWidth>2</ipxact:bitWidth>
            <ipxact:readAction>clear</ipxact:readAction>
            <ipxact:enumeratedValues>
              <ipxact:enumeratedValue>
                <ipxact:name>IDLE</ipxact:name>
                <ipxact:value>2'b00</ipxact:value>
              </ipxact:enumeratedValue>
              <ipxact:enumeratedValue>
                <ipxact:name>RUN</ipxact:name>
                <ipxact:value>2'b01</ipxact:value>
              </ipxact:enumeratedValue>
            </ipxact:enumeratedValues>
          </ipxact:field>
        </ipxact:register>
      </ipxact:addressBlock>
    </ipxact:memoryMap>
  </ipxact:memoryMaps>
</ipxact:component>`

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(component))
	require.NoError(t, err)
	assert.Equal(t, "example.org", c.Vendor)
	assert.Equal(t, "uart", c.Name)
	require.Len(t, c.MemoryMaps, 1)
	require.Len(t, c.MemoryMaps[0].AddressBlocks, 2)

	block, err := c.AddressBlock("ctrl")
	require.NoError(t, err)
	assert.Equal(t, Integer(0x100), block.BaseAddress)
	assert.Equal(t, "read-write", block.Access)
	require.Len(t, block.Registers, 1)

	reg := block.Registers[0]
	assert.Equal(t, Integer(4), reg.AddressOffset)
	assert.Equal(t, Integer(8), reg.Size)
	assert.Equal(t, Integer(1), reg.Reset.Value)
	require.Len(t, reg.Fields, 1)
	assert.Equal(t, "clear", reg.Fields[0].ReadAction)
	require.Len(t, reg.Fields[0].EnumeratedValues, 2)
	assert.Equal(t, "RUN", reg.Fields[0].EnumeratedValues[1].Name)
	assert.Equal(t, Integer(1), reg.Fields[0].EnumeratedValues[1].Value)

	first, err := c.AddressBlock("")
	require.NoError(t, err)
	assert.Equal(t, "first", first.Name)

	_, err = c.AddressBlock("missing")
	assert.ErrorIs(t, err, ErrNoAddressBlock)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`<component><memoryMaps><memoryMap><addressBlock><range>0xqq</range></addressBlock></memoryMap></memoryMaps></component>`))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`<component>`))
	assert.Error(t, err)

	c, err := Decode(strings.NewReader(`<component><name>empty</name></component>`))
	require.NoError(t, err)
	_, err = c.AddressBlock("")
	assert.ErrorIs(t, err, ErrNoAddressBlock)
}
