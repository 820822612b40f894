// Package ipxact reads register descriptions from IP-XACT (IEEE 1685, SPIRIT
// 1.4/1.5) component files. Only the memory map subset is modelled.
package ipxact

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

var ErrNoAddressBlock = errors.New("address block not found")

// Element names are matched without their namespace so spirit: and ipxact:
// prefixed documents decode the same way.
type Component struct {
	Vendor     string             `xml:"vendor"`
	Library    string             `xml:"library"`
	Name       string             `xml:"name"`
	Version    string             `xml:"version"`
	MemoryMaps []MemoryMapElement `xml:"memoryMaps>memoryMap"`
}

type MemoryMapElement struct {
	Name          string                `xml:"name"`
	Description   string                `xml:"description"`
	AddressBlocks []AddressBlockElement `xml:"addressBlock"`
}

type AddressBlockElement struct {
	Name        string            `xml:"name"`
	Description string            `xml:"description"`
	BaseAddress Integer           `xml:"baseAddress"`
	Range       Integer           `xml:"range"`
	Width       Integer           `xml:"width"`
	Usage       string            `xml:"usage"`
	Access      string            `xml:"access"`
	Registers   []RegisterElement `xml:"register"`
}

type RegisterElement struct {
	Name          string         `xml:"name"`
	Description   string         `xml:"description"`
	AddressOffset Integer        `xml:"addressOffset"`
	Size          Integer        `xml:"size"`
	Access        string         `xml:"access"`
	Reset         ResetElement   `xml:"reset"`
	Fields        []FieldElement `xml:"field"`
}

type ResetElement struct {
	Value Integer `xml:"value"`
	Mask  Integer `xml:"mask"`
}

// FieldElement describes a bitfield. ReadAction is clear, set or modify when
// reading the field changes it.
type FieldElement struct {
	Name             string                   `xml:"name"`
	Description      string                   `xml:"description"`
	BitOffset        Integer                  `xml:"bitOffset"`
	BitWidth         Integer                  `xml:"bitWidth"`
	Access           string                   `xml:"access"`
	ReadAction       string                   `xml:"readAction"`
	EnumeratedValues []EnumeratedValueElement `xml:"enumeratedValues>enumeratedValue"`
}

type EnumeratedValueElement struct {
	Name        string  `xml:"name"`
	Description string  `xml:"description"`
	Value       Integer `xml:"value"`
}

// Decode reads a component description.
func Decode(r io.Reader) (*Component, error) {
	c := &Component{}
	if err := xml.NewDecoder(r).Decode(c); err != nil {
		return nil, fmt.Errorf("ipxact: %w", err)
	}
	return c, nil
}

// AddressBlock returns the first address block called name in any memory map.
// An empty name selects the first block of the component.
func (c *Component) AddressBlock(name string) (*AddressBlockElement, error) {
	for i := range c.MemoryMaps {
		for j := range c.MemoryMaps[i].AddressBlocks {
			block := &c.MemoryMaps[i].AddressBlocks[j]
			if name == "" || block.Name == name {
				return block, nil
			}
		}
	}
	if name == "" {
		return nil, fmt.Errorf("%w: %s has no address blocks", ErrNoAddressBlock, c.Name)
	}
	return nil, fmt.Errorf("%w: %s", ErrNoAddressBlock, name)
}
