package mmio

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Memory is a Bus backed by a plain word slice. It stands in for a device in
// tests and holds register dumps read back from files.
type Memory struct {
	words []uint32
}

// NewMemory returns a zeroed block of size bytes, rounded up to whole words.
func NewMemory(size int) *Memory {
	return &Memory{words: make([]uint32, (size+3)/4)}
}

// LoadMemory reads a little-endian dump of a register block.
func LoadMemory(r io.Reader) (*Memory, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("dump of %d bytes is not a whole number of words", len(data))
	}

	m := NewMemory(len(data))
	for i := range m.words {
		m.words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return m, nil
}

func (m *Memory) Size() int {
	return len(m.words) * 4
}

func (m *Memory) Read32(offset uint32) (uint32, error) {
	if err := checkWord(offset, m.Size()); err != nil {
		return 0, err
	}
	return m.words[offset/4], nil
}

func (m *Memory) Write32(offset, value uint32) error {
	if err := checkWord(offset, m.Size()); err != nil {
		return err
	}
	m.words[offset/4] = value
	return nil
}
