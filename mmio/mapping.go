package mmio

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

type Mode int

const (
	ReadOnly Mode = iota
	ReadWrite
)

// Mapping is a Bus over a memory mapping of a device file, usually /dev/mem
// or a UIO device. Every access is a single aligned 32-bit load or store.
type Mapping struct {
	file *os.File
	raw  []byte
	mem  []byte
	mode Mode
}

// Open maps size bytes of path starting at base. The base does not need to be
// page aligned.
func Open(path string, base int64, size int, mode Mode) (*Mapping, error) {
	flags, prot := os.O_RDONLY, unix.PROT_READ
	if mode == ReadWrite {
		flags, prot = os.O_RDWR, unix.PROT_READ|unix.PROT_WRITE
	}

	f, err := os.OpenFile(path, flags|os.O_SYNC, 0)
	if err != nil {
		return nil, err
	}

	page := int64(unix.Getpagesize())
	aligned := base &^ (page - 1)
	delta := int(base - aligned)

	raw, err := unix.Mmap(int(f.Fd()), aligned, size+delta, prot, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s at %#x: %w", path, base, err)
	}

	return &Mapping{
		file: f,
		raw:  raw,
		mem:  raw[delta : delta+size],
		mode: mode,
	}, nil
}

func (m *Mapping) word(offset uint32) (*uint32, error) {
	if m.mem == nil {
		return nil, ErrClosed
	}
	if err := checkWord(offset, len(m.mem)); err != nil {
		return nil, err
	}
	return (*uint32)(unsafe.Pointer(&m.mem[offset])), nil
}

func (m *Mapping) Read32(offset uint32) (uint32, error) {
	p, err := m.word(offset)
	if err != nil {
		return 0, err
	}
	return atomic.LoadUint32(p), nil
}

func (m *Mapping) Write32(offset, value uint32) error {
	if m.mode != ReadWrite {
		return ErrReadOnly
	}
	p, err := m.word(offset)
	if err != nil {
		return err
	}
	atomic.StoreUint32(p, value)
	return nil
}

func (m *Mapping) Close() error {
	if m.mem == nil {
		return nil
	}
	err := unix.Munmap(m.raw)
	m.raw, m.mem = nil, nil
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	return err
}
