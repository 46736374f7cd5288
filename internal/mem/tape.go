package mem

import "fmt"

// DefaultTapeSize is the classic tape length of 30,000 cells.
const DefaultTapeSize = 30000

// Tape implements a fixed length memory of signed byte cells.
// The zero value is ready to use, and has DefaultTapeSize cells once first
// touched; the size may be changed by setting Size before any store.
type Tape struct {
	// Size specifies the number of cells; any address at or past it is out of
	// bounds. Zero means DefaultTapeSize.
	Size uint

	cells []int8
}

// LimitError indicates that a memory operation, like load or store, addressed
// a cell outside of the tape.
type LimitError struct {
	Addr uint
	Op   string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("tape limit exceeded by %v @%v", lim.Op, lim.Addr)
}

// Len returns the number of addressable cells.
func (m *Tape) Len() uint {
	if m.Size == 0 {
		return DefaultTapeSize
	}
	return m.Size
}

// Check returns a LimitError if addr is not a valid cell address.
func (m *Tape) Check(addr uint, op string) error {
	if addr >= m.Len() {
		return LimitError{addr, op}
	}
	return nil
}

// Load returns a single cell value from the given address.
func (m *Tape) Load(addr uint) (int8, error) {
	if err := m.Check(addr, "load"); err != nil {
		return 0, err
	}
	if m.cells == nil {
		return 0, nil
	}
	return m.cells[addr], nil
}

// LoadInto reads len(buf) cells starting at addr.
// Returns an error if the range leaves the tape; no partial load is done.
func (m *Tape) LoadInto(addr uint, buf []int8) error {
	if len(buf) == 0 {
		return nil
	}
	if err := m.Check(addr+uint(len(buf))-1, "load"); err != nil {
		return err
	}
	if m.cells == nil {
		for i := range buf {
			buf[i] = 0
		}
		return nil
	}
	copy(buf, m.cells[addr:])
	return nil
}

// Stor stores any values at addr.
// Returns an error if the range leaves the tape; no partial store is done.
func (m *Tape) Stor(addr uint, values ...int8) error {
	if len(values) == 0 {
		return nil
	}
	if err := m.Check(addr+uint(len(values))-1, "stor"); err != nil {
		return err
	}
	if m.cells == nil {
		m.cells = make([]int8, m.Len())
	}
	copy(m.cells[addr:], values)
	return nil
}

// Add adds delta to the cell at addr, wrapping at the int8 boundary, and
// returns the new value.
func (m *Tape) Add(addr uint, delta int8) (int8, error) {
	val, err := m.Load(addr)
	if err != nil {
		return 0, err
	}
	val += delta
	return val, m.Stor(addr, val)
}

// NonZero calls f for every cell holding a non-zero value, in address order.
func (m *Tape) NonZero(f func(addr uint, val int8)) {
	for i, val := range m.cells {
		if val != 0 {
			f(uint(i), val)
		}
	}
}
