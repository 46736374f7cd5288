package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/jcorbin/gobf/internal/byteio"
)

type fmtBuf interface {
	io.Writer
	io.WriterTo
	Len() int
	Reset()
	WriteByte(c byte) error
	WriteString(s string) (n int, err error)
}

type vmDumper struct {
	vm  *VM
	out io.Writer

	// progWindow limits the program listing to instructions within that
	// distance of pc; zero lists the whole program.
	progWindow int

	// tapeWindow is how many cells either side of dp are always listed;
	// other cells are only listed when non-zero.
	tapeWindow uint

	addrWidth int
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  pc: %v\n", dump.vm.pc)
	fmt.Fprintf(dump.out, "  dp: %v\n", dump.vm.dp)
	fmt.Fprintf(dump.out, "  terminated: %v\n", dump.vm.terminated)

	dump.dumpProg()
	dump.dumpTape()
}

func (dump *vmDumper) dumpProg() {
	prog := dump.vm.prog
	fmt.Fprintf(dump.out, "# Program @%v\n", len(prog))

	lo, hi := 0, len(prog)
	if w := dump.progWindow; w > 0 {
		if lo = dump.vm.pc - w; lo < 0 {
			lo = 0
		}
		if hi = dump.vm.pc + w + 1; hi > len(prog) {
			hi = len(prog)
		}
	}
	width := len(strconv.Itoa(len(prog)))

	var buf lineBuffer
	if lo > 0 {
		fmt.Fprintf(&buf, "  ... %v earlier", lo)
		buf.WriteTo(dump.out)
	}
	for i := lo; i < hi; i++ {
		fmt.Fprintf(&buf, "  @%*v %v", width, i, prog[i])
		if i == dump.vm.pc {
			buf.WriteString(" <-- pc")
		}
		buf.WriteTo(dump.out)
	}
	if hi < len(prog) {
		fmt.Fprintf(&buf, "  ... %v later", len(prog)-hi)
		buf.WriteTo(dump.out)
	}
}

func (dump *vmDumper) dumpTape() {
	tape := &dump.vm.tape
	fmt.Fprintf(dump.out, "# Tape @%v\n", tape.Len())

	addrs := dump.tapeAddrs()
	if dump.addrWidth == 0 && len(addrs) > 0 {
		dump.addrWidth = len(strconv.Itoa(int(addrs[len(addrs)-1])))
	}

	var buf lineBuffer
	for i, addr := range addrs {
		if i > 0 && addrs[i-1]+1 < addr {
			buf.WriteString("  ...")
			buf.WriteTo(dump.out)
		}
		dump.formatCell(&buf, addr)
		buf.WriteTo(dump.out)
	}
}

// tapeAddrs returns, in order, every address within tapeWindow of dp along
// with any other address holding a non-zero value.
func (dump *vmDumper) tapeAddrs() []uint {
	tape := &dump.vm.tape
	dp := dump.vm.dp

	seen := make(map[uint]struct{})
	var addrs []uint
	add := func(addr uint) {
		if _, dup := seen[addr]; !dup {
			seen[addr] = struct{}{}
			addrs = append(addrs, addr)
		}
	}

	lo := uint(0)
	if dp > dump.tapeWindow {
		lo = dp - dump.tapeWindow
	}
	for addr := lo; addr <= dp+dump.tapeWindow && addr < tape.Len(); addr++ {
		add(addr)
	}
	tape.NonZero(func(addr uint, _ int8) { add(addr) })

	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

func (dump *vmDumper) formatCell(buf fmtBuf, addr uint) {
	val, err := dump.vm.tape.Load(addr)
	if err != nil {
		fmt.Fprintf(buf, "  @%*v %v", dump.addrWidth, addr, err)
		return
	}
	fmt.Fprintf(buf, "  @%*v %v %v", dump.addrWidth, addr, val, byteio.Quote(byte(val)))
	if addr == dump.vm.dp {
		buf.WriteString(" <-- dp")
	}
}

// lineBuffer is a bytes.Buffer that always writes out a complete line.
type lineBuffer struct {
	bytes []byte
}

func (lb *lineBuffer) Len() int { return len(lb.bytes) }
func (lb *lineBuffer) Reset()   { lb.bytes = lb.bytes[:0] }

func (lb *lineBuffer) Write(p []byte) (int, error) {
	lb.bytes = append(lb.bytes, p...)
	return len(p), nil
}

func (lb *lineBuffer) WriteByte(c byte) error {
	lb.bytes = append(lb.bytes, c)
	return nil
}

func (lb *lineBuffer) WriteString(s string) (int, error) {
	lb.bytes = append(lb.bytes, s...)
	return len(s), nil
}

// WriteTo writes the buffered line to w, adding a final newline if needed,
// and resets the buffer.
func (lb *lineBuffer) WriteTo(w io.Writer) (int64, error) {
	if n := len(lb.bytes); n > 0 && lb.bytes[n-1] != '\n' {
		lb.bytes = append(lb.bytes, '\n')
	}
	n, err := w.Write(lb.bytes)
	lb.Reset()
	return int64(n), err
}
