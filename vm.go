package main

import (
	"github.com/jcorbin/gobf/internal/byteio"
	"github.com/jcorbin/gobf/internal/flushio"
	"github.com/jcorbin/gobf/internal/mem"
)

// VM executes a compiled Program against a fixed tape of signed byte cells.
//
// The machine has two registers: a program counter indexing the next
// instruction to run, and a data pointer indexing the current tape cell. It
// halts normally once the program counter runs off the end of the program.
type VM struct {
	prog Program
	pc   int  // program counter
	dp   uint // data pointer

	tape mem.Tape

	terminated bool

	in    byteio.Reader
	out   flushio.WriteFlusher
	logfn func(mess string, args ...interface{})
}

func (vm *VM) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}

// step executes the instruction under pc; pc is left untouched if it fails.
func (vm *VM) step() error {
	inst := vm.prog[vm.pc]
	if vm.logfn != nil {
		cell, _ := vm.tape.Load(vm.dp)
		vm.logf("@%v %v dp=%v cell=%v", vm.pc, inst, vm.dp, cell)
	}

	switch inst.Op {
	case OpMoveRight:
		// the tape never grows, so there is nothing to move onto past its end
		if err := vm.tape.Check(vm.dp+1, "move"); err != nil {
			return vm.fault(inst, ErrPointerOverflow, err)
		}
		vm.dp++

	case OpMoveLeft:
		if vm.dp == 0 {
			return vm.fault(inst, ErrPointerUnderflow, nil)
		}
		vm.dp--

	case OpIncrement:
		if _, err := vm.tape.Add(vm.dp, 1); err != nil {
			return vm.fault(inst, ErrPointerOverflow, err)
		}

	case OpDecrement:
		if _, err := vm.tape.Add(vm.dp, -1); err != nil {
			return vm.fault(inst, ErrPointerOverflow, err)
		}

	case OpOutput:
		cell, err := vm.tape.Load(vm.dp)
		if err != nil {
			return vm.fault(inst, ErrPointerOverflow, err)
		}
		if err := vm.out.WriteByte(byte(cell)); err != nil {
			return vm.fault(inst, ErrOutputFailed, err)
		}

	case OpInput:
		// prompts must be visible before blocking on input
		if err := vm.out.Flush(); err != nil {
			return vm.fault(inst, ErrOutputFailed, err)
		}
		b, err := vm.in.ReadByte()
		if err != nil {
			return vm.fault(inst, ErrInputFailed, err)
		}
		if err := vm.tape.Stor(vm.dp, int8(b)); err != nil {
			return vm.fault(inst, ErrPointerOverflow, err)
		}

	case OpLoopOpen, OpLoopClose:
		cell, err := vm.tape.Load(vm.dp)
		if err != nil {
			return vm.fault(inst, ErrPointerOverflow, err)
		}
		if (cell == 0) == (inst.Op == OpLoopOpen) {
			vm.pc = inst.Target + 1
			return nil
		}
	}

	vm.pc++
	return nil
}

func (vm *VM) fault(inst Instruction, kind, err error) error {
	re := &RuntimeError{
		PC:   vm.pc,
		DP:   vm.dp,
		Inst: &inst,
		Kind: kind,
		Err:  err,
	}
	vm.logf("fault: %v", re)
	return re
}

// flush writes out any buffered output, failing with ErrOutputFailed.
func (vm *VM) flush() error {
	err := vm.out.Flush()
	if err == nil {
		return nil
	}
	re := &RuntimeError{
		PC:   vm.pc,
		DP:   vm.dp,
		Kind: ErrOutputFailed,
		Err:  err,
	}
	vm.logf("fault: %v", re)
	return re
}
