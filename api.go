package main

import (
	"context"
	"io"
)

// New creates a VM ready to run prog from its first instruction, with the data
// pointer on the first tape cell and every cell zeroed.
func New(prog Program, opts ...VMOption) *VM {
	vm := VM{prog: prog}
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	vm.terminated = len(vm.prog) == 0
	return &vm
}

// Run steps the VM until it terminates or an instruction fails, returning the
// first failure. Output is flushed before returning.
//
// The context is only consulted between instructions: an input read blocks
// until its reader returns.
func (vm *VM) Run(ctx context.Context) (rerr error) {
	defer func() {
		if ferr := vm.flush(); rerr == nil && ferr != nil {
			rerr = ferr
		}
	}()
	done := ctx.Done()
	for !vm.terminated {
		select {
		case <-done:
			return ctx.Err()
		default:
		}
		if err := vm.Step(); err != nil {
			return err
		}
	}
	vm.logf("halt")
	return nil
}

// Step executes exactly one instruction. Stepping a terminated VM does
// nothing.
func (vm *VM) Step() error {
	if vm.terminated {
		return nil
	}
	if err := vm.step(); err != nil {
		return err
	}
	if vm.pc >= len(vm.prog) {
		vm.terminated = true
	}
	return nil
}

// Terminated returns true once the program counter has run past the last
// instruction.
func (vm *VM) Terminated() bool { return vm.terminated }

// PC returns the index of the next instruction to execute.
func (vm *VM) PC() int { return vm.pc }

// DP returns the index of the current tape cell.
func (vm *VM) DP() uint { return vm.dp }

// Program returns the program being run.
func (vm *VM) Program() Program { return vm.prog }

// Cell returns the value of a tape cell.
func (vm *VM) Cell(addr uint) (int8, error) { return vm.tape.Load(addr) }

// Close flushes any buffered output; a failed flush is an ErrOutputFailed
// RuntimeError.
func (vm *VM) Close() error { return vm.flush() }

func WithInput(r io.Reader) VMOption  { return withInput(r) }
func WithOutput(w io.Writer) VMOption { return withOutput(w) }
func WithTee(w io.Writer) VMOption    { return withTee(w) }

// WithTapeSize sets the number of tape cells; zero means the default of
// mem.DefaultTapeSize (30,000) cells.
func WithTapeSize(size uint) VMOption { return withTapeSize(size) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
