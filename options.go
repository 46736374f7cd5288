package main

import (
	"bytes"
	"io"

	"github.com/jcorbin/gobf/internal/byteio"
	"github.com/jcorbin/gobf/internal/flushio"
)

type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, applied in order.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

var defaultOptions = VMOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type tapeSizeOption uint

func withInput(r io.Reader) inputOption     { return inputOption{r} }
func withOutput(w io.Writer) outputOption   { return outputOption{w} }
func withTee(w io.Writer) teeOption         { return teeOption{w} }
func withTapeSize(size uint) tapeSizeOption { return tapeSizeOption(size) }

func (i inputOption) apply(vm *VM) {
	vm.in = byteio.NewReader(i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (size tapeSizeOption) apply(vm *VM) {
	vm.tape.Size = uint(size)
}
