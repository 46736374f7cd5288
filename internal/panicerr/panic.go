package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

func recoverPanic(name string, errch chan<- error) {
	e := recover()
	if e == nil {
		return
	}
	select {
	case errch <- panicError{name: name, value: e, stack: debug.Stack()}:
	default:
	}
}

type panicError struct {
	name  string
	value interface{}
	stack []byte
}

func (pe panicError) Error() string { return fmt.Sprint(pe) }

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name != "" {
		fmt.Fprintf(f, "%v ", pe.name)
	}
	fmt.Fprintf(f, "panicked: %v", pe.value)
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

// Unwrap returns the panic value when it was an error.
func (pe panicError) Unwrap() error {
	err, _ := pe.value.(error)
	return err
}

// IsPanic returns true if err indicates a recovered goroutine panic.
func IsPanic(err error) bool { return Classify(err) == Panicked }

// PanicStack returns the stack trace captured when err's panic was recovered,
// or "" if err did not come from a panic.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}

// PanicValue returns the value passed to panic, or nil if err did not come
// from a panic.
func PanicValue(err error) interface{} {
	var pe panicError
	if errors.As(err, &pe) {
		return pe.value
	}
	return nil
}
