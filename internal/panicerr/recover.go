// Package panicerr turns abnormal goroutine exits into error values, so that a
// command can report a crashed run and pick its exit status.
package panicerr

import "errors"

// Outcome classifies how a function run under Recover ended.
type Outcome uint8

// Outcomes, from least to most abnormal.
const (
	Returned Outcome = iota // returned normally, maybe with an error
	Exited                  // called runtime.Goexit
	Panicked                // panicked
)

func (o Outcome) String() string {
	switch o {
	case Returned:
		return "returned"
	case Exited:
		return "exited"
	case Panicked:
		return "panicked"
	}
	return "unknown"
}

// Recover runs f in a new goroutine and waits for it. A panic or call to
// runtime.Goexit inside f becomes a non-nil error labeled with name.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExit(name, errch)
		defer recoverPanic(name, errch)
		errch <- f()
	}()
	return <-errch
}

// Classify returns how the run that produced err ended; any error not made by
// Recover, including nil, is Returned.
func Classify(err error) Outcome {
	var (
		pe panicError
		xe exitError
	)
	switch {
	case errors.As(err, &pe):
		return Panicked
	case errors.As(err, &xe):
		return Exited
	}
	return Returned
}
