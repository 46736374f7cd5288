package panicerr

import "fmt"

func recoverExit(name string, errch chan<- error) {
	select {
	case errch <- exitError(name):
	default:
		// f returned or panicked, either of which already sent
	}
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// IsExit returns true if err indicates a recovered runtime.Goexit.
func IsExit(err error) bool { return Classify(err) == Exited }
