package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jcorbin/gobf/internal/fileinput"
)

// Error kinds; match them with errors.Is.
var (
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
	ErrPointerUnderflow   = errors.New("data pointer underflow")
	ErrPointerOverflow    = errors.New("data pointer overflow")
	ErrInputFailed        = errors.New("input failed")
	ErrOutputFailed       = errors.New("output failed")
)

// BracketError reports the location of an unmatched bracket.
type BracketError struct {
	Loc   fileinput.Location
	Close bool // true for a ] without a preceding [, false for an unclosed [
}

func (be *BracketError) Error() string {
	if be.Close {
		return fmt.Sprintf("%v: %v: unmatched ]", be.Loc, ErrUnbalancedBrackets)
	}
	return fmt.Sprintf("%v: %v: unclosed [", be.Loc, ErrUnbalancedBrackets)
}

func (be *BracketError) Unwrap() error { return ErrUnbalancedBrackets }

// RuntimeError reports a failure along with the machine registers at the time
// of failure.
type RuntimeError struct {
	PC   int
	DP   uint
	Inst *Instruction // nil when no instruction failed, e.g. a final output flush
	Kind error        // one of the Err* kinds
	Err  error        // any underlying cause, like an io error
}

func (re *RuntimeError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "@%v", re.PC)
	if re.Inst != nil {
		fmt.Fprintf(&sb, " %v", *re.Inst)
	}
	fmt.Fprintf(&sb, " dp=%v: %v", re.DP, re.Kind)
	if re.Err != nil {
		fmt.Fprintf(&sb, ": %v", re.Err)
	}
	return sb.String()
}

func (re *RuntimeError) Unwrap() []error {
	if re.Err == nil {
		return []error{re.Kind}
	}
	return []error{re.Kind, re.Err}
}
