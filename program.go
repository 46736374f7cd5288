package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/gobf/internal/fileinput"
)

// Op names one of the eight commands.
type Op uint8

// The eight commands, in the order the language is usually documented.
const (
	OpMoveRight Op = iota // >  move the data pointer right
	OpMoveLeft            // <  move the data pointer left
	OpIncrement           // +  increment the current cell
	OpDecrement           // -  decrement the current cell
	OpOutput              // .  write the current cell as a byte
	OpInput               // ,  read a byte into the current cell
	OpLoopOpen            // [  jump past the matching ] if the cell is zero
	OpLoopClose           // ]  jump back past the matching [ unless the cell is zero
	opMax
)

var opChars = [opMax]byte{'>', '<', '+', '-', '.', ',', '[', ']'}

func (op Op) String() string {
	if op < opMax {
		return string(opChars[op])
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

func opFor(r rune) (Op, bool) {
	switch r {
	case '>':
		return OpMoveRight, true
	case '<':
		return OpMoveLeft, true
	case '+':
		return OpIncrement, true
	case '-':
		return OpDecrement, true
	case '.':
		return OpOutput, true
	case ',':
		return OpInput, true
	case '[':
		return OpLoopOpen, true
	case ']':
		return OpLoopClose, true
	}
	return 0, false
}

// Instruction is a single compiled command. Target is only meaningful for
// loop instructions: an open targets its matching close, and a close targets
// its matching open.
type Instruction struct {
	Op     Op
	Target int
}

func (in Instruction) String() string {
	switch in.Op {
	case OpLoopOpen, OpLoopClose:
		return fmt.Sprintf("%v->%v", in.Op, in.Target)
	}
	return in.Op.String()
}

// Program is a compiled instruction sequence, with every loop pair resolved.
// Instruction indices do not correspond to source offsets, since comment
// characters never become instructions.
type Program []Instruction

// String renders the program back to source form, without comments.
func (prog Program) String() string {
	var sb strings.Builder
	sb.Grow(len(prog))
	for _, in := range prog {
		sb.WriteByte(opChars[in.Op])
	}
	return sb.String()
}

// Compile translates source text into a Program.
// Returns a *BracketError if any [ or ] is unmatched.
func Compile(src string) (Program, error) {
	return CompileFrom(strings.NewReader(src))
}

// CompileFrom reads and compiles source text from r.
// Bracket errors carry the offending bracket's location; if r has a Name
// method, like os.File does, that name is included.
func CompileFrom(r io.Reader) (Program, error) {
	in := fileinput.Input{Queue: []io.Reader{r}}
	return compile(&in)
}

func compile(in *fileinput.Input) (prog Program, _ error) {
	type pending struct {
		index int
		loc   fileinput.Location
	}
	var opens []pending

	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		op, isCommand := opFor(r)
		if !isCommand {
			continue
		}

		switch op {
		case OpLoopOpen:
			opens = append(opens, pending{len(prog), in.Last})
			prog = append(prog, Instruction{Op: OpLoopOpen})

		case OpLoopClose:
			i := len(opens) - 1
			if i < 0 {
				return nil, &BracketError{Loc: in.Last, Close: true}
			}
			open := opens[i]
			opens = opens[:i]
			prog[open.index].Target = len(prog)
			prog = append(prog, Instruction{Op: OpLoopClose, Target: open.index})

		default:
			prog = append(prog, Instruction{Op: op})
		}
	}

	if i := len(opens) - 1; i >= 0 {
		return nil, &BracketError{Loc: opens[i].loc}
	}
	return prog, nil
}
