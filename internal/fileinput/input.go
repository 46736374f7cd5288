package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Location names a rune position in an Input stream.
type Location struct {
	Name string
	Line int
	Col  int
}

func (loc Location) String() string {
	pos := strconv.Itoa(loc.Line) + ":" + strconv.Itoa(loc.Col)
	if loc.Name == "" {
		return pos
	}
	return loc.Name + ":" + pos
}

// Input implements sequential rune reading through a Queue of one or more
// input streams, tracking the Location of the last rune read.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader
	Last  Location
	next  Location
}

// ReadRune reads one rune from the current input stream, moving on to the
// next queued stream at the end of each one. Returns io.EOF only after the
// last stream has been exhausted.
func (in *Input) ReadRune() (rune, int, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return 0, 0, io.EOF
		}

		r, n, err := in.rr.ReadRune()
		if n > 0 {
			in.Last = in.next
			if r == '\n' {
				in.next.Line++
				in.next.Col = 1
			} else {
				in.next.Col++
			}
			return r, n, nil
		}

		if err == io.EOF {
			in.closeIn()
			continue
		}
		if err == nil {
			err = io.ErrNoProgress
		}
		return 0, 0, fmt.Errorf("%v: %w", in.next, err)
	}
}

func (in *Input) closeIn() {
	if cl, ok := in.rr.(io.Closer); ok {
		cl.Close()
	}
	in.rr = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.rr = runeReader(r)
	in.next = Location{Name: nameOf(r), Line: 1, Col: 1}
	return true
}

func runeReader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	return closingReader{bufio.NewReader(r), r}
}

type closingReader struct {
	*bufio.Reader
	src io.Reader
}

func (cr closingReader) Close() error {
	if cl, ok := cr.src.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return ""
}
