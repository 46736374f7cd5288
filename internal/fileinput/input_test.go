package fileinput_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/gobf/internal/fileinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedReader struct {
	io.Reader
	name   string
	closed bool
}

func (nr *namedReader) Name() string { return nr.name }
func (nr *namedReader) Close() error { nr.closed = true; return nil }

type errReader struct{ err error }

func (er errReader) Read(p []byte) (int, error) { return 0, er.err }

func Test_Input(t *testing.T) {
	a := &namedReader{Reader: strings.NewReader("ab\nc"), name: "a.bf"}
	b := &namedReader{Reader: strings.NewReader("d"), name: "b.bf"}
	in := fileinput.Input{Queue: []io.Reader{a, b}}

	type read struct {
		r   rune
		loc string
	}
	var reads []read
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		reads = append(reads, read{r, in.Last.String()})
	}

	assert.Equal(t, []read{
		{'a', "a.bf:1:1"},
		{'b', "a.bf:1:2"},
		{'\n', "a.bf:1:3"},
		{'c', "a.bf:2:1"},
		{'d', "b.bf:1:1"},
	}, reads)
	assert.True(t, a.closed, "expected first input closed")
	assert.True(t, b.closed, "expected second input closed")

	_, _, err := in.ReadRune()
	assert.Equal(t, io.EOF, err, "expected EOF to stick")
}

func Test_Input_unnamed(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{strings.NewReader("x")}}
	_, _, err := in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, "1:1", in.Last.String(), "expected an unnamed location")
}

func Test_Input_error(t *testing.T) {
	bang := errors.New("bang")
	in := fileinput.Input{Queue: []io.Reader{errReader{bang}}}
	_, _, err := in.ReadRune()
	assert.True(t, errors.Is(err, bang), "expected read error, got %v", err)
	assert.EqualError(t, err, "1:1: bang")
}
