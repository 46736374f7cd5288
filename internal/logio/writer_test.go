package logio_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/jcorbin/gobf/internal/logio"
	"github.com/stretchr/testify/assert"
)

type lineLog []string

func (ll *lineLog) logf(mess string, args ...interface{}) {
	*ll = append(*ll, fmt.Sprintf(mess, args...))
}

func Test_Writer(t *testing.T) {
	var ll lineLog
	lw := &logio.Writer{Logf: ll.logf}

	io.WriteString(lw, "hello")
	assert.Empty(t, ll, "expected no partial line")

	io.WriteString(lw, " world\nsecond\nthi")
	assert.Equal(t, lineLog{"hello world", "second"}, ll)

	assert.NoError(t, lw.Close())
	assert.Equal(t, lineLog{"hello world", "second", "thi"}, ll, "expected close to flush partial line")
}

func Test_Writer_prefix(t *testing.T) {
	var ll lineLog
	lw := &logio.Writer{Logf: ll.logf, Prefix: "out: "}
	io.WriteString(lw, "a\n\nb\n")
	assert.Equal(t, lineLog{"out: a", "out: ", "out: b"}, ll)
}
