package logs_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/jcorbin/gobf/internal/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_fanout(t *testing.T) {
	var term, file bytes.Buffer
	logger := logs.New(logs.Options{Terminal: &term, File: &file})

	logger.Info("compiled", "instructions", 12)

	assert.Contains(t, term.String(), "level=INFO msg=compiled instructions=12")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(file.Bytes(), &rec), "expected a json record")
	assert.Equal(t, "compiled", rec["msg"])
	assert.Equal(t, float64(12), rec["instructions"])
}

func Test_New_level(t *testing.T) {
	var term bytes.Buffer
	level := new(slog.LevelVar)
	logger := logs.New(logs.Options{Level: level, Terminal: &term})
	logf := logs.Logf(logger)

	logf("@%v %v", 3, "+")
	assert.Empty(t, term.String(), "expected debug suppressed at info level")

	level.Set(slog.LevelDebug)
	logf("@%v %v", 3, "+")
	logf("plain")
	lines := strings.Split(strings.TrimSpace(term.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `level=DEBUG msg="@3 +"`)
	assert.Contains(t, lines[1], "msg=plain")
}
