package main

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_generate(t *testing.T) {
	src := strings.Join([]string{
		"package main",
		"",
		"func (vmt vmTestCase) withProgram(src string) vmTestCase {",
		"\treturn vmt",
		"}",
		"",
		"func (vmt vmTestCase) expectPC(pc int) vmTestCase {",
		"\treturn vmt",
		"}",
		"",
		"func (vmt vmTestCase) expectCells(addr uint, values ...int8) vmTestCase {",
		"\treturn vmt",
		"}",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, generate(context.Background(), "vm_test.go", strings.NewReader(src), &out))

	assert.Equal(t, strings.Join([]string{
		"package main",
		"",
		"// @generated from vm_test.go",
		"",
		"func expectVMPC(pc int) func(vmTestCase) vmTestCase {",
		"\treturn func(vmt vmTestCase) vmTestCase {",
		"\t\treturn vmt.expectPC(pc)",
		"\t}",
		"}",
		"",
		"func expectVMCells(addr uint, values ...int8) func(vmTestCase) vmTestCase {",
		"\treturn func(vmt vmTestCase) vmTestCase {",
		"\t\treturn vmt.expectCells(addr, values...)",
		"\t}",
		"}",
		"",
		"",
	}, "\n"), out.String())
}
