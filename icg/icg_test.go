package icg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrov/rvm16/parser"
)

func must(t *testing.T, src string) []parser.Command {
	t.Helper()
	cmds, err := parser.Parse(src, "test.asm")
	require.NoError(t, err)
	return cmds
}

func TestGenerateFunctionSymbol(t *testing.T) {
	cmds := must(t, "FUNCTION __start\nSET R1 5\nRET\n")
	res, err := Generate(cmds)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Symbols["__start"])
	assert.NotEmpty(t, res.Instructions)
}

func TestGenerateDuplicateFunctionFails(t *testing.T) {
	cmds := must(t, "FUNCTION f\nRET\nFUNCTION f\nRET\n")
	_, err := Generate(cmds)
	require.Error(t, err)
	var ierr *Error
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, ErrorFunctionExists, ierr.Kind)
}

func TestGenerateAddressUnknownSymbol(t *testing.T) {
	cmds := must(t, "FUNCTION __start\nADDRESS RA nosuch\nRET\n")
	_, err := Generate(cmds)
	require.Error(t, err)
	var ierr *Error
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, ErrorUnknownSymbol, ierr.Kind)
}

func TestGenerateAddressResolvesForwardDeclaredFunction(t *testing.T) {
	cmds := must(t, "FUNCTION square\nMULT R2 R1 R1\nRET\nFUNCTION __start\nADDRESS RA square\nRET\n")
	res, err := Generate(cmds)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Symbols["square"])
}

func TestGenerateLabelUnsupported(t *testing.T) {
	cmds := must(t, "LABEL here\n")
	_, err := Generate(cmds)
	require.Error(t, err)
	var ierr *Error
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, ErrorUnsupported, ierr.Kind)
}

func TestGenerateUnknownRegister(t *testing.T) {
	cmds := must(t, "SET RX 5\n")
	_, err := Generate(cmds)
	require.Error(t, err)
	var ierr *Error
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, ErrorUnknownRegister, ierr.Kind)
}

func TestGenerateTriadicEncoding(t *testing.T) {
	cmds := must(t, "ADD R3 R1 R2\n")
	res, err := Generate(cmds)
	require.NoError(t, err)
	require.Len(t, res.Instructions, 1)
	d := res.Instructions[0].Decode()
	assert.Equal(t, uint8(4), d.OpIndex) // ADD is index 4 at level 0
}
