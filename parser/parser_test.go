package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandRecords(t *testing.T) {
	src := "FUNCTION __start\n  SET R1 9 ; load nine\nRET\n"
	cmds, err := Parse(src, "test.asm")
	require.NoError(t, err)
	require.Len(t, cmds, 3)

	assert.Equal(t, "FUNCTION", cmds[0].Mnemonic)
	assert.Equal(t, []string{"__start"}, cmds[0].Operands)

	assert.Equal(t, "SET", cmds[1].Mnemonic)
	assert.Equal(t, []string{"R1", "9"}, cmds[1].Operands)

	assert.Equal(t, "RET", cmds[2].Mnemonic)
	assert.Empty(t, cmds[2].Operands)
}

func TestParseUnknownMnemonic(t *testing.T) {
	_, err := Parse("FROB R1 R2", "test.asm")
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrorUnknownMnemonic, perr.Kind)
}

func TestParseTruncatedCommand(t *testing.T) {
	_, err := Parse("SET R1", "test.asm")
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrorTruncatedCommand, perr.Kind)
}

func TestLexNegativeLiteral(t *testing.T) {
	cmds, err := Parse("SET R1 -1", "test.asm")
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, []string{"R1", "-1"}, cmds[0].Operands)
}

func TestLexCommentsAndWhitespaceDiscarded(t *testing.T) {
	a, err := Parse("RET", "a.asm")
	require.NoError(t, err)
	b, err := Parse("  ; just a comment\nRET   ; trailing\n", "b.asm")
	require.NoError(t, err)
	assert.Equal(t, a[0].Mnemonic, b[0].Mnemonic)
}
