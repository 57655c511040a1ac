package rvm16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrov/rvm16/config"
	"github.com/mpetrov/rvm16/vm"
)

func run(t *testing.T, source string) ([vm.NumRegisters]int64, error) {
	t.Helper()
	prog, err := Compile(source, "scenario.asm")
	require.NoError(t, err)
	return Run(prog, config.DefaultConfig())
}

func TestScenarioImmediateLoad(t *testing.T) {
	regs, err := run(t, `
FUNCTION __start
  SET R1 72623859790382856
RET
`)
	require.NoError(t, err)
	assert.Equal(t, int64(0x0102030405060708), regs[vm.R1])
}

func TestScenarioArithmetic(t *testing.T) {
	regs, err := run(t, `
FUNCTION __start
  SET R1 10
  SET R2 3
  MULT R3 R1 R2
  SUB  R4 R1 R2
RET
`)
	require.NoError(t, err)
	assert.Equal(t, int64(30), regs[vm.R3])
	assert.Equal(t, int64(7), regs[vm.R4])
}

func TestScenarioCall(t *testing.T) {
	regs, err := run(t, `
FUNCTION square
  MULT R2 R1 R1
RET
FUNCTION __start
  SET R1 9
  ADDRESS RA square
  CALL RA
RET
`)
	require.NoError(t, err)
	assert.Equal(t, int64(9), regs[vm.R1])
}

func TestScenarioNestedCallFrameIsolation(t *testing.T) {
	regs, err := run(t, `
FUNCTION inner
  SET R1 7
RET
FUNCTION __start
  SET R1 42
  ADDRESS RA inner
  CALL RA
RET
`)
	require.NoError(t, err)
	assert.Equal(t, int64(42), regs[vm.R1])
}

func TestScenarioMovAndNot(t *testing.T) {
	regs, err := run(t, `
FUNCTION __start
  SET R1 5
  MOV R2 R1
  NOT R3 R1
RET
`)
	require.NoError(t, err)
	assert.Equal(t, int64(5), regs[vm.R2])
	assert.Equal(t, int64(^int64(5)), regs[vm.R3])
}

func TestScenarioMissingEntry(t *testing.T) {
	_, err := run(t, `
FUNCTION main
RET
`)
	require.Error(t, err)
	var f *vm.Fault
	require.ErrorAs(t, err, &f)
	assert.Equal(t, vm.FaultMissingEntry, f.Kind)
}
