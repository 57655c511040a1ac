package debugger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrov/rvm16/vm"
)

func enc(i vm.Instruction) []byte {
	b := i.Bytes()
	return []byte{b[0], b[1]}
}

func retText() []byte {
	idx, _ := vm.OpcodeIndex(vm.Level3, "RET")
	return enc(vm.EncodeNullary(idx))
}

func TestStepOnceAdvancesAndHalts(t *testing.T) {
	text := append(enc(vm.EncodeImmediate(vm.R1, 5)), retText()...)
	m := vm.NewMachine(text, vm.StackSize, 0, 0)
	d := NewDebugger(m, nil, 10)

	halted, err := d.StepOnce()
	require.NoError(t, err)
	assert.False(t, halted)
	assert.Equal(t, 1, d.History.Len())

	halted, err = d.StepOnce()
	require.NoError(t, err)
	assert.True(t, halted)
}

func TestRunToBreakpointStopsEarly(t *testing.T) {
	text := append(append(enc(vm.EncodeImmediate(vm.R1, 1)), enc(vm.EncodeImmediate(vm.R2, 2))...), retText()...)
	m := vm.NewMachine(text, vm.StackSize, 0, 0)
	d := NewDebugger(m, nil, 10)
	d.Breakpoints.Add(2) // the second SET

	halted, err := d.RunToBreakpointOrHalt()
	require.NoError(t, err)
	assert.False(t, halted)
	assert.Equal(t, int64(2), m.Registers()[vm.RI])
}
