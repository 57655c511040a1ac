package debugger

import (
	"github.com/mpetrov/rvm16/vm"
)

// Debugger wraps a Machine with breakpoints and a scrollback history,
// driving it one instruction at a time.
type Debugger struct {
	Machine     *vm.Machine
	Symbols     map[string]int64
	Breakpoints *BreakpointManager
	History     *History
	Running     bool
	Halted      bool
	LastErr     error
}

// NewDebugger wraps machine and keeps the function symbol table alongside
// it. The symbol table is stored only; no view maps addresses back to names.
func NewDebugger(machine *vm.Machine, symbols map[string]int64, historySize int) *Debugger {
	return &Debugger{
		Machine:     machine,
		Symbols:     symbols,
		Breakpoints: NewBreakpointManager(),
		History:     NewHistory(historySize),
	}
}

// StepOnce advances the machine by exactly one instruction, recording it in
// history. Returns true once the machine halts cleanly.
func (d *Debugger) StepOnce() (bool, error) {
	if d.Halted {
		return true, d.LastErr
	}
	dec, ok := d.Machine.PeekDecode()
	regsBefore := d.Machine.Registers()
	ri := regsBefore[vm.RI]

	halted, err := d.Machine.Step()
	if err != nil {
		d.Halted = true
		d.LastErr = err
		return true, err
	}
	if ok {
		d.History.Record(StepRecord{RI: ri, Regs: d.Machine.Registers(), Level: int(dec.Level)})
	}
	if halted {
		d.Halted = true
	}
	return halted, nil
}

// RunToBreakpointOrHalt single-steps until a breakpoint is hit, the machine
// halts, or a fault occurs.
func (d *Debugger) RunToBreakpointOrHalt() (bool, error) {
	for {
		regs := d.Machine.Registers()
		if d.Breakpoints.Hit(regs[vm.RI]) {
			return false, nil
		}
		halted, err := d.StepOnce()
		if err != nil || halted {
			return halted, err
		}
	}
}
