package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/mpetrov/rvm16/vm"
)

// TUI is the single-step text interface: decoded next instruction,
// register file, a stack window around RB/RS, breakpoints, and scrollback
// history.
type TUI struct {
	Debugger *Debugger

	App          *tview.Application
	Layout       *tview.Flex
	RegisterView *tview.TextView
	StackView    *tview.TextView
	HistoryView  *tview.TextView
	StatusView   *tview.TextView
	CommandInput *tview.InputField
}

// NewTUI builds the layout and wires key handling around an existing
// Debugger.
func NewTUI(d *Debugger) *TUI {
	t := &TUI{
		Debugger: d,
		App:      tview.NewApplication(),
	}
	t.initializeViews()
	t.buildLayout()
	t.refresh()
	return t
}

func (t *TUI) initializeViews() {
	t.RegisterView = tview.NewTextView().SetDynamicColors(true)
	t.RegisterView.SetBorder(true).SetTitle(" Registers ")

	t.StackView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.StackView.SetBorder(true).SetTitle(" Stack ")

	t.HistoryView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.HistoryView.SetBorder(true).SetTitle(" History / Breakpoints ")

	t.StatusView = tview.NewTextView().SetDynamicColors(true)
	t.StatusView.SetBorder(true).SetTitle(" Next Instruction ")

	t.CommandInput = tview.NewInputField().SetLabel("> ").SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command (step/continue/break N/quit) ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	top := tview.NewFlex().
		AddItem(t.RegisterView, 0, 1, false).
		AddItem(t.StackView, 0, 2, false)

	t.Layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.StatusView, 3, 0, false).
		AddItem(top, 0, 3, false).
		AddItem(t.HistoryView, 0, 2, false).
		AddItem(t.CommandInput, 3, 0, true)
}

// Run starts the tview event loop.
func (t *TUI) Run() error {
	return t.App.SetRoot(t.Layout, true).SetFocus(t.CommandInput).Run()
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := strings.TrimSpace(t.CommandInput.GetText())
	t.CommandInput.SetText("")

	switch {
	case cmd == "step" || cmd == "s":
		if _, err := t.Debugger.StepOnce(); err != nil {
			t.status(err.Error())
		}
	case cmd == "continue" || cmd == "c":
		if _, err := t.Debugger.RunToBreakpointOrHalt(); err != nil {
			t.status(err.Error())
		}
	case strings.HasPrefix(cmd, "break "):
		addr, err := strconv.ParseInt(strings.TrimSpace(cmd[len("break "):]), 0, 64)
		if err != nil {
			t.status("bad address: " + err.Error())
		} else {
			t.Debugger.Breakpoints.Add(addr)
		}
	case cmd == "quit" || cmd == "q":
		t.App.Stop()
		return
	}
	t.refresh()
}

func (t *TUI) status(msg string) {
	fmt.Fprintf(t.StatusView, "\n%s", msg)
}

func (t *TUI) refresh() {
	t.RegisterView.SetText(renderRegisters(t.Debugger.Machine.Registers()))
	t.StackView.SetText(stackWindow(t.Debugger.Machine))
	t.HistoryView.SetText(renderHistory(t.Debugger))
	t.StatusView.SetText(renderNextInstruction(t.Debugger.Machine))
}

func renderRegisters(regs [vm.NumRegisters]int64) string {
	var b strings.Builder
	for i, name := range vm.RegisterNames {
		fmt.Fprintf(&b, "%-3s = %d\n", name, regs[i])
	}
	return b.String()
}

func renderNextInstruction(m *vm.Machine) string {
	d, ok := m.PeekDecode()
	if !ok {
		return "(out of text bounds)"
	}
	return fmt.Sprintf("level=%d op=%d rd=%d rs1=%d rs2=%d val8=%d", d.Level, d.OpIndex, d.Rd, d.Rs1, d.Rs2, d.Val8)
}

func stackWindow(m *vm.Machine) string {
	regs := m.Registers()
	rb := int(regs[vm.RB])
	from := rb - vm.FrameHeaderSize
	to := int(regs[vm.RS])
	if to < from {
		to = from
	}
	return vm.DumpStack(m.Stack, from, to)
}

func renderHistory(d *Debugger) string {
	var b strings.Builder
	for _, bp := range d.Breakpoints.List() {
		fmt.Fprintf(&b, "bp #%d @ %d (hits=%d)\n", bp.ID, bp.Address, bp.HitCount)
	}
	b.WriteString("---\n")
	for _, rec := range d.History.Last(20) {
		fmt.Fprintf(&b, "RI=%-6d level=%d\n", rec.RI, rec.Level)
	}
	return b.String()
}
