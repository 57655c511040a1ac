package vm

// Machine is the fetch-decode-execute engine: a text segment, a stack
// buffer, and the currently active register frame.
type Machine struct {
	Text  []byte
	Stack []byte
	cur   frame

	MaxCycles int
	cycles    int
}

// NewMachine allocates a zeroed stack of stackSize bytes and sets up the
// initial bottom frame per the startup rule: RB = 128, RS = 128, RP = 0.
// entry is the byte offset resolved from the entry symbol (__start).
func NewMachine(text []byte, stackSize int, entry int64, maxCycles int) *Machine {
	m := &Machine{
		Text:      text,
		Stack:     make([]byte, stackSize),
		MaxCycles: maxCycles,
	}
	m.cur = bottomFrame(m.Stack)
	m.cur.Set(RI, entry)
	m.cur.Set(RB, int64(FrameHeaderSize))
	m.cur.Set(RS, int64(FrameHeaderSize))
	m.cur.Set(RP, 0)
	return m
}

// Registers returns a snapshot of the currently active frame's 16 slots.
func (m *Machine) Registers() [NumRegisters]int64 {
	var out [NumRegisters]int64
	for i := 0; i < NumRegisters; i++ {
		out[i] = m.cur.Get(i)
	}
	return out
}

// Run drives the fetch-decode-execute loop to completion: either clean
// termination (RET at the bottom frame) or a fault.
func (m *Machine) Run() error {
	for {
		if m.MaxCycles > 0 && m.cycles >= m.MaxCycles {
			return newFault(FaultCycleLimitExceeded, int(m.cur.Get(RI)))
		}
		m.cycles++
		halted, err := m.step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// Step executes exactly one instruction, returning (true, nil) on clean
// termination. Exported for the debugger's single-step mode.
func (m *Machine) Step() (bool, error) {
	return m.step()
}

// PeekDecode decodes the instruction RI currently points at without
// executing it, for the debugger's next-instruction display.
func (m *Machine) PeekDecode() (Decoded, bool) {
	ri := int(m.cur.Get(RI))
	if ri < 0 || ri+2 > len(m.Text) {
		return Decoded{}, false
	}
	return FromBytes(m.Text[ri], m.Text[ri+1]).Decode(), true
}

// step executes exactly one instruction, returning (true, nil) on clean
// termination.
func (m *Machine) step() (bool, error) {
	ri := int(m.cur.Get(RI))
	if ri < 0 || ri+2 > len(m.Text) {
		return false, newFault(FaultTextOverrun, ri)
	}
	inst := FromBytes(m.Text[ri], m.Text[ri+1])
	d := inst.Decode()

	switch d.Level {
	case Level0:
		if d.OpIndex == uint8(OpSET) {
			m.cur.Set(d.Rd, int64(d.Val8))
			m.advance()
			return false, nil
		}
		if err := m.execALU(d, ri); err != nil {
			return false, err
		}
		m.advance()
		return false, nil

	case Level1:
		switch Opcode(d.OpIndex) {
		case OpMOV:
			m.cur.Set(d.Rd, m.cur.Get(d.Rs1))
		case OpNOT:
			m.cur.Set(d.Rd, ^m.cur.Get(d.Rs1))
		case OpBR, OpLOAD, OpSAVE:
			return false, newFault(FaultUnimplemented, ri)
		default:
			return false, newFault(FaultUnknownOpcode, ri)
		}
		m.advance()
		return false, nil

	case Level2:
		if Opcode(d.OpIndex) != OpCALL {
			return false, newFault(FaultUnknownOpcode, ri)
		}
		return false, m.execCall(d)

	case Level3:
		if Opcode(d.OpIndex) != OpRET {
			return false, newFault(FaultUnknownOpcode, ri)
		}
		return m.execRet()
	}

	return false, newFault(FaultUnknownOpcode, ri)
}

func (m *Machine) advance() {
	m.cur.Set(RI, m.cur.Get(RI)+2)
}

func (m *Machine) execALU(d Decoded, ri int) error {
	a := m.cur.Get(d.Rs1)
	b := m.cur.Get(d.Rs2)
	var result int64
	switch Opcode(d.OpIndex) {
	case OpAND:
		result = a & b
	case OpOR:
		result = a | b
	case OpXOR:
		result = a ^ b
	case OpADD:
		result = a + b
	case OpSUB:
		result = a - b
	case OpMULT:
		result = a * b
	case OpDIV:
		if b == 0 {
			return newFault(FaultDivisionByZero, ri)
		}
		result = a / b
	case OpLSH:
		result = a << (uint64(b) & 63)
	case OpRSH:
		result = a >> (uint64(b) & 63)
	default:
		return newFault(FaultUnknownOpcode, ri)
	}
	m.cur.Set(d.Rd, result)
	return nil
}

// execCall pushes a new frame per spec: new_frame = RS, and the callee's
// register file is laid out directly in terms of the caller's. No RI
// advance happens on this cycle; the new frame's RI is already the callee's
// entry point.
func (m *Machine) execCall(d Decoded) error {
	target := m.cur.Get(d.Rd) // d.Rd carries the rs2 nibble: the register holding the callee address
	newBase := int(m.cur.Get(RS))
	if newBase+FrameHeaderSize > len(m.Stack) {
		return newFault(FaultStackOverflow, int(m.cur.Get(RI)))
	}
	callerRB := m.cur.Get(RB)

	next := frame{stack: m.Stack, base: newBase}
	next.Set(RI, target)
	next.Set(RP, callerRB)
	next.Set(RB, int64(newBase+FrameHeaderSize))
	next.Set(RS, int64(newBase+FrameHeaderSize))

	m.cur = next
	return nil
}

// execRet pops back to the caller's frame, or reports clean termination
// when the active frame is the bottom frame (RP == 0).
func (m *Machine) execRet() (bool, error) {
	rp := m.cur.Get(RP)
	if rp == 0 {
		return true, nil
	}
	m.cur = frameAt(m.Stack, rp)
	m.advance()
	return false, nil
}
