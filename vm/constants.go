package vm

// Register file layout. Sixteen signed 64-bit slots with fixed roles;
// indices 8-15 are the general purpose bank.
const (
	RI = iota // instruction pointer (byte offset into text)
	RP        // previous base pointer (caller's RB)
	RB        // base pointer of the current frame
	RS        // stack pointer (next free byte)
	RF        // flags
	RT        // scratch, clobbered by macro-expanded SET
	RC        // constants
	RA        // argument register
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
)

// NumRegisters is the size of the register file.
const NumRegisters = 16

// FrameHeaderSize is the size in bytes of a register-file snapshot at the
// start of every stack frame (16 slots * 8 bytes).
const FrameHeaderSize = NumRegisters * 8

// StackSize is the default size in bytes of the guest stack buffer.
const StackSize = 65535

// RegisterNames maps register index to its canonical source-level name.
var RegisterNames = [NumRegisters]string{
	RI: "RI", RP: "RP", RB: "RB", RS: "RS", RF: "RF", RT: "RT", RC: "RC", RA: "RA",
	R1: "R1", R2: "R2", R3: "R3", R4: "R4", R5: "R5", R6: "R6", R7: "R7", R8: "R8",
}

// registerIndex maps a source-level register name to its index, built from
// RegisterNames so the two can never drift apart.
var registerIndex map[string]int

func init() {
	registerIndex = make(map[string]int, NumRegisters)
	for i, name := range RegisterNames {
		registerIndex[name] = i
	}
}

// RegisterIndex looks up a register by its exact, case-sensitive source name.
func RegisterIndex(name string) (int, bool) {
	idx, ok := registerIndex[name]
	return idx, ok
}
