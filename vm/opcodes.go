package vm

// Opcode is the nibble value decoded at a given cascade level. The same
// byte value means different things depending on which level it was read
// from, so Opcode is only meaningful paired with a Level.
type Opcode uint8

// Level identifies one of the four nibble positions a decode cascade can
// escape into. Level 0 is the first nibble of every instruction; level k
// is reached after k consecutive OTH sentinels.
type Level int

const (
	Level0 Level = iota
	Level1
	Level2
	Level3
)

// Arity returns how many register operands an opcode at this level carries.
// A level-k opcode consumes k nibbles for escape sentinels and leaves
// (3-k) nibbles for register operands.
func (l Level) Arity() int {
	return 3 - int(l)
}

// OTH is the reserved sentinel index (15) at every level, meaning "escape
// to the next decode level". Left untyped so it converts freely to both
// Opcode and uint8 nibble values.
const OTH = 15

// Level 0 opcodes (triadic: rd, rs1, rs2).
const (
	OpSET Opcode = iota
	OpAND
	OpOR
	OpXOR
	OpADD
	OpSUB
	OpMULT
	OpDIV
	OpLSH
	OpRSH
	_ // indices 10-14 are unassigned at level 0
	_
	_
	_
	_
	OpOTH0 Opcode = OTH
)

// Level 1 opcodes (dyadic: rs1, rs2), reached when the op nibble is OTH; the
// index sits in the rd nibble.
const (
	OpBR Opcode = iota
	OpNOT
	OpLOAD
	OpSAVE
	OpMOV
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	OpOTH1 Opcode = OTH
)

// Level 2 opcodes (monadic: rs2), reached when the op and rd nibbles are OTH;
// the index sits in the rs1 nibble.
const (
	OpCALL Opcode = iota
	OpOTH2 Opcode = OTH
)

// Level 3 opcodes (nullary), reached when the op, rd and rs1 nibbles are OTH;
// the index sits in the rs2 nibble.
const (
	OpRET Opcode = iota
)

type opcodeEntry struct {
	level Level
	index uint8
	name  string
}

// opcodeTable is the (offset, index, name) relation from the spec, used for
// both name->index and index->name lookups so the two directions can never
// drift apart (testable property: opcode round-trip).
var opcodeTable = []opcodeEntry{
	{Level0, uint8(OpSET), "SET"},
	{Level0, uint8(OpAND), "AND"},
	{Level0, uint8(OpOR), "OR"},
	{Level0, uint8(OpXOR), "XOR"},
	{Level0, uint8(OpADD), "ADD"},
	{Level0, uint8(OpSUB), "SUB"},
	{Level0, uint8(OpMULT), "MULT"},
	{Level0, uint8(OpDIV), "DIV"},
	{Level0, uint8(OpLSH), "LSH"},
	{Level0, uint8(OpRSH), "RSH"},
	{Level0, OTH, "OTH0"},

	{Level1, uint8(OpBR), "BR"},
	{Level1, uint8(OpNOT), "NOT"},
	{Level1, uint8(OpLOAD), "LOAD"},
	{Level1, uint8(OpSAVE), "SAVE"},
	{Level1, uint8(OpMOV), "MOV"},
	{Level1, OTH, "OTH1"},

	{Level2, uint8(OpCALL), "CALL"},
	{Level2, OTH, "OTH2"},

	{Level3, uint8(OpRET), "RET"},
}

// OpcodeIndex returns the nibble index for a mnemonic at the given level.
func OpcodeIndex(level Level, name string) (uint8, bool) {
	for _, e := range opcodeTable {
		if e.level == level && e.name == name {
			return e.index, true
		}
	}
	return 0, false
}

// OpcodeName returns the mnemonic for a nibble index at the given level.
func OpcodeName(level Level, index uint8) (string, bool) {
	for _, e := range opcodeTable {
		if e.level == level && e.index == index {
			return e.name, true
		}
	}
	return "", false
}

// IsTriadicOp reports whether name is one of the nine level-0 ALU mnemonics.
func IsTriadicOp(name string) bool {
	switch name {
	case "AND", "OR", "XOR", "ADD", "SUB", "MULT", "DIV", "LSH", "RSH":
		return true
	default:
		return false
	}
}

// IsDyadicOp reports whether name is one of the level-1 mnemonics.
func IsDyadicOp(name string) bool {
	switch name {
	case "BR", "NOT", "LOAD", "SAVE", "MOV":
		return true
	default:
		return false
	}
}
