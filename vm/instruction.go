package vm

// Instruction is a single 16-bit bit-packed word. It has two interpretations
// that share the same layout of nibbles (high/low nibble of each byte):
//
//	triadic form cmd:     op | rd | rs1 | rs2   (four 4-bit fields)
//	immediate form cmd_set: op | rd | val8       (val8 is the whole 2nd byte)
//
// op occupies the low nibble of the first (low) byte, matching the
// little-endian byte order the emitter copies into the text segment.
type Instruction uint16

func nibble(b byte, hi bool) uint8 {
	if hi {
		return uint8(b>>4) & 0xF
	}
	return uint8(b) & 0xF
}

func packByte(lo, hi uint8) byte {
	return byte(lo&0xF) | byte(hi&0xF)<<4
}

// Bytes returns the little-endian 2-byte encoding of the instruction.
func (i Instruction) Bytes() [2]byte {
	return [2]byte{byte(i), byte(i >> 8)}
}

// FromBytes reconstructs an Instruction from its little-endian encoding.
func FromBytes(b0, b1 byte) Instruction {
	return Instruction(b0) | Instruction(b1)<<8
}

// EncodeImmediate builds the `SET rd, val8` word (level 0, op == SET).
func EncodeImmediate(rd int, val8 byte) Instruction {
	b0 := packByte(uint8(OpSET), uint8(rd))
	b1 := val8
	return FromBytes(b0, b1)
}

// EncodeTriadic builds a level-0 ALU word: op rd, rs1, rs2.
func EncodeTriadic(op Opcode, rd, rs1, rs2 int) Instruction {
	b0 := packByte(uint8(op), uint8(rd))
	b1 := packByte(uint8(rs1), uint8(rs2))
	return FromBytes(b0, b1)
}

// EncodeDyadic builds a level-1 word: op rd, rs (BR, NOT, LOAD, SAVE, MOV).
// The opcode index itself occupies the "rd" nibble; rd and rs are carried in
// the rs1/rs2 nibbles per the spec's dyadic encoding rule.
func EncodeDyadic(opIndex uint8, rd, rs int) Instruction {
	b0 := packByte(OTH, opIndex)
	b1 := packByte(uint8(rd), uint8(rs))
	return FromBytes(b0, b1)
}

// EncodeMonadic builds a level-2 word: op rd (CALL).
func EncodeMonadic(opIndex uint8, rd int) Instruction {
	b0 := packByte(OTH, OTH)
	b1 := packByte(opIndex, uint8(rd))
	return FromBytes(b0, b1)
}

// EncodeNullary builds a level-3 word (RET).
func EncodeNullary(opIndex uint8) Instruction {
	b0 := packByte(OTH, OTH)
	b1 := packByte(OTH, opIndex)
	return FromBytes(b0, b1)
}

// Decoded is the result of running the four-level nibble cascade over one
// instruction word. Only the fields relevant to Level are meaningful.
type Decoded struct {
	Level   Level
	OpIndex uint8
	Rd      int // valid at Level0 (plus Val8), Level1 and Level2 (CALL target)
	Rs1     int // valid at Level0 (triadic) and Level1 (Rs operand)
	Rs2     int // valid at Level0 (triadic)
	Val8    byte
}

// Decode runs the cascade, never inspecting more nibbles than the level
// requires (levels 0-3 consume 1-4 nibbles respectively).
func (i Instruction) Decode() Decoded {
	b := i.Bytes()
	op := nibble(b[0], false)
	rd := nibble(b[0], true)

	if op != OTH {
		// Level 0: either SET (immediate) or a triadic ALU op.
		rs1 := nibble(b[1], false)
		rs2 := nibble(b[1], true)
		return Decoded{
			Level:   Level0,
			OpIndex: op,
			Rd:      int(rd),
			Rs1:     int(rs1),
			Rs2:     int(rs2),
			Val8:    b[1],
		}
	}

	if rd != OTH {
		// Level 1: dyadic op. rd nibble is the opcode index; the register
		// operands live in the rs1/rs2 nibbles.
		rs1 := nibble(b[1], false)
		rs2 := nibble(b[1], true)
		return Decoded{Level: Level1, OpIndex: rd, Rd: int(rs1), Rs1: int(rs2)}
	}

	rs1 := nibble(b[1], false)
	if rs1 != OTH {
		// Level 2: monadic op (CALL). rs1 nibble is the opcode index.
		rs2 := nibble(b[1], true)
		return Decoded{Level: Level2, OpIndex: rs1, Rd: int(rs2)}
	}

	// Level 3: nullary op (RET). rs2 nibble is the opcode index.
	rs2 := nibble(b[1], true)
	return Decoded{Level: Level3, OpIndex: rs2}
}
