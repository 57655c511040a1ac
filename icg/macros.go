package icg

import "github.com/mpetrov/rvm16/vm"

// macroSet expands a wide immediate load into a SET/LSH/OR sequence. It
// reconstructs value byte by byte (most significant first), so every
// intermediate SET of a raw byte must be read back as an unsigned 0..255
// quantity — sign-extending it would corrupt the OR-based accumulation.
// Clobbers RT only; identical values always produce identical sequences.
func macroSet(rd int, value int64) []vm.Instruction {
	var bytes [8]byte
	u := uint64(value)
	for i := 7; i >= 0; i-- {
		bytes[i] = byte(u)
		u >>= 8
	}

	start := 0
	for start < 8 && bytes[start] == 0 {
		start++
	}

	out := []vm.Instruction{vm.EncodeImmediate(rd, 0)}
	for _, b := range bytes[start:] {
		out = append(out,
			vm.EncodeImmediate(vm.RT, 8),
			vm.EncodeTriadic(vm.OpLSH, rd, rd, vm.RT),
			vm.EncodeImmediate(vm.RT, b),
			vm.EncodeTriadic(vm.OpOR, rd, rd, vm.RT),
		)
	}
	return out
}
