package codegen

import "github.com/mpetrov/rvm16/vm"

// Emit linearizes an instruction vector into the little-endian text
// segment. The result is immutable once returned.
func Emit(instructions []vm.Instruction) []byte {
	out := make([]byte, 0, len(instructions)*2)
	for _, inst := range instructions {
		b := inst.Bytes()
		out = append(out, b[0], b[1])
	}
	return out
}
