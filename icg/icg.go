package icg

import (
	"strconv"

	"github.com/mpetrov/rvm16/parser"
	"github.com/mpetrov/rvm16/vm"
)

// Result is the output of Generate: the instruction vector and the
// function symbol table used to resolve the entry point.
type Result struct {
	Instructions []vm.Instruction
	Symbols      SymbolTable
}

// Generate walks command records in order, appending instructions and
// maintaining the function symbol table. FUNCTION updates the table rather
// than emit; LABEL fails as unsupported; everything else lowers to one or
// more words.
func Generate(commands []parser.Command) (*Result, error) {
	res := &Result{Symbols: newSymbolTable()}

	for _, cmd := range commands {
		switch {
		case cmd.Mnemonic == "FUNCTION":
			name := cmd.Operands[0]
			if _, exists := res.Symbols[name]; exists {
				return nil, newError(cmd.Pos, ErrorFunctionExists, name)
			}
			res.Symbols[name] = int64(len(res.Instructions)) * 2

		case cmd.Mnemonic == "LABEL":
			return nil, newError(cmd.Pos, ErrorUnsupported, "LABEL")

		case cmd.Mnemonic == "ADDRESS":
			rd, err := register(cmd, cmd.Operands[0])
			if err != nil {
				return nil, err
			}
			name := cmd.Operands[1]
			offset, ok := res.Symbols[name]
			if !ok {
				return nil, newError(cmd.Pos, ErrorUnknownSymbol, name)
			}
			res.Instructions = append(res.Instructions, macroSet(rd, offset)...)

		case cmd.Mnemonic == "SET":
			rd, err := register(cmd, cmd.Operands[0])
			if err != nil {
				return nil, err
			}
			value, err := strconv.ParseInt(cmd.Operands[1], 0, 64)
			if err != nil {
				return nil, newError(cmd.Pos, ErrorUnknownOpcode, "malformed immediate: "+cmd.Operands[1])
			}
			res.Instructions = append(res.Instructions, macroSet(rd, value)...)

		case vm.IsTriadicOp(cmd.Mnemonic):
			idx, _ := vm.OpcodeIndex(vm.Level0, cmd.Mnemonic)
			rd, err := register(cmd, cmd.Operands[0])
			if err != nil {
				return nil, err
			}
			rs1, err := register(cmd, cmd.Operands[1])
			if err != nil {
				return nil, err
			}
			rs2, err := register(cmd, cmd.Operands[2])
			if err != nil {
				return nil, err
			}
			res.Instructions = append(res.Instructions, vm.EncodeTriadic(vm.Opcode(idx), rd, rs1, rs2))

		case vm.IsDyadicOp(cmd.Mnemonic):
			idx, _ := vm.OpcodeIndex(vm.Level1, cmd.Mnemonic)
			rd, err := register(cmd, cmd.Operands[0])
			if err != nil {
				return nil, err
			}
			rs, err := register(cmd, cmd.Operands[1])
			if err != nil {
				return nil, err
			}
			res.Instructions = append(res.Instructions, vm.EncodeDyadic(idx, rd, rs))

		case cmd.Mnemonic == "CALL":
			idx, _ := vm.OpcodeIndex(vm.Level2, "CALL")
			rd, err := register(cmd, cmd.Operands[0])
			if err != nil {
				return nil, err
			}
			res.Instructions = append(res.Instructions, vm.EncodeMonadic(idx, rd))

		case cmd.Mnemonic == "RET":
			idx, _ := vm.OpcodeIndex(vm.Level3, "RET")
			res.Instructions = append(res.Instructions, vm.EncodeNullary(idx))

		default:
			return nil, newError(cmd.Pos, ErrorUnknownOpcode, cmd.Mnemonic)
		}
	}

	return res, nil
}

func register(cmd parser.Command, name string) (int, error) {
	idx, ok := vm.RegisterIndex(name)
	if !ok {
		return 0, newError(cmd.Pos, ErrorUnknownRegister, name)
	}
	return idx, nil
}
