// Package rvm16 ties the lexer, parser, code generator, emitter, and
// virtual machine into the single-process toolchain the CLI and debugger
// drive: source text in, executed bytecode and a final register file out.
package rvm16

import (
	"github.com/mpetrov/rvm16/codegen"
	"github.com/mpetrov/rvm16/config"
	"github.com/mpetrov/rvm16/icg"
	"github.com/mpetrov/rvm16/parser"
	"github.com/mpetrov/rvm16/vm"
)

// Program is the result of compiling source text: the linked text segment
// and the function symbol table resolved against it.
type Program struct {
	Text    []byte
	Symbols icg.SymbolTable
}

// Compile runs the lexer, parser, ICG, and emitter in strict sequence.
func Compile(source, filename string) (*Program, error) {
	commands, err := parser.Parse(source, filename)
	if err != nil {
		return nil, err
	}
	result, err := icg.Generate(commands)
	if err != nil {
		return nil, err
	}
	return &Program{
		Text:    codegen.Emit(result.Instructions),
		Symbols: result.Symbols,
	}, nil
}

// Run resolves the entry symbol and drives the program to completion,
// returning the final register file observed at the halting frame.
func Run(p *Program, cfg *config.Config) ([vm.NumRegisters]int64, error) {
	entry, ok := p.Symbols[cfg.Execution.EntrySymbol]
	if !ok {
		return [vm.NumRegisters]int64{}, &vm.Fault{Kind: vm.FaultMissingEntry, RI: 0}
	}
	m := vm.NewMachine(p.Text, cfg.Execution.StackSize, entry, cfg.Execution.MaxCycles)
	if err := m.Run(); err != nil {
		return [vm.NumRegisters]int64{}, err
	}
	return m.Registers(), nil
}
