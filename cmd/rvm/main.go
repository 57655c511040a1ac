// Command rvm compiles and runs rvm16 assembly source files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mpetrov/rvm16"
	"github.com/mpetrov/rvm16/config"
	"github.com/mpetrov/rvm16/debugger"
	"github.com/mpetrov/rvm16/loader"
	"github.com/mpetrov/rvm16/vm"
)

var Version = "dev"

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		debugMode   = flag.Bool("debug", false, "drop into the TUI debugger instead of running to completion")
		stackSize   = flag.Int("stack-size", 0, "override the configured stack size in bytes")
		entry       = flag.String("entry", "", "override the configured entry symbol")
		configPath  = flag.String("config", "", "path to a TOML config file")
		verbose     = flag.Bool("verbose", false, "dump the text segment before running")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("rvm %s\n", Version)
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: rvm [flags] source.asm [more.asm ...]")
		os.Exit(2)
	}

	path := *configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fatal(err)
	}
	if *stackSize > 0 {
		cfg.Execution.StackSize = *stackSize
	}
	if *entry != "" {
		cfg.Execution.EntrySymbol = *entry
	}

	source, err := loader.LoadSources(flag.Args())
	if err != nil {
		fatal(err)
	}

	prog, err := rvm16.Compile(source, flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	if *verbose {
		fmt.Println(vm.DumpText(prog.Text))
	}

	if *debugMode {
		runDebugger(prog, cfg)
		return
	}

	regs, err := rvm16.Run(prog, cfg)
	if err != nil {
		fatal(err)
	}

	for i, name := range vm.RegisterNames {
		fmt.Printf("%-3s = %d\n", name, regs[i])
	}
}

func runDebugger(prog *rvm16.Program, cfg *config.Config) {
	entry, ok := prog.Symbols[cfg.Execution.EntrySymbol]
	if !ok {
		fatal(&vm.Fault{Kind: vm.FaultMissingEntry})
	}
	m := vm.NewMachine(prog.Text, cfg.Execution.StackSize, entry, cfg.Execution.MaxCycles)
	d := debugger.NewDebugger(m, prog.Symbols, cfg.Debugger.HistorySize)
	tui := debugger.NewTUI(d)
	if err := tui.Run(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "rvm:", err)
	os.Exit(1)
}
