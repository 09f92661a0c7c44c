// main.go - command-line entry point for the RV64I simulator
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"
)

const banner = "riviera-go — a RISC-V (RV64I) instruction-set simulator"

func main() {
	var (
		dump        string
		interactive bool
		memsize     int
	)
	flag.StringVar(&dump, "dump", "", "write the DRAM buffer to `path` after halt")
	flag.StringVar(&dump, "d", "", "shorthand for --dump")
	flag.BoolVar(&interactive, "interactive", false, "enter the interactive shell instead of free running")
	flag.BoolVar(&interactive, "i", false, "shorthand for --interactive")
	flag.IntVar(&memsize, "memsize", defaultDRAMSize, "DRAM size in bytes")
	flag.IntVar(&memsize, "m", defaultDRAMSize, "shorthand for --memsize")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: riviera-go [-d path] [-i] [-m bytes] <elf>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	printBanner()

	emu := NewEmulator(memsize)
	if err := emu.LoadProgram(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "[x] %v\n", err)
		os.Exit(1)
	}

	if interactive {
		emu.CPU().Trace = true
		NewShell(emu, os.Stdin, os.Stdout).Run()
	} else {
		count, elapsed, err := emu.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "[x] %v\n", err)
			os.Exit(1)
		}
		mips := (float64(count) / 1e6) / elapsed.Seconds()
		fmt.Printf("[*] execution halted: %d instructions in %s (%.3f MIPS)\n", count, elapsed, mips)
	}

	if dump != "" {
		if err := emu.DumpMemory(dump); err != nil {
			fmt.Fprintf(os.Stderr, "[x] could not dump memory: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[*] DRAM dumped to %s\n", dump)
	}
}

// printBanner prints the startup banner, colorizing it only when standard
// output is a terminal — mirroring the original implementation's behavior
// of disabling color when output is piped or redirected.
func printBanner() {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("\033[36m%s\033[0m\n", banner)
	} else {
		fmt.Println(banner)
	}
}
