// shell.go - line-oriented interactive REPL over the emulator façade
//
// Grounded on the original Rust implementation's interactive_run loop
// (emulator.rs): one blocking line of stdin per command, tokenized on
// whitespace, unknown commands and bad step counts recovered locally
// rather than aborting the shell.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Shell drives an Emulator from line-oriented commands read from r, with
// output written to w.
type Shell struct {
	emu *Emulator
	r   *bufio.Scanner
	w   io.Writer
}

// NewShell constructs a shell reading commands from r and writing to w.
func NewShell(emu *Emulator, r io.Reader, w io.Writer) *Shell {
	return &Shell{emu: emu, r: bufio.NewScanner(r), w: w}
}

// Run reads and executes commands until "q" or end of input. It returns
// the total number of guest instructions executed across all "s"/"c"
// commands.
func (s *Shell) Run() uint64 {
	var total uint64
	for {
		fmt.Fprint(s.w, "> ")
		if !s.r.Scan() {
			return total
		}
		fields := strings.Fields(s.r.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "s":
			n := uint64(1)
			if len(fields) > 1 {
				parsed, err := strconv.ParseUint(fields[1], 10, 64)
				if err != nil {
					fmt.Fprintf(s.w, "error: %v\n", err)
					continue
				}
				n = parsed
			}
			executed, _, err := s.emu.Step(n)
			total += executed
			if err != nil {
				fmt.Fprintf(s.w, "error: %v\n", err)
			}
		case "c":
			count, _, err := s.emu.Run()
			total += count
			if err != nil {
				fmt.Fprintf(s.w, "error: %v\n", err)
			} else {
				fmt.Fprintln(s.w, "execution halted")
			}
		case "r":
			s.dumpRegisters()
		case "d":
			if len(fields) < 2 {
				fmt.Fprintln(s.w, "usage: d <path>")
				continue
			}
			if err := s.emu.DumpMemory(fields[1]); err != nil {
				fmt.Fprintf(s.w, "error: %v\n", err)
			}
		case "q":
			return total
		case "h":
			s.usage()
		default:
			fmt.Fprintf(s.w, "unknown command: %s (h for help)\n", fields[0])
		}
	}
}

func (s *Shell) dumpRegisters() {
	for i, info := range s.emu.CPU().Snapshot() {
		fmt.Fprintf(s.w, "%-4s: 0x%016x", info.Name, info.Value)
		if i%2 == 1 {
			fmt.Fprintln(s.w)
		} else {
			fmt.Fprint(s.w, "  ")
		}
	}
	fmt.Fprintln(s.w)
}

func (s *Shell) usage() {
	fmt.Fprintln(s.w, "commands:")
	fmt.Fprintln(s.w, "  s [n]   step n instructions (default 1)")
	fmt.Fprintln(s.w, "  c       run to completion")
	fmt.Fprintln(s.w, "  r       dump registers")
	fmt.Fprintln(s.w, "  d <path> dump DRAM to path")
	fmt.Fprintln(s.w, "  q       quit")
	fmt.Fprintln(s.w, "  h       this help")
}
