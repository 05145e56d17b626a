// Package repl is an interactive front end to the emulator. Every line
// typed is either a dot command or a line of assembly, which is appended to
// the program and executed.
package repl

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/pievm/emulator"
	"github.com/ezrec/pievm/isa"
	"github.com/ezrec/pievm/translate"
)

var f = translate.From

// PROMPT is written before every line is read.
const PROMPT = ">>> "

// command is a dot command of the REPL.
type command struct {
	name string
	args bool // Takes the rest of the line as its argument.
	help string
	run  func(r *Repl, out io.Writer, arg string) (quit bool, err error)
}

var commands []command

func init() {
	commands = []command{
		{".quit", false, f("leave the REPL"), (*Repl).quit},
		{".history", false, f("list the lines entered so far"), (*Repl).history},
		{".program", false, f("dump the loaded program"), (*Repl).program},
		{".registers", false, f("show the machine registers"), (*Repl).registers},
		{".heap", false, f("dump the heap"), (*Repl).heap},
		{".symbols", false, f("list the symbols of the last assembly"), (*Repl).symbols},
		{".clear", false, f("remove the loaded program"), (*Repl).clear},
		{".reset", false, f("reset the machine state"), (*Repl).reset},
		{".load_file", true, f("assemble a file and append it to the program"), (*Repl).loadFile},
		{".step", false, f("execute one instruction"), (*Repl).step},
		{".run", false, f("run until the machine stops"), (*Repl).run},
		{".help", false, f("list the commands"), (*Repl).help},
	}
}

// Repl is the state of an interactive session.
type Repl struct {
	Emulator *emulator.Emulator // Machine and assembler of the session.
	History  []string           // Lines entered, in order.
}

// NewRepl creates a REPL over an emulator.
func NewRepl(emu *emulator.Emulator) *Repl {
	return &Repl{Emulator: emu}
}

// Run reads lines from in until .quit or the end of input. Errors of
// individual lines are reported to out and do not stop the session.
func (r *Repl) Run(in io.Reader, out io.Writer) (err error) {
	fmt.Fprintln(out, f("Welcome to pievm! Type .help for the commands."))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		quit, lerr := r.Execute(scanner.Text(), out)
		if lerr != nil {
			fmt.Fprintln(out, f("error: %v", lerr))
		}
		if quit {
			break
		}
	}

	err = scanner.Err()
	return
}

// Execute runs a single line. quit is set by .quit.
func (r *Repl) Execute(line string, out io.Writer) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	r.History = append(r.History, line)

	name, arg, _ := strings.Cut(line, " ")
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}
		arg = strings.TrimSpace(arg)
		if !cmd.args && len(arg) != 0 {
			err = ErrArgumentExtra
			return
		}
		return cmd.run(r, out, arg)
	}

	return r.assemble(out, line)
}

// assemble appends a line of assembly to the program and executes it.
func (r *Repl) assemble(out io.Writer, line string) (quit bool, err error) {
	emu := r.Emulator

	pc := len(emu.Program)
	_, err = emu.LoadSource(strings.NewReader(line))
	if err != nil {
		return
	}

	emu.Pc = pc
	_, err = emu.Tick()

	return
}

func (r *Repl) quit(out io.Writer, arg string) (quit bool, err error) {
	fmt.Fprintln(out, f("Farewell! Have a great day!"))
	quit = true
	return
}

func (r *Repl) history(out io.Writer, arg string) (quit bool, err error) {
	for _, line := range r.History {
		fmt.Fprintln(out, line)
	}
	return
}

func (r *Repl) program(out io.Writer, arg string) (quit bool, err error) {
	prog := r.Emulator.Program
	if len(prog) == 0 {
		fmt.Fprintln(out, f("program is empty"))
		return
	}

	for offset, word := range isa.Disassemble(prog) {
		fmt.Fprintf(out, "0x%04x: % x  %v\n", offset, word.Bytes(), word)
	}
	return
}

func (r *Repl) registers(out io.Writer, arg string) (quit bool, err error) {
	fmt.Fprintln(out, r.Emulator.Machine.String())
	return
}

func (r *Repl) heap(out io.Writer, arg string) (quit bool, err error) {
	data := r.Emulator.Heap.Bytes()
	fmt.Fprintln(out, f("heap: %d bytes", len(data)))
	fmt.Fprint(out, hex.Dump(data))
	return
}

func (r *Repl) symbols(out io.Writer, arg string) (quit bool, err error) {
	syms := table.NewWriter()
	syms.AppendHeader(table.Row{f("Name"), f("Offset"), f("Line")})
	for sym := range r.Emulator.Symbols().All() {
		syms.AppendRow(table.Row{sym.Name, fmt.Sprintf("0x%04x", sym.Offset), sym.LineNo})
	}
	fmt.Fprintln(out, syms.Render())
	return
}

func (r *Repl) clear(out io.Writer, arg string) (quit bool, err error) {
	r.Emulator.Clear()
	fmt.Fprintln(out, f("program cleared"))
	return
}

func (r *Repl) reset(out io.Writer, arg string) (quit bool, err error) {
	r.Emulator.Reset()
	fmt.Fprintln(out, f("machine reset"))
	return
}

func (r *Repl) loadFile(out io.Writer, arg string) (quit bool, err error) {
	if len(arg) == 0 {
		err = ErrArgumentMissing
		return
	}

	inf, err := os.Open(arg)
	if err != nil {
		return
	}
	defer inf.Close()

	code, err := r.Emulator.LoadSource(inf)
	if err != nil {
		return
	}

	fmt.Fprintln(out, f("%v: loaded %d bytes", arg, len(code)))
	return
}

func (r *Repl) step(out io.Writer, arg string) (quit bool, err error) {
	emu := r.Emulator

	pc := emu.Pc
	_, err = emu.Tick()
	if err != nil {
		return
	}

	fmt.Fprintln(out, f("0x%04x -> 0x%04x %v", pc, emu.Pc, emu.Status))
	return
}

func (r *Repl) run(out io.Writer, arg string) (quit bool, err error) {
	emu := r.Emulator

	err = emu.Run()
	if err != nil {
		return
	}

	fmt.Fprintln(out, f("%v at 0x%04x", emu.Status, emu.Pc))
	return
}

func (r *Repl) help(out io.Writer, arg string) (quit bool, err error) {
	for _, cmd := range commands {
		name := cmd.name
		if cmd.args {
			name += " " + f("<path>")
		}
		fmt.Fprintf(out, "%-18s %v\n", name, cmd.help)
	}
	fmt.Fprintln(out, f("Any other line is assembled, appended and executed."))
	return
}
