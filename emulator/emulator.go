// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"iter"
	"log"

	"github.com/ezrec/pievm/asm"
	"github.com/ezrec/pievm/internal"
	"github.com/ezrec/pievm/vm"
)

// segment is a source listing loaded at a program offset.
type segment struct {
	offset  int
	listing *asm.Program
}

// Emulator state. Assembler + Machine + source listings.
type Emulator struct {
	Verbose     bool           // If set, enables verbose logging.
	*vm.Machine                // Reference to the machine simulation.
	Assembler   *asm.Assembler // Assembler for loaded source.

	segments []segment
}

// NewEmulator creates a new emulator. The machine defines are visible to
// $(...) expressions of the loaded source.
func NewEmulator(opts ...vm.Option) (emu *Emulator) {
	emu = &Emulator{
		Machine:   vm.New(opts...),
		Assembler: &asm.Assembler{},
	}

	for name, value := range emu.Machine.Defines() {
		emu.Assembler.Predefine(name, value)
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.ConcatSeq2(
		emu.Machine.Defines(),
		emu.Assembler.Defines(),
	)
}

// Predefine sets a name for $(...) expressions of later loaded source.
func (emu *Emulator) Predefine(name string, value string) {
	emu.Assembler.Predefine(name, value)
}

// Symbols returns the symbols of the last loaded source.
func (emu *Emulator) Symbols() *asm.SymbolTable {
	return emu.Assembler.Symbols()
}

// LoadSource assembles source and appends it to the machine program. The
// labels of the source are placed at their offsets after the existing
// program.
func (emu *Emulator) LoadSource(source io.Reader) (code []byte, err error) {
	emu.Assembler.Verbose = emu.Verbose

	listing, err := emu.Assembler.Parse(source)
	if err != nil {
		return
	}

	// Labels resolve to offsets in the whole machine program.
	emu.Assembler.Origin = uint32(len(emu.Machine.Program))

	code, err = emu.Assembler.AssembleProgram(listing)
	if err != nil {
		return
	}

	emu.segments = append(emu.segments, segment{offset: len(emu.Machine.Program), listing: listing})
	emu.Machine.Load(code)

	if emu.Verbose {
		log.Printf("emulator: loaded %v bytes from %v lines", len(code), len(listing.Instructions))
	}

	return
}

// LoadBinary appends an assembled program, without a source listing.
func (emu *Emulator) LoadBinary(code []byte) {
	emu.Machine.Load(code)
}

// Clear removes the program and its listings.
func (emu *Emulator) Clear() {
	emu.Machine.Clear()
	emu.segments = nil
}

// Instruction returns the source statement at the program counter, or nil
// if there is no listing for it.
func (emu *Emulator) Instruction() *asm.Instruction {
	pc := emu.Machine.Pc
	for n := len(emu.segments) - 1; n >= 0; n-- {
		seg := emu.segments[n]
		if pc < seg.offset {
			continue
		}
		return seg.listing.Debug(pc - seg.offset)
	}

	return nil
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	ins := emu.Instruction()
	if ins == nil {
		return 0
	}

	return ins.LineNo
}

// Tick executes a single instruction.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	done, err = emu.Machine.Step()

	return
}

// Run ticks until the machine stops.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if done {
			return
		}
	}
}
