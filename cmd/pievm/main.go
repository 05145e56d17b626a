// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/pievm/emulator"
	"github.com/ezrec/pievm/repl"
	"github.com/ezrec/pievm/vm"
)

func main() {
	var output string
	var image bool
	var verbose bool
	var jmpb string
	var heap int

	defines := map[string]string{}

	flag.StringVar(&output, "o", "", "Write the assembled program as an image, do not execute")
	flag.BoolVar(&image, "x", false, "FILE is a program image, not assembly source")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&jmpb, "jmpb", "add", "jmpb mode, 'add' or 'subtract'")
	flag.IntVar(&heap, "heap", vm.HEAP_LIMIT, "Heap limit in bytes, 0 for none")
	flag.Func("D", "Define `name=value` for $(...) expressions", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("'%v' is not name=value", arg)
		}
		defines[name] = value
		return nil
	})

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] [FILE]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	var mode vm.JumpMode
	switch jmpb {
	case "add":
		mode = vm.JUMP_ADDITIVE
	case "subtract":
		mode = vm.JUMP_SUBTRACTIVE
	default:
		log.Fatalf("%v: -jmpb %v: expected 'add' or 'subtract'", os.Args[0], jmpb)
	}

	emu := emulator.NewEmulator(vm.WithBackwardJump(mode), vm.WithHeapLimit(heap))
	emu.Verbose = verbose
	for name, value := range defines {
		emu.Predefine(name, value)
	}

	if flag.NArg() == 0 {
		if len(output) != 0 || image {
			log.Fatalf("%v: -o and -x need a FILE", os.Args[0])
		}
		err := repl.NewRepl(emu).Run(os.Stdin, os.Stdout)
		if err != nil {
			atexit.Fatal(err)
		}
		atexit.Exit(0)
	}

	file := flag.Arg(0)

	if image {
		program, err := vm.LoadImage(file)
		if err != nil {
			atexit.Fatal(err)
		}
		emu.LoadBinary(program)
	} else {
		inf, err := os.Open(file)
		if err != nil {
			atexit.Fatalf("%v: %v", file, err)
		}
		atexit.Register(func() { inf.Close() })

		_, err = emu.LoadSource(inf)
		if err != nil {
			atexit.Fatalf("%v: %v", file, err)
		}
	}

	if len(output) != 0 {
		err := vm.SaveImage(output, emu.Program)
		if err != nil {
			atexit.Fatal(err)
		}
		atexit.Exit(0)
	}

	err := emu.Run()
	if verbose {
		log.Printf("%v", emu.Machine)
	}
	if err != nil {
		atexit.Fatalf("%v: %v", file, err)
	}

	atexit.Exit(0)
}
