// Package vm is the register machine that runs assembled programs.
//
// A Machine has 32 signed 32 bit registers, a program counter, a remainder
// register set by division, an equality flag set by the comparison opcodes
// and a byte heap that only grows. Programs are streams of isa.Word
// instructions, executed one word per Step.
//
// Execution stops on hlt (STATUS_HALTED), when the program counter runs off
// the end of the program (STATUS_EXHAUSTED), or on any error
// (STATUS_FAULTED). A faulted machine keeps its registers and heap for
// inspection, and its program counter points at the faulting instruction.
package vm
