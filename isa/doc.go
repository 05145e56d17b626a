// Package isa defines the instruction set shared by the assembler and the
// virtual machine.
//
// Every instruction is WIDTH bytes: an opcode byte followed by up to three
// operand bytes. A register operand is one byte holding the register index;
// an immediate operand is two bytes, high byte first. Unused operand bytes
// are zero.
package isa
