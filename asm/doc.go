// Package asm implements the assembler for the pievm instruction set.
//
// Source text is one statement per line:
//
//	[label:] mnemonic [operand [operand [operand]]]
//	[label:] .directive [operand...]
//	label:
//
// Operands are registers ($0 .. $31), decimal immediates (#100, #-3) and
// label references (@loop). A ';' starts a comment. $(expr) is replaced by
// the value of the Starlark integer expression expr before the line is
// tokenized, with the assembler's predefines in scope.
//
// Assembly runs in two passes. The first pass gives every statement a
// four byte slot and records the offset of each label; the second pass
// encodes the statements, substituting label offsets as 16-bit immediates.
// Directives and lone labels are encoded as nop slots.
package asm
