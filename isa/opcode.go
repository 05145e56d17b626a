package isa

// Opcode is the numeric operation code in the first byte of an instruction.
//
// The numeric values are the wire format; renumbering an opcode breaks every
// assembled image.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0)  // hlt
	OP_IGL  = Opcode(1)  // igl
	OP_LOAD = Opcode(2)  // load
	OP_ADD  = Opcode(3)  // add
	OP_SUB  = Opcode(4)  // sub
	OP_MUL  = Opcode(5)  // mul
	OP_DIV  = Opcode(6)  // div
	OP_JMP  = Opcode(7)  // jmp
	OP_JMPF = Opcode(8)  // jmpf
	OP_JMPB = Opcode(9)  // jmpb
	OP_EQ   = Opcode(10) // eq
	OP_NEQ  = Opcode(11) // neq
	OP_GT   = Opcode(12) // gt
	OP_LT   = Opcode(13) // lt
	OP_GTQ  = Opcode(14) // gtq
	OP_LTQ  = Opcode(15) // ltq
	OP_JEQ  = Opcode(16) // jeq
	OP_NOP  = Opcode(17) // nop
	OP_ALOC = Opcode(18) // aloc
	OP_INC  = Opcode(19) // inc
	OP_DEC  = Opcode(20) // dec
)

// OP_COUNT is the number of defined opcodes.
const OP_COUNT = int(OP_DEC) + 1

// Operand is the kind of an encoded operand.
type Operand int

const (
	OPERAND_REGISTER  = Operand(1) // One register index byte.
	OPERAND_IMMEDIATE = Operand(2) // Two big-endian bytes.
)

// Width returns the number of encoded bytes of the operand kind.
func (kind Operand) Width() int {
	if kind == OPERAND_IMMEDIATE {
		return 2
	}
	return 1
}

var layout = [OP_COUNT][]Operand{
	OP_LOAD: {OPERAND_REGISTER, OPERAND_IMMEDIATE},
	OP_ADD:  {OPERAND_REGISTER, OPERAND_REGISTER, OPERAND_REGISTER},
	OP_SUB:  {OPERAND_REGISTER, OPERAND_REGISTER, OPERAND_REGISTER},
	OP_MUL:  {OPERAND_REGISTER, OPERAND_REGISTER, OPERAND_REGISTER},
	OP_DIV:  {OPERAND_REGISTER, OPERAND_REGISTER, OPERAND_REGISTER},
	OP_JMP:  {OPERAND_REGISTER},
	OP_JMPF: {OPERAND_REGISTER},
	OP_JMPB: {OPERAND_REGISTER},
	OP_EQ:   {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_NEQ:  {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_GT:   {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_LT:   {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_GTQ:  {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_LTQ:  {OPERAND_REGISTER, OPERAND_REGISTER},
	OP_JEQ:  {OPERAND_REGISTER},
	OP_ALOC: {OPERAND_REGISTER},
	OP_INC:  {OPERAND_REGISTER},
	OP_DEC:  {OPERAND_REGISTER},
}

// mnemonics maps the lower case mnemonic to its opcode.
var mnemonics = func() map[string]Opcode {
	table := make(map[string]Opcode, OP_COUNT)
	for n := range OP_COUNT {
		op := Opcode(n)
		table[op.String()] = op
	}
	return table
}()

// Decode returns the opcode for an instruction byte. Every byte decodes;
// undefined codes decode to OP_IGL.
func Decode(code byte) Opcode {
	if int(code) >= OP_COUNT {
		return OP_IGL
	}
	return Opcode(code)
}

// Lookup returns the opcode of a mnemonic. The match is case sensitive, and
// unknown mnemonics return OP_IGL.
func Lookup(mnemonic string) Opcode {
	op, ok := mnemonics[mnemonic]
	if !ok {
		return OP_IGL
	}
	return op
}

// Byte returns the encoded form of the opcode.
func (op Opcode) Byte() byte {
	return byte(op)
}

// Valid is false for OP_IGL and undefined codes.
func (op Opcode) Valid() bool {
	return op != OP_IGL && int(op) < OP_COUNT
}

// Layout returns the operand kinds the machine reads for the opcode.
func (op Opcode) Layout() []Operand {
	if int(op) >= OP_COUNT {
		return nil
	}
	return layout[op]
}
