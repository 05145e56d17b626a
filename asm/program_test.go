package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("load $0 #1\n\nloop: inc $0\njmp @loop\n"))
	assert.NoError(err)
	assert.Equal(12, prog.Len())

	ins := prog.Debug(0)
	assert.NotNil(ins)
	assert.Equal(1, ins.LineNo)

	ins = prog.Debug(5)
	assert.NotNil(ins)
	assert.Equal(3, ins.LineNo)
	assert.True(ins.IsLabel())
	assert.Equal("loop: inc $0", ins.String())

	ins = prog.Debug(11)
	assert.Equal(4, ins.LineNo)
	assert.Equal("jmp @loop", ins.String())

	assert.Nil(prog.Debug(12))
	assert.Nil(prog.Debug(-1))
}

func TestProgram_Offsets(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("nop\n.data\nhlt\n"))
	assert.NoError(err)

	var offsets []uint32
	for offset := range prog.Offsets() {
		offsets = append(offsets, offset)
	}
	assert.Equal([]uint32{0, 4, 8}, offsets)

	for offset := range prog.Offsets() {
		assert.Equal(uint32(0), offset)
		break
	}
}

func TestSymbolTable(t *testing.T) {
	assert := assert.New(t)

	st := &SymbolTable{}
	assert.Equal(0, st.Len())

	_, ok := st.Lookup("x")
	assert.False(ok)

	assert.NoError(st.Insert(Symbol{Name: "b", Offset: 8}))
	assert.NoError(st.Insert(Symbol{Name: "a", Offset: 8}))
	assert.NoError(st.Insert(Symbol{Name: "c", Offset: 0}))
	assert.ErrorIs(st.Insert(Symbol{Name: "a", Offset: 12}), ErrLabelDuplicate)

	offset, ok := st.Offset("a")
	assert.True(ok)
	assert.Equal(uint32(8), offset)

	var names []string
	for sym := range st.All() {
		names = append(names, sym.Name)
	}
	assert.Equal([]string{"c", "a", "b"}, names)

	var nilTable *SymbolTable
	_, ok = nilTable.Lookup("a")
	assert.False(ok)
}

func TestToken_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("$3", MakeRegister(3).String())
	assert.Equal("#-2", MakeInteger(-2).String())
	assert.Equal("x:", MakeLabelDeclaration("x").String())
	assert.Equal("@x", MakeLabelUsage("x").String())
	assert.Equal(".x", MakeDirective("x").String())
	assert.Equal("FROB", MakeMnemonic("FROB").String())
	assert.Equal("igl", Token{Kind: TOKEN_OPCODE, Opcode: 1}.String())
	assert.True(MakeLabelUsage("x").IsOperand())
	assert.False(MakeDirective("x").IsOperand())
}
