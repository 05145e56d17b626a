package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	word, err := Encode(OP_LOAD, append(MakeRegister(0), MakeImmediate(500)...)...)
	assert.NoError(err)
	assert.Equal(Word{2, 0, 1, 244}, word)
	assert.Equal(OP_LOAD, word.Opcode())
	assert.Equal("load $0 #500", word.String())

	word, err = Encode(OP_HLT)
	assert.NoError(err)
	assert.Equal(Word{0, 0, 0, 0}, word)
	assert.Equal("hlt", word.String())

	word, err = Encode(OP_ADD, 0, 1, 2)
	assert.NoError(err)
	assert.Equal("add $0 $1 $2", word.String())

	word, err = Encode(OP_EQ, 3, 4)
	assert.NoError(err)
	assert.Equal([]byte{10, 3, 4, 0}, word.Bytes())
	assert.Equal("eq $3 $4", word.String())

	_, err = Encode(OP_ADD, 0, 1, 2, 3)
	assert.ErrorIs(err, ErrOperandOverflow)
}

func TestMakeImmediate(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]byte{0x00, 0x64}, MakeImmediate(100))
	assert.Equal([]byte{0xff, 0xff}, MakeImmediate(-1))
	assert.Equal([]byte{0x23, 0x45}, MakeImmediate(0x12345))
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	program := []byte{
		2, 0, 0, 100,
		3, 0, 1, 2,
		0, 0, 0, 0,
		7, 7,
	}

	var offsets []int
	var text []string
	for offset, word := range Disassemble(program) {
		offsets = append(offsets, offset)
		text = append(text, word.String())
	}

	assert.Equal([]int{0, 4, 8}, offsets)
	assert.Equal([]string{"load $0 #100", "add $0 $1 $2", "hlt"}, text)

	for range Disassemble(program) {
		break
	}
}
