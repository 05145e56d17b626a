package asm

import (
	"fmt"

	"github.com/ezrec/pievm/isa"
)

// TokenKind is the lexical class of a Token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_OPCODE            = TokenKind(0) // opcode
	TOKEN_REGISTER          = TokenKind(1) // register
	TOKEN_INTEGER           = TokenKind(2) // integer
	TOKEN_LABEL_DECLARATION = TokenKind(3) // label declaration
	TOKEN_LABEL_USAGE       = TokenKind(4) // label usage
	TOKEN_DIRECTIVE         = TokenKind(5) // directive
)

// Token is one lexical element of an assembly line.
type Token struct {
	Kind     TokenKind
	Opcode   isa.Opcode // TOKEN_OPCODE
	Register uint8      // TOKEN_REGISTER
	Value    int32      // TOKEN_INTEGER
	Name     string     // Mnemonic, label or directive name.
}

// MakeOpcode returns an opcode token.
func MakeOpcode(op isa.Opcode) Token {
	return Token{Kind: TOKEN_OPCODE, Opcode: op, Name: op.String()}
}

// MakeMnemonic returns the opcode token of a mnemonic. Unknown mnemonics
// keep their spelling but decode to isa.OP_IGL.
func MakeMnemonic(mnemonic string) Token {
	return Token{Kind: TOKEN_OPCODE, Opcode: isa.Lookup(mnemonic), Name: mnemonic}
}

// MakeRegister returns a register operand token.
func MakeRegister(reg uint8) Token {
	return Token{Kind: TOKEN_REGISTER, Register: reg}
}

// MakeInteger returns an immediate integer operand token.
func MakeInteger(value int32) Token {
	return Token{Kind: TOKEN_INTEGER, Value: value}
}

// MakeLabelDeclaration returns a label declaration token.
func MakeLabelDeclaration(name string) Token {
	return Token{Kind: TOKEN_LABEL_DECLARATION, Name: name}
}

// MakeLabelUsage returns a label reference operand token.
func MakeLabelUsage(name string) Token {
	return Token{Kind: TOKEN_LABEL_USAGE, Name: name}
}

// MakeDirective returns a directive token.
func MakeDirective(name string) Token {
	return Token{Kind: TOKEN_DIRECTIVE, Name: name}
}

// IsOperand is true for tokens allowed in an operand position.
func (tok Token) IsOperand() bool {
	switch tok.Kind {
	case TOKEN_REGISTER, TOKEN_INTEGER, TOKEN_LABEL_USAGE:
		return true
	}
	return false
}

// String returns the token in assembly syntax.
func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_OPCODE:
		if len(tok.Name) == 0 {
			return tok.Opcode.String()
		}
		return tok.Name
	case TOKEN_REGISTER:
		return fmt.Sprintf("$%d", tok.Register)
	case TOKEN_INTEGER:
		return fmt.Sprintf("#%d", tok.Value)
	case TOKEN_LABEL_DECLARATION:
		return tok.Name + ":"
	case TOKEN_LABEL_USAGE:
		return "@" + tok.Name
	case TOKEN_DIRECTIVE:
		return "." + tok.Name
	}
	return tok.Kind.String()
}
