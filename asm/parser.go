package asm

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// MAX_OPERANDS is the most operand tokens a statement may carry.
const MAX_OPERANDS = 3

// Parser builds Instructions out of the token stream of a Lexer.
type Parser struct {
	Verbose bool // If set, logs every source line.
	Lexer   Lexer
}

// ParseLine builds the instruction of a single line. Blank and comment-only
// lines return a nil instruction and no error.
func (p *Parser) ParseLine(line string, lineno int) (ins *Instruction, err error) {
	tokens, err := p.Lexer.Tokens(line)
	if err != nil {
		return
	}

	if len(tokens) == 0 {
		return
	}

	statement := &Instruction{LineNo: lineno}

	if tokens[0].Kind == TOKEN_LABEL_DECLARATION {
		label := tokens[0]
		statement.Label = &label
		tokens = tokens[1:]
	}

	// Label on a line by itself.
	if len(tokens) == 0 {
		ins = statement
		return
	}

	head := tokens[0]
	switch head.Kind {
	case TOKEN_OPCODE:
		statement.Opcode = &head
	case TOKEN_DIRECTIVE:
		statement.Directive = &head
	default:
		err = ErrInstructionInvalid
		return
	}

	operands := tokens[1:]
	if len(operands) > MAX_OPERANDS {
		err = ErrOperandExtra
		return
	}

	for _, tok := range operands {
		switch {
		case tok.IsOperand():
		case tok.Kind == TOKEN_OPCODE:
			err = ErrOperandOpcode
			return
		default:
			err = ErrInstructionInvalid
			return
		}
	}

	if len(operands) > 0 {
		statement.Operands = operands
	}

	ins = statement
	return
}

// Parse reads assembly text, one statement per line, into a Program.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		lineno += 1
		line = strings.TrimSpace(scanner.Text())

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		var ins *Instruction
		ins, err = p.ParseLine(line, lineno)
		if err != nil {
			return
		}

		if ins != nil {
			prog.Instructions = append(prog.Instructions, *ins)
		}
	}

	err = scanner.Err()

	return
}
