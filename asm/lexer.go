package asm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// COMMENT starts a comment that runs to the end of the line.
const COMMENT = ";"

// Lexer splits assembly lines into tokens.
type Lexer struct {
	// Equate holds the names visible to $(...) expressions. Values that do
	// not parse as integers are ignored.
	Equate map[string]string
}

var reExpression = regexp.MustCompile(`\$\([^\$]*\)`)

// isIdentifier is true for a letter or underscore followed by letters,
// digits and underscores.
func isIdentifier(word string) bool {
	if len(word) == 0 {
		return false
	}
	for n, r := range word {
		switch {
		case r == '_', unicode.IsLetter(r):
		case n > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// isMnemonic is true for a word of only letters.
func isMnemonic(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// parenEval evaluates a $(...) expression to an integer.
func (lex *Lexer) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "pievm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range lex.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", "rc="+expr+"\n", pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// expand replaces every $(...) expression in the line by its decimal value.
func (lex *Lexer) expand(line string) (text string, err error) {
	text = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := lex.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return fmt.Sprintf("%d", value)
	})

	return
}

// Words splits a line into its words, dropping any comment. Words are
// separated by white space or commas.
func (lex *Lexer) Words(line string) (words []string, err error) {
	line, _, _ = strings.Cut(line, COMMENT)

	line, err = lex.expand(line)
	if err != nil {
		return
	}

	words = strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	return
}

// Token classifies a single word.
func (lex *Lexer) Token(word string) (tok Token, err error) {
	switch {
	case strings.HasPrefix(word, "#"):
		digits := word[1:]
		var v64 int64
		v64, err = strconv.ParseInt(digits, 10, 32)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		tok = MakeInteger(int32(v64))
	case strings.HasPrefix(word, "$"):
		digits := word[1:]
		var u64 uint64
		u64, err = strconv.ParseUint(digits, 10, 8)
		if err != nil {
			err = ErrParseRegister(word)
			return
		}
		tok = MakeRegister(uint8(u64))
	case strings.HasPrefix(word, "@"):
		name := word[1:]
		if !isIdentifier(name) {
			err = ErrParseLabel(word)
			return
		}
		tok = MakeLabelUsage(name)
	case strings.HasPrefix(word, "."):
		name := word[1:]
		if !isIdentifier(name) {
			err = ErrParseToken(word)
			return
		}
		tok = MakeDirective(name)
	case strings.HasSuffix(word, ":"):
		name := word[:len(word)-1]
		if !isIdentifier(name) {
			err = ErrParseLabel(word)
			return
		}
		tok = MakeLabelDeclaration(name)
	case isMnemonic(word):
		tok = MakeMnemonic(word)
	default:
		err = ErrParseToken(word)
	}

	return
}

// Tokens returns the tokens of one line of assembly.
func (lex *Lexer) Tokens(line string) (tokens []Token, err error) {
	words, err := lex.Words(line)
	if err != nil {
		return
	}

	for _, word := range words {
		var tok Token
		tok, err = lex.Token(word)
		if err != nil {
			tokens = nil
			return
		}
		tokens = append(tokens, tok)
	}

	return
}
