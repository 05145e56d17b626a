package repl

import (
	"errors"
)

var (
	ErrArgumentMissing = errors.New(f("argument missing"))
	ErrArgumentExtra   = errors.New(f("command takes no argument"))
)
