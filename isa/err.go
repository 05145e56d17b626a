package isa

import (
	"errors"

	"github.com/ezrec/pievm/translate"
)

var f = translate.From

var (
	ErrOperandOverflow = errors.New(f("operands exceed instruction width"))
)
