package io

import (
	"errors"

	"github.com/ezrec/stack16/translate"
)

var f = translate.From

var (
	// Rom errors
	ErrRomDigit   = errors.New(f("not a hex digit"))
	ErrRomPartial = errors.New(f("partial word at end of image"))

	// Monitor errors
	ErrRegisterInvalid = errors.New(f("register invalid"))
)

// ErrSyntax locates an error in a ROM image.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRegister is an update for an unknown register address.
type ErrRegister uint16

func (er ErrRegister) Error() string {
	return f("register %d unknown", uint16(er))
}

func (er ErrRegister) Is(err error) bool {
	return err == ErrRegisterInvalid
}
