package cpu

import (
	"errors"

	"github.com/ezrec/stack16/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrStackOverflow  = errors.New(f("stack overflow"))
	ErrStackUnderflow = errors.New(f("stack underflow"))
	ErrAddressInvalid = errors.New(f("address invalid"))
)

// ErrOpcode is the instruction that faulted.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", uint16(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddress is a memory address outside of the addressable range.
type ErrAddress uint16

func (ea ErrAddress) Error() string {
	return f("address 0x%04x outside 0x000-0x%03x", uint16(ea), MEMORY_SIZE-1)
}

func (ea ErrAddress) Is(err error) bool {
	return err == ErrAddressInvalid
}
