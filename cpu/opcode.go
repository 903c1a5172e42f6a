package cpu

import (
	"fmt"
)

// CodeFormat is the instruction format, selected by bit 15.
type CodeFormat int

const (
	FORMAT_ZERO    = CodeFormat(0) // zero-address
	FORMAT_ADDRESS = CodeFormat(1) // address
)

// CodeAddrOp is an address format operation.
type CodeAddrOp int

//go:generate go tool stringer -linecomment -type=CodeAddrOp
const (
	ADDR_OP_LOAD  = CodeAddrOp(0b1000) // LOAD
	ADDR_OP_STORE = CodeAddrOp(0b1001) // STORE
)

// CodeOp is a zero-address operation.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_NOP    = CodeOp(0x00) // NOP
	OP_CMP    = CodeOp(0x01) // CMP
	OP_DBG    = CodeOp(0x0f) // DBG
	OP_PUSH   = CodeOp(0x10) // PUSH
	OP_PUSHH  = CodeOp(0x11) // PUSHH
	OP_DROP   = CodeOp(0x14) // DROP
	OP_DUP    = CodeOp(0x15) // DUP
	OP_SWAP   = CodeOp(0x18) // SWAP
	OP_OVER   = CodeOp(0x19) // OVER
	OP_ADD    = CodeOp(0x20) // ADD
	OP_SUB    = CodeOp(0x21) // SUB
	OP_LOADI  = CodeOp(0x44) // LOADI
	OP_STOREI = CodeOp(0x45) // STOREI
)

// Effect is the stack an operation requires: at least Down words present,
// and room to grow by Up words. It is checked before the operation runs.
type Effect struct {
	Down int
	Up   int
}

var addrEffect = map[CodeAddrOp]Effect{
	ADDR_OP_LOAD:  {0, 1},
	ADDR_OP_STORE: {1, 0},
}

var zeroEffect = map[CodeOp]Effect{
	OP_CMP:    {1, 0},
	OP_DBG:    {1, 0},
	OP_PUSH:   {0, 1},
	OP_PUSHH:  {1, 0},
	OP_DROP:   {1, 0},
	OP_DUP:    {1, 1},
	OP_SWAP:   {2, 0},
	OP_OVER:   {2, 1},
	OP_ADD:    {2, 0},
	OP_SUB:    {2, 0},
	OP_LOADI:  {1, 0},
	OP_STOREI: {2, 0},
}

// Code is a single instruction word.
type Code uint16

// MakeCodeAddr creates an address format instruction.
func MakeCodeAddr(op CodeAddrOp, address uint16) Code {
	return Code((uint16(op)&0xf)<<12 | 0x8000 | (address & ADDRESS_MASK))
}

// MakeCodeZero creates a zero-address format instruction.
func MakeCodeZero(op CodeOp, operand uint8) Code {
	return Code((uint16(op)&0x7f)<<8 | uint16(operand))
}

// Format returns the instruction format from bit 15.
func (code Code) Format() CodeFormat {
	return CodeFormat((code >> 15) & 1)
}

// AddrDecode decodes the operation and 12-bit address of an address format word.
func (code Code) AddrDecode() (op CodeAddrOp, address uint16) {
	word := uint16(code)
	op = CodeAddrOp((word >> 12) & 0xf)
	address = word & ADDRESS_MASK
	return
}

// ZeroDecode decodes the operation and 8-bit immediate of a zero-address word.
func (code Code) ZeroDecode() (op CodeOp, operand uint16) {
	word := uint16(code)
	op = CodeOp((word >> 8) & 0xff)
	operand = word & 0xff
	return
}

// Known returns true if the instruction has a defined operation.
func (code Code) Known() (ok bool) {
	switch code.Format() {
	case FORMAT_ADDRESS:
		op, _ := code.AddrDecode()
		_, ok = addrEffect[op]
	case FORMAT_ZERO:
		op, _ := code.ZeroDecode()
		_, ok = zeroEffect[op]
		ok = ok || op == OP_NOP
	}
	return
}

// Effect returns the stack effect of the instruction.
// Unknown operations have no effect.
func (code Code) Effect() Effect {
	if code.Format() == FORMAT_ADDRESS {
		op, _ := code.AddrDecode()
		return addrEffect[op]
	}

	op, _ := code.ZeroDecode()
	return zeroEffect[op]
}

// String returns the assembly language representation of this instruction.
// Undefined words disassemble as DATA.
func (code Code) String() (out string) {
	if !code.Known() {
		return "DATA"
	}

	switch code.Format() {
	case FORMAT_ADDRESS:
		op, address := code.AddrDecode()
		out = fmt.Sprintf("%v %03X", op.String(), address)
	case FORMAT_ZERO:
		op, operand := code.ZeroDecode()
		switch op {
		case OP_PUSH, OP_PUSHH:
			out = fmt.Sprintf("%v %02X", op.String(), operand)
		default:
			out = op.String()
		}
	}

	return
}
