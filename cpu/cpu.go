package cpu

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/stack16/internal"
)

const (
	MEMORY_SIZE  = 4096  // Words of memory.
	ADDRESS_MASK = 0xfff // Mask of the 12 meaningful address bits.
)

// Flag is a condition flag bit.
type Flag uint8

const (
	FLAG_ZERO    = Flag(0b0001)
	FLAG_CARRY   = Flag(0b0010)
	FLAG_GREATER = Flag(0b0100)
	FLAG_LESS    = Flag(0b1000)
)

// Has returns true if all bits in mask are set.
func (fl Flag) Has(mask Flag) bool {
	return fl&mask == mask
}

// String returns the flags as "ZCGL", with '-' for each clear flag.
func (fl Flag) String() string {
	var sb strings.Builder
	for n, ch := range "ZCGL" {
		if fl.Has(Flag(1 << n)) {
			sb.WriteRune(ch)
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// Cpu is the instruction engine.
// The zero value is a reset Cpu with cleared memory.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	pc     uint16              // Program counter.
	st     uint8               // Status register.
	flags  Flag                // Condition flags.
	stack  Stack               // Operand stack.
	memory [MEMORY_SIZE]uint16 // Main memory.

	update UpdateFunc
}

// NewCpu creates a new CPU with all state zeroed.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	return
}

// Pc returns the program counter.
func (cpu *Cpu) Pc() uint16 {
	return cpu.pc
}

// St returns the status register.
func (cpu *Cpu) St() uint8 {
	return cpu.st
}

// Flags returns the condition flags.
func (cpu *Cpu) Flags() Flag {
	return cpu.flags
}

// Sp returns the stack pointer.
func (cpu *Cpu) Sp() int {
	return cpu.stack.Len()
}

// Stack returns a snapshot of the operand stack.
func (cpu *Cpu) Stack() Stack {
	return cpu.stack
}

// Memory returns a snapshot of main memory.
func (cpu *Cpu) Memory() [MEMORY_SIZE]uint16 {
	return cpu.memory
}

// MemoryWord returns the memory word at address.
func (cpu *Cpu) MemoryWord(address uint16) (value uint16, err error) {
	if address >= MEMORY_SIZE {
		err = ErrAddress(address)
		return
	}

	value = cpu.memory[address]
	return
}

// SetMemoryWord sets the memory word at address.
// Addresses outside of memory are rejected and nothing is written.
func (cpu *Cpu) SetMemoryWord(address uint16, value uint16) (err error) {
	if address >= MEMORY_SIZE {
		err = ErrAddress(address)
		if cpu.Verbose {
			log.Printf("cpu: %v", err)
		}
		return
	}

	cpu.writeMemory(address, value)
	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "st", "flags", "sp", "stack"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("0x%04X", cpu.pc)
		case "st":
			strval = fmt.Sprintf("0x%02X", cpu.st)
		case "flags":
			strval = cpu.flags.String()
		case "sp":
			strval = fmt.Sprintf("%d", cpu.stack.Len())
		case "stack":
			data := cpu.stack.Data()
			words := make([]string, 0, STACK_LIMIT)
			for _, val := range data[:cpu.stack.Len()] {
				words = append(words, fmt.Sprintf("%04X", val))
			}
			strval = strings.Join(words, " ")
			if len(words) == 0 {
				strval = "----"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears PC, ST, the flags and the stack.
// - Memory is preserved, so a loaded program survives a reset.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.pc = 0
	cpu.st = 0
	cpu.flags = 0
	cpu.stack.Reset()

	cpu.notify(internal.IterSeqConcat(cpu.stackUpdates(), cpu.pcUpdate()))
}

// FetchCode fetches the instruction at PC.
func (cpu *Cpu) FetchCode() (code Code) {
	return Code(cpu.memory[cpu.pc&ADDRESS_MASK])
}

// Step executes a single instruction cycle.
func (cpu *Cpu) Step() (err error) {
	return cpu.Execute(cpu.FetchCode())
}

// Execute executes a single decoded instruction, as if fetched from PC.
//
// The stack effect of the instruction is checked before it runs, so an
// instruction that would overflow or underflow the stack changes no state.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%03x: %v", cpu.pc&ADDRESS_MASK, code)
	}

	effect := code.Effect()
	err = cpu.stack.need(effect.Down, effect.Up)
	if err != nil {
		return
	}

	next_pc := cpu.pc + 1

	switch code.Format() {
	case FORMAT_ADDRESS:
		op, address := code.AddrDecode()
		switch op {
		case ADDR_OP_LOAD:
			cpu.push(cpu.memory[address])
		case ADDR_OP_STORE:
			cpu.writeMemory(address, cpu.pop())
		default:
			cpu.unknown(code)
		}
	case FORMAT_ZERO:
		op, operand := code.ZeroDecode()
		switch op {
		case OP_NOP:
			// pass
		case OP_CMP:
			top := int16(cpu.stack.peek(0))
			switch {
			case top == 0:
				cpu.flags = FLAG_ZERO
			case top > 0:
				cpu.flags = FLAG_GREATER
			default:
				cpu.flags = FLAG_LESS
			}
		case OP_DBG:
			log.Printf("dbg: st=%d pc=%d top=%d", cpu.st, cpu.pc, cpu.stack.peek(0))
		case OP_PUSH:
			cpu.push(operand)
		case OP_PUSHH:
			// Replace the high byte of the top.
			top := cpu.pop()
			cpu.push((operand << 8) | (top & 0xff))
		case OP_DROP:
			cpu.pop()
		case OP_DUP:
			cpu.push(cpu.stack.peek(0))
		case OP_SWAP:
			a := cpu.pop()
			b := cpu.pop()
			cpu.push(a)
			cpu.push(b)
		case OP_OVER:
			cpu.push(cpu.stack.peek(1))
		case OP_ADD:
			a := cpu.pop()
			b := cpu.pop()
			sum := uint32(a) + uint32(b)
			if sum > 0xffff {
				cpu.flags |= FLAG_CARRY
			}
			cpu.push(uint16(sum))
		case OP_SUB:
			// Second pushed minus first pushed.
			a := cpu.pop()
			b := cpu.pop()
			diff := int32(b) - int32(a)
			if diff < 0 {
				cpu.flags |= FLAG_CARRY
			}
			cpu.push(uint16(diff))
		case OP_LOADI:
			address := cpu.pop() & ADDRESS_MASK
			cpu.push(cpu.memory[address])
		case OP_STOREI:
			address := cpu.pop() & ADDRESS_MASK
			value := cpu.pop()
			cpu.writeMemory(address, value)
		default:
			cpu.unknown(code)
		}
	}

	cpu.pc = next_pc
	cpu.notify(cpu.pcUpdate())

	return
}

func (cpu *Cpu) unknown(code Code) {
	if cpu.Verbose {
		log.Printf("%03x: unknown opcode 0x%04x", cpu.pc&ADDRESS_MASK, uint16(code))
	}
}

func (cpu *Cpu) push(value uint16) {
	cpu.stack.push(value)
	cpu.notify(cpu.stackUpdates())
}

func (cpu *Cpu) pop() (value uint16) {
	value = cpu.stack.pop()
	cpu.notify(cpu.stackUpdates())
	return
}

func (cpu *Cpu) writeMemory(address uint16, value uint16) {
	cpu.memory[address] = value
	cpu.notify(cpu.memoryUpdate(address))
}
