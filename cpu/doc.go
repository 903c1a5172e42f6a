// Package cpu implements the instruction engine of the stack16 processor.
//
// The processor has a 16-bit program counter (PC) of which the low 12 bits
// index memory, an 8-bit status register (ST), a 4-bit flag register
// (Zero, Carry, Greater, Less), a 16 word operand stack, and 4096 words of
// 16-bit memory.
//
// Instructions are one word. Bit 15 selects the format:
//
//	1ooo aaaa aaaa aaaa  address format, o = opcode, a = 12-bit address
//	0ooo oooo iiii iiii  zero-address format, o = opcode, i = 8-bit immediate
//
// The address format opcode is the top nibble of the word, format bit
// included, so LOAD is 0x8nnn and STORE is 0x9nnn. The zero-address
// opcode is the whole high byte.
//
// Every Step fetches the word at PC, executes it and advances PC by one.
// Unknown opcodes are no-ops. Stack overflow and underflow fault the step:
// the instruction has no effect, PC is not advanced, and the error is
// returned to the caller.
package cpu
