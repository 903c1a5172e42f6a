package cpu

import (
	"iter"
	"log"
	"slices"
)

// UpdateKind is the kind of location an Update describes.
type UpdateKind int

//go:generate go tool stringer -linecomment -type=UpdateKind
const (
	UPDATE_MEMORY   = UpdateKind(0) // mem
	UPDATE_REGISTER = UpdateKind(1) // reg
)

// Register addresses for UPDATE_REGISTER records.
// Addresses 0 to STACK_LIMIT-1 are the stack slots, bottom first.
const (
	REG_PC    = 16 // Program counter.
	REG_SP    = 17 // Stack pointer.
	REG_COUNT = 18
)

// Update is a snapshot of one location after a change.
type Update struct {
	Kind    UpdateKind
	Address uint16
	Value   uint16
}

// UpdateFunc receives updates after the engine state changes.
// Errors are logged and otherwise ignored.
type UpdateFunc func(updates []Update) error

// SetUpdateCallback registers the update callback.
// A nil callback disables notifications.
func (cpu *Cpu) SetUpdateCallback(fn UpdateFunc) {
	cpu.update = fn
}

func (cpu *Cpu) notify(updates iter.Seq[Update]) {
	if cpu.update == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("cpu: update callback panic: %v", r)
		}
	}()

	err := cpu.update(slices.Collect(updates))
	if err != nil {
		log.Printf("cpu: update callback: %v", err)
	}
}

// stackUpdates yields all stack slots, then the stack pointer.
func (cpu *Cpu) stackUpdates() iter.Seq[Update] {
	data := cpu.stack.Data()
	sp := cpu.stack.Len()
	return func(yield func(Update) bool) {
		for n, value := range data {
			if !yield(Update{Kind: UPDATE_REGISTER, Address: uint16(n), Value: value}) {
				return
			}
		}
		yield(Update{Kind: UPDATE_REGISTER, Address: REG_SP, Value: uint16(sp)})
	}
}

func (cpu *Cpu) pcUpdate() iter.Seq[Update] {
	pc := cpu.pc
	return func(yield func(Update) bool) {
		yield(Update{Kind: UPDATE_REGISTER, Address: REG_PC, Value: pc})
	}
}

func (cpu *Cpu) memoryUpdate(address uint16) iter.Seq[Update] {
	value := cpu.memory[address]
	return func(yield func(Update) bool) {
		yield(Update{Kind: UPDATE_MEMORY, Address: address, Value: value})
	}
}
