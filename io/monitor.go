package io

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/stack16/cpu"
)

// Monitor mirrors the engine registers and written memory from updates,
// for a debugger view.
type Monitor struct {
	Register [cpu.REG_COUNT]uint16 // R00-R15, PC, SP
	Memory   map[uint16]uint16     // Memory words written since the last Reset.
	Updates  int                   // Update batches received.
}

var _ cpu.UpdateFunc = (*Monitor)(nil).Update

// Reset clears the monitor.
func (mon *Monitor) Reset() {
	*mon = Monitor{}
}

// Update applies a batch of updates.
// Unknown registers are reported after the rest of the batch is applied.
func (mon *Monitor) Update(updates []cpu.Update) (err error) {
	mon.Updates++

	for _, update := range updates {
		switch update.Kind {
		case cpu.UPDATE_REGISTER:
			if int(update.Address) >= len(mon.Register) {
				err = errors.Join(err, ErrRegister(update.Address))
				continue
			}
			mon.Register[update.Address] = update.Value
		case cpu.UPDATE_MEMORY:
			if mon.Memory == nil {
				mon.Memory = map[uint16]uint16{}
			}
			mon.Memory[update.Address] = update.Value
		}
	}

	return
}

// RegisterName returns the display name of a register address.
func RegisterName(reg int) string {
	switch reg {
	case cpu.REG_PC:
		return "PC"
	case cpu.REG_SP:
		return "SP"
	default:
		return fmt.Sprintf("R%02d", reg)
	}
}

// String renders the register panel.
func (mon *Monitor) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%v: %04X %v: %04X\n",
		RegisterName(cpu.REG_PC), mon.Register[cpu.REG_PC],
		RegisterName(cpu.REG_SP), mon.Register[cpu.REG_SP])

	for reg := range cpu.STACK_LIMIT {
		fmt.Fprintf(&sb, "%v: %04X", RegisterName(reg), mon.Register[reg])
		if reg%4 == 3 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}

	for _, address := range slices.Sorted(maps.Keys(mon.Memory)) {
		fmt.Fprintf(&sb, "%03X: %04X\n", address, mon.Memory[address])
	}

	return sb.String()
}

// Listing writes one line per word: address, hex, binary and disassembly.
func Listing(w io.Writer, origin uint16, words []uint16) (err error) {
	for n, word := range words {
		bin := fmt.Sprintf("%016b", word)
		_, err = fmt.Fprintf(w, "%03X %04X %v %v %v %v %v\n",
			int(origin)+n, word,
			bin[0:4], bin[4:8], bin[8:12], bin[12:16],
			cpu.Code(word))
		if err != nil {
			return
		}
	}

	return
}
