package emulator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/stack16/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(0, emu.Ticks)
}

func doRun(emu *Emulator, program string, t *testing.T) {
	assert := assert.New(t)

	emu.Rom.Data = nil
	_, err := emu.Rom.ReadFrom(strings.NewReader(program))
	assert.NoError(err)

	err = emu.Reset()
	assert.NoError(err)

	err = emu.Run(len(emu.Rom.Data))
	assert.NoError(err)
	if err != nil {
		t.Log(emu.Cpu.String())
		t.Fatalf("%v", err)
	}
}

func TestEmulatorSub(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doRun(emu, strings.Join([]string{
		"1005 ; PUSH 05",
		"1003 ; PUSH 03",
		"2100 ; SUB",
	}, "\n"), t)

	assert.Equal(3, emu.Ticks)
	assert.Equal(uint16(3), emu.Monitor.Register[cpu.REG_PC])
	assert.Equal(uint16(1), emu.Monitor.Register[cpu.REG_SP])
	assert.Equal(uint16(2), emu.Monitor.Register[0])
	assert.False(emu.Flags().Has(cpu.FLAG_CARRY))
}

func TestEmulatorAddCarry(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doRun(emu, strings.Join([]string{
		"10FF ; PUSH FF",
		"11FF ; PUSHH FF",
		"1001 ; PUSH 01",
		"2000 ; ADD",
	}, "\n"), t)

	assert.Equal(uint16(0), emu.Monitor.Register[0])
	assert.Equal(uint16(1), emu.Monitor.Register[cpu.REG_SP])
	assert.True(emu.Flags().Has(cpu.FLAG_CARRY))
}

func TestEmulatorMemory(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doRun(emu, strings.Join([]string{
		"102A 9100 ; PUSH 2A, STORE 100",
		"8100 1501 ; LOAD 100, DUP",
		"1040 4500 ; PUSH 40, STOREI",
		"1040 4400 ; PUSH 40, LOADI",
		"2000      ; ADD",
	}, "\n"), t)

	assert.Equal(uint16(0x2a), emu.Monitor.Memory[0x100])
	assert.Equal(uint16(0x2a), emu.Monitor.Memory[0x40])
	assert.Equal(uint16(0x54), emu.Monitor.Register[0])
	assert.Equal(uint16(1), emu.Monitor.Register[cpu.REG_SP])
}

func TestEmulatorFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Rom.Data = []uint16{0x1001, 0x2000, 0x1002}
	assert.NoError(emu.Reset())

	err := emu.Run(3)
	assert.ErrorIs(err, cpu.ErrStackUnderflow)

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(uint16(1), runtime.Pc)
	assert.Equal(1, emu.Ticks)
	assert.Equal(uint16(1), emu.Pc())

	// Reset recovers, and reloads the image.
	assert.NoError(emu.Reset())
	assert.Equal(0, emu.Ticks)
	assert.Equal(uint16(0), emu.Pc())
	assert.NoError(emu.Tick())
	assert.Equal(1, emu.Sp())
}

func TestEmulatorReset_Memory(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Rom.Data = []uint16{0x1005}
	assert.NoError(emu.SetMemoryWord(0x200, 0xbeef))
	assert.NoError(emu.Reset())

	value, err := emu.MemoryWord(0x200)
	assert.NoError(err)
	assert.Equal(uint16(0xbeef), value)
}

func TestEmulatorReset_Overrun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Rom.Origin = cpu.MEMORY_SIZE - 1
	emu.Rom.Data = []uint16{0x1005, 0x1005}

	err := emu.Reset()
	assert.ErrorIs(err, cpu.ErrAddressInvalid)
}

func TestEmulatorClose(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Rom.Data = []uint16{0x1005}
	assert.NoError(emu.Reset())
	assert.NoError(emu.Close())

	updates := emu.Monitor.Updates
	assert.NoError(emu.Tick())
	assert.Equal(updates, emu.Monitor.Updates)
}
