// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator hosts the stack16 engine: it loads a program image,
// mirrors engine state into a monitor, and runs the engine.
package emulator

import (
	"log"

	"github.com/ezrec/stack16/cpu"
	"github.com/ezrec/stack16/io"
)

// Emulator state. CPU + program image + monitor.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Rom     io.Rom     // Program image, loaded on Reset.
	Monitor io.Monitor // Register and memory mirror.

	Ticks int // Instructions executed since the last Reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	emu.Cpu.SetUpdateCallback(emu.Monitor.Update)

	return
}

// Close the emulator.
func (emu *Emulator) Close() (err error) {
	emu.Cpu.SetUpdateCallback(nil)

	return
}

// Reset the CPU, then load the program image.
// Memory outside of the image keeps its contents.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Monitor.Reset()
	emu.Cpu.Reset()
	emu.Ticks = 0

	err = emu.Rom.Load(emu.Cpu)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d words at 0x%03x", len(emu.Rom.Data), emu.Rom.Origin)
	}

	return
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc()
	err = emu.Cpu.Step()
	if err != nil {
		err = &ErrRuntime{Pc: pc, Err: err}
		return
	}

	emu.Ticks++

	return
}

// Run ticks the emulator limit times, stopping at the first error.
func (emu *Emulator) Run(limit int) (err error) {
	for range limit {
		err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
