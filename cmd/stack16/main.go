// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/stack16/emulator"
	"github.com/ezrec/stack16/io"
)

func main() {
	var image string
	var steps int
	var origin uint
	var monitor bool
	var listing bool
	var verbose bool

	flag.StringVar(&image, "i", "-", "Hex program image")
	flag.IntVar(&steps, "n", 1, "Instructions to execute")
	flag.UintVar(&origin, "o", 0, "Load address of the image")
	flag.BoolVar(&monitor, "m", false, "Print the monitor after every instruction")
	flag.BoolVar(&listing, "l", false, "Print a listing of the image, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if origin > 0xfff {
		log.Fatalf("%v: origin 0x%x outside memory", os.Args[0], origin)
	}

	emu := emulator.NewEmulator()
	defer emu.Close()

	emu.Verbose = verbose
	emu.Rom.Origin = uint16(origin)

	if image == "-" {
		_, err := emu.Rom.ReadFrom(os.Stdin)
		if err != nil {
			log.Fatalf("stdin: %v", err)
		}
	} else {
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		_, err = emu.Rom.ReadFrom(inf)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	}

	if listing {
		err := io.Listing(os.Stdout, emu.Rom.Origin, emu.Rom.Data)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	err := emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}

	for range steps {
		err = emu.Tick()
		if err != nil {
			fmt.Print(emu.Cpu.String())
			log.Fatal(err)
		}
		if monitor {
			fmt.Print(emu.Monitor.String())
		}
	}

	fmt.Print(emu.Cpu.String())
}
