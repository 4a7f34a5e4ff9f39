package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uxngo/uxngo/internal/console"
	"github.com/uxngo/uxngo/internal/datetime"
	"github.com/uxngo/uxngo/internal/file"
	"github.com/uxngo/uxngo/internal/uxn"
)

// runCmd runs the uxncli headless virtual machine against a ROM.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom` [input...]",
	Short: "run the uxncli emulator",
	Args:  cobra.MinimumNArgs(1),
	Run:   runUxncli,
}

func runUxncli(cmd *cobra.Command, args []string) {
	pathToROM := args[0]
	input := args[1:]

	rom, err := os.ReadFile(pathToROM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ROM: %s\n", pathToROM)
		os.Exit(1)
	}

	cpu := uxn.NewCPU()
	cpu.Debug = os.Stderr
	cpu.LoadROM(rom)

	consoleDevice := console.New(os.Stdout, os.Stderr)
	fileDevice := file.New()
	datetimeDevice := datetime.New()

	cpu.AttachDevice(0x1, consoleDevice)
	cpu.AttachDevice(0xa, fileDevice)
	cpu.AttachDevice(0xc, datetimeDevice)

	status, err := cpu.Run(uxn.InitVector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if status == uxn.StatusTerminate {
		return
	}

	feed := func(b byte) bool {
		consoleDevice.ProvideInput(b)
		status, err := cpu.Run(consoleDevice.Vector())
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return status == uxn.StatusTerminate
	}

	for _, in := range input {
		for i := 0; i < len(in); i++ {
			if feed(in[i]) {
				return
			}
		}
		if feed('\n') {
			return
		}
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			break
		}
		if feed(b) {
			return
		}
	}
}
