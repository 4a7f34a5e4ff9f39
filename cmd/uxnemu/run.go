package main

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"

	"github.com/uxngo/uxngo/internal/console"
	"github.com/uxngo/uxngo/internal/controller"
	"github.com/uxngo/uxngo/internal/datetime"
	"github.com/uxngo/uxngo/internal/display"
	"github.com/uxngo/uxngo/internal/file"
	"github.com/uxngo/uxngo/internal/mouse"
	"github.com/uxngo/uxngo/internal/screen"
	"github.com/uxngo/uxngo/internal/uxn"
)

const (
	initialWidth  uint16 = 512
	initialHeight uint16 = 320
	refreshRate          = 60
)

// runCmd runs the uxnemu graphical virtual machine against a ROM.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the uxnemu emulator",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pixelgl.Run(func() { runUxnemu(args[0]) })
	},
}

func runUxnemu(pathToROM string) {
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
	screenDevice := screen.NewDevice(initialWidth, initialHeight)
	controllerDevice := controller.New()
	mouseDevice := mouse.New()

	cpu.AttachDevice(0x1, consoleDevice)
	cpu.AttachDevice(0x2, screenDevice)
	cpu.AttachDevice(0x8, controllerDevice)
	cpu.AttachDevice(0x9, mouseDevice)
	cpu.AttachDevice(0xa, fileDevice)
	cpu.AttachDevice(0xc, datetimeDevice)

	win, err := display.NewWindow("uxnemu", initialWidth, initialHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	terminated := false
	runVector := func(vector uint16) {
		if terminated || vector == 0 {
			return
		}
		status, err := cpu.Run(vector)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			terminated = true
			return
		}
		if status == uxn.StatusTerminate {
			terminated = true
		}
	}

	runVector(uxn.InitVector)

	var lastX, lastY uint16
	haveLastMouse := false

	ticker := time.NewTicker(time.Second / refreshRate)
	defer ticker.Stop()

	for range ticker.C {
		if terminated || win.Closed() {
			break
		}

		pressed, released := win.PollController()
		for _, b := range pressed {
			controllerDevice.NotifyButtonDown(b)
			runVector(controllerDevice.Vector())
		}
		for _, b := range released {
			controllerDevice.NotifyButtonUp(b)
			runVector(controllerDevice.Vector())
		}
		for _, c := range win.PollTypedKeys() {
			controllerDevice.NotifyKeyPress(c)
			runVector(controllerDevice.Vector())
		}

		x, y, mpressed, mreleased, sx, sy := win.PollMouse()
		moved := !haveLastMouse || x != lastX || y != lastY
		lastX, lastY, haveLastMouse = x, y, true
		if moved {
			mouseDevice.NotifyCursorPosition(x, y)
			runVector(mouseDevice.Vector())
		}
		for _, b := range mpressed {
			mouseDevice.NotifyButtonDown(b)
			runVector(mouseDevice.Vector())
		}
		for _, b := range mreleased {
			mouseDevice.NotifyButtonUp(b)
			runVector(mouseDevice.Vector())
		}
		if sx != 0 || sy != 0 {
			mouseDevice.NotifyScroll(sx, sy)
			runVector(mouseDevice.Vector())
		}

		if screenDevice.GetDrawRequired(cpu) {
			screenDevice.Draw(win.Blit)
		}

		win.Update()
	}
}
