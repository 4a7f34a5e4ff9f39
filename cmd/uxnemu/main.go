// Command uxnemu is a graphical Uxn virtual machine: it loads a ROM into a
// fixed-size pixelgl window and dispatches mouse, keyboard, and screen
// refresh events to it.
package main

func main() {
	Execute()
}
