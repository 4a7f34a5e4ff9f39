// Command uxncli is a headless Uxn virtual machine: it loads a ROM, runs the
// init vector, and streams console input from the command line and stdin.
package main

func main() {
	Execute()
}
