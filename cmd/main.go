// Command lispy is the command-line entry point for the interpreter: it
// wires CLI flag parsing to the driver package and reports the process
// exit code.
package main

import (
	"os"

	"github.com/jfpedroza/lispy/driver"
)

func main() {
	os.Exit(driver.Run(os.Args[1:]))
}
