// Package console implements the exit prompt shown when the tool was
// started in a console window of its own.
package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Prompt is written before waiting for a key.
const Prompt = "Press any key to exit."

// soleConsole is replaced in tests.
var soleConsole = isSoleConsoleProcess

// PromptAndWaitIfSoleConsole writes Prompt to out and waits for one key on
// in when this process is the only one attached to its console. It does
// nothing otherwise.
func PromptAndWaitIfSoleConsole(in *os.File, out io.Writer) error {
	if !soleConsole() {
		return nil
	}
	fmt.Fprintln(out, Prompt)
	return WaitForKey(in)
}

// WaitForKey reads a single byte from in, switching a terminal to raw mode
// for the read so the key does not need to be followed by Enter.
func WaitForKey(in *os.File) error {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to set raw mode: %w", err)
		}
		defer term.Restore(fd, state)
	}

	var b [1]byte
	if _, err := in.Read(b[:]); err != nil && err != io.EOF {
		return fmt.Errorf("failed to read key: %w", err)
	}
	return nil
}
