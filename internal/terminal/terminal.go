// Package terminal provides utilities for terminal operations such as measuring
// width, detecting interactive sessions and clearing prompts after use.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"atomicgo.dev/cursor"
	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size cannot be read.
const DefaultWidth = 80

// Width returns the column count of f, or DefaultWidth.
func Width(f *os.File) int {
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return width
	}
	return DefaultWidth
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// LinesFor returns how many terminal rows textLength characters occupy at
// the given width, plus the row the cursor lands on after Enter.
func LinesFor(textLength, width int) int {
	if width <= 0 {
		width = DefaultWidth
	}
	lines := (textLength + width - 1) / width
	if lines < 1 {
		lines = 1 // At minimum, we have 1 line
	}
	return lines + 1
}

// ClearPreviousLines clears text that was previously printed, such as a prompt
// and the user's answer to it.
func ClearPreviousLines(textLength int) {
	n := LinesFor(textLength, Width(os.Stdout))
	cursor.StartOfLine()
	cursor.ClearLine()
	cursor.ClearLinesUp(n - 1)
}

// Pauser waits for the user between lessons.
type Pauser struct {
	In     io.Reader
	Out    io.Writer
	Prompt string
	// Clear erases the prompt afterwards; nil leaves it on screen.
	Clear func(textLength int)

	reader *bufio.Reader
}

// NewPauser returns a Pauser bound to the process's stdin and stdout.
func NewPauser() *Pauser {
	return &Pauser{
		In:     os.Stdin,
		Out:    os.Stdout,
		Prompt: "Press Enter to continue...",
		Clear:  ClearPreviousLines,
	}
}

// Wait prints the prompt and blocks until a newline or EOF is read.
func (p *Pauser) Wait() error {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	if _, err := fmt.Fprint(p.Out, p.Prompt); err != nil {
		return err
	}
	answer, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	if p.Clear != nil {
		p.Clear(len(p.Prompt) + len(answer))
	}
	return nil
}
