// Package greeting holds the fixed line printed by the hello CLI.
package greeting

import (
	"fmt"
	"io"
)

// Text is the greeting without its line terminator.
const Text = "Hello, World!"

// Line returns the greeting followed by a single newline.
func Line() string {
	return Text + "\n"
}

// Write emits the greeting line to w in one write.
func Write(w io.Writer) error {
	if _, err := io.WriteString(w, Line()); err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	return nil
}
