package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const DeletePrompt = "Delete this employee?"

// Confirm asks a yes/no question; anything but y or yes is a no.
func Confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
