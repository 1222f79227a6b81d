package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Input is where Confirm reads its answer from. Tests swap it out.
var Input io.Reader = os.Stdin

// Confirm asks a yes/no question and returns true only on an explicit
// "y" or "yes" answer. Anything else, including EOF, declines.
func Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)

	line, err := bufio.NewReader(Input).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
