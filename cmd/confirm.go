package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptConfirmation asks the user to re-type name as a deletion token.
// Without a terminal on both ends there is nobody to ask, so it returns an
// empty token and the deletion fails its confirmation check instead of
// blocking on stdin.
func promptConfirmation(name string) string {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ""
	}

	fmt.Printf("Please confirm deletion of %q by re-typing the list name: ", name)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
