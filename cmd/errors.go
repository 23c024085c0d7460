package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// PrintError prints a user-friendly message. If the --verbose flag is set,
// the full technical error is printed instead.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", technicalErr)
	} else {
		fmt.Fprintln(os.Stderr, "Error:", userMsg)
	}
}
