package graphic

import (
	"os"
	"strings"
)

// normalizeTerminal looks for incompatibilities in the terminal configuration
// with termbox and makes some adjustments to avoid problems.
//
// Returns a function that restores the terminal configuration to its original
// state.
func normalizeTerminal() (func(), error) {
	prevTERMINFO, hadTERMINFO := os.LookupEnv("TERMINFO")

	if hadTERMINFO && strings.HasPrefix(os.Getenv("TERM"), "tmux") {
		// Some combinations of TERMINFO with a tmux TERM make termbox fail.
		if err := os.Unsetenv("TERMINFO"); err != nil {
			return nil, err
		}
	}

	restore := func() {
		if hadTERMINFO {
			os.Setenv("TERMINFO", prevTERMINFO)
		}
	}

	return restore, nil
}
