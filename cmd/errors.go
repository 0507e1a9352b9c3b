package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/CrestNiraj12/terminalconfess/domain"
	"github.com/CrestNiraj12/terminalconfess/infra/api"
)

func outputErrorAndExit(err error) {
	writeError(os.Stderr, err)
	os.Exit(1)
}

// writeError prints err in red with the backend message, if any, on its own
// line.
func writeError(w io.Writer, err error) {
	red := color.New(color.FgHiRed, color.Bold)
	fmt.Fprintln(w, red.Sprint("🚨 ")+err.Error())
	if errors.Is(err, domain.ErrUnauthorized) {
		fmt.Fprintln(w, "Run `terminalconfess logout` and sign in again.")
		return
	}
	if msg := api.UserMessage(err, ""); msg != "" {
		fmt.Fprintln(w, color.New(color.FgHiYellow).Sprint(msg))
	}
}
