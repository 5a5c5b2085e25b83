package ux

import (
	"fmt"
	"io"
	"os"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Out is where user-facing messages go. Tests may replace it.
var Out io.Writer = os.Stdout

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// Parsed prints how much of the plan was recognized.
func Parsed(path string, weeks, readings int) {
	if weeks > 0 {
		fmt.Fprintf(Out, "%s[%s]%s  parsed %s%s%s: %d weeks, %d readings\n",
			Dim, timestamp(), Reset, Bold, path, Reset, weeks, readings)
		return
	}
	fmt.Fprintf(Out, "%s[%s]%s  parsed %s%s%s: %d readings\n",
		Dim, timestamp(), Reset, Bold, path, Reset, readings)
}

// Enriched prints the outcome of memory-verse fetching.
func Enriched(fetched, requested, failed int) {
	color := Green
	if failed > 0 {
		color = Yellow
	}
	fmt.Fprintf(Out, "%s[%s]%s  %sfetched %d/%d memory verses%s",
		Dim, timestamp(), Reset, color, fetched, requested, Reset)
	if failed > 0 {
		fmt.Fprintf(Out, " %s(%d failed, exported without text)%s", Yellow, failed, Reset)
	}
	fmt.Fprintln(Out)
}

// Success prints a final success message.
func Success(events int, path string) {
	fmt.Fprintf(Out, "%s✔%s successfully generated calendar file at %s%s%s%s (%d events)\n",
		Green, Reset, Bold, Green, path, Reset, events)
}

// Fail prints an error message to stderr.
func Fail(err error) {
	fmt.Fprintf(os.Stderr, "%s✖%s Encountered error while processing: %v\n", Red, Reset, err)
}
