package observability

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

const (
	colorReset    = "\033[0m"
	colorNeonCyan = "\033[96m"
)

// termMu serializes log writes and banner output on the terminal.
var termMu sync.Mutex

func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	return w
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ------------------------------------------------------------
// TermWriter – a mutex-guarded io.Writer for log output.
// ------------------------------------------------------------

type termWriter struct {
	out io.Writer
}

func (tw termWriter) Write(p []byte) (n int, err error) {
	termMu.Lock()
	defer termMu.Unlock()
	return tw.out.Write(p)
}

// NewTermWriter returns an io.Writer on stderr suitable for log.SetOutput().
func NewTermWriter() io.Writer {
	return termWriter{out: os.Stderr}
}

// ------------------------------------------------------------
// Banner
// ------------------------------------------------------------

const banner = `
    ____  _______       ______  ____
   / __ \/ ____/ |     / / __ \/ __ \
  / /_/ / __/  | | /| / / / / / / / /
 / _, _/ /___  | |/ |/ / /_/ / /_/ /
/_/ |_/_____/  |__/|__/\____/\____/

      >> PLAN . EXECUTE . SOLVE <<
`

// PrintBanner writes the banner centered to the terminal width. Nothing is
// written when stdout is not a terminal, so piped output stays clean.
func PrintBanner(w io.Writer) {
	if !IsTerminal(os.Stdout) {
		return
	}
	width := termWidth()

	termMu.Lock()
	defer termMu.Unlock()
	for _, l := range strings.Split(banner, "\n") {
		padding := (width - len(l)) / 2
		if padding < 0 {
			padding = 0
		}
		fmt.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", padding), colorNeonCyan+l, colorReset)
	}
}
