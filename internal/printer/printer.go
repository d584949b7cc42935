package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

// Printer writes status lines, warnings and errors go to errOut.
// Color follows the NO_COLOR convention of fatih/color.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	prefix string
}

func New(out, errOut io.Writer) *Printer {
	return &Printer{
		out:    out,
		errOut: errOut,
	}
}

// WithRunID tags every following line with the run identifier.
func (p *Printer) WithRunID(runID string) *Printer {
	return &Printer{
		out:    p.out,
		errOut: p.errOut,
		prefix: "[" + runID + "] ",
	}
}

func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}

	green.Fprint(p.out, p.prefix+msg)
}

func (p *Printer) Info(format string, a ...any) {
	fmt.Fprint(p.out, p.prefix+fmt.Sprintf(format, a...))
}

func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		msg = "⚠️  " + msg
	}

	yellow.Fprint(p.errOut, p.prefix+msg)
}

// Error prints title, explanation and suggestions to errOut and returns
// an error carrying the title only.
func (p *Printer) Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(p.errOut, "%s%s\n\n", p.prefix, title)

	fmt.Fprintf(p.errOut, "%s\n", explanation)

	if len(suggestions) > 0 {
		fmt.Fprintf(p.errOut, "\n")

		if len(suggestions) == 1 {
			fmt.Fprintf(p.errOut, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(p.errOut, "Either:\n")

			for i, suggestion := range suggestions {
				fmt.Fprintf(p.errOut, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	return fmt.Errorf("%s", title)
}
