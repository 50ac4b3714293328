package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Mode selects when labels are colored.
type Mode int

const (
	// Auto colors a stream only when it is a terminal and NO_COLOR is unset.
	Auto Mode = iota
	// Always colors both streams.
	Always
	// Never writes plain labels.
	Never
)

// Console prints labelled status lines. Success and Info go to out, Error
// goes to errOut.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	success *color.Color
	info    *color.Color
	err     *color.Color
}

// New returns a Console writing to out and errOut. Each stream decides on
// its own whether it gets colored labels.
func New(out, errOut io.Writer, mode Mode) *Console {
	outColor := colorize(out, mode)
	return &Console{
		out:     out,
		errOut:  errOut,
		success: label(outColor, color.FgGreen, color.Bold),
		info:    label(outColor, color.FgHiBlue, color.Bold),
		err:     label(colorize(errOut, mode), color.FgRed, color.Bold),
	}
}

func label(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func colorize(w io.Writer, mode Mode) bool {
	switch mode {
	case Always:
		return true
	case Never:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Success reports a finished compile.
func (c *Console) Success(format string, args ...any) {
	c.print(c.out, c.success, "Success:", format, args)
}

// Info reports progress.
func (c *Console) Info(format string, args ...any) {
	c.print(c.out, c.info, "Info:", format, args)
}

// Error reports a failure.
func (c *Console) Error(format string, args ...any) {
	c.print(c.errOut, c.err, "Error:", format, args)
}

func (c *Console) print(w io.Writer, lc *color.Color, name, format string, args []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(w, "%s %s\n", lc.Sprint(name), fmt.Sprintf(format, args...))
}
