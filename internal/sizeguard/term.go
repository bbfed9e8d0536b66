package sizeguard

import (
	"io"

	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var defaultTerm *Terminal

// DefaultTextPrinter is a printer with a context of language.
// It localizes schema validation messages.
var DefaultTextPrinter = message.NewPrinter(language.English)

func init() {
	defaultTerm = NewTerminal()
	// Do not output anything when not in the app, e.g. in tests.
	defaultTerm.DisableOutput()
}

// TextPrinter contains methods to print formatted text to the console.
type TextPrinter interface {
	// Println formats using the default formats for its operands and writes to the output.
	// Spaces are always added between operands and a newline is appended.
	Println(a ...any)
	// Printfln formats according to a format specifier and writes to the output.
	// A newline is appended.
	Printfln(format string, a ...any)
}

// ptermPrinter rebuilds the underlying pterm printer for every call,
// so it always writes to the current terminal output.
type ptermPrinter struct {
	t    *Terminal
	make func(w io.Writer) pterm.TextPrinter
}

func (p ptermPrinter) Println(a ...any)                 { p.make(p.t).Println(a...) }
func (p ptermPrinter) Printfln(format string, a ...any) { p.make(p.t).Printfln(format, a...) }

// Terminal prints formatted text to the console.
type Terminal struct {
	w       io.Writer // w is the current output.
	enabled bool      // enabled disables output to the console if set to false.
}

// NewTerminal creates a new instance of [Terminal].
func NewTerminal() *Terminal {
	return &Terminal{w: io.Discard, enabled: true}
}

// Term returns default [Terminal] to print application messages to the console.
func Term() *Terminal {
	return defaultTerm
}

// EnableOutput enables the output.
func (t *Terminal) EnableOutput() {
	pterm.EnableOutput()
	t.enabled = true
}

// DisableOutput disables the output.
func (t *Terminal) DisableOutput() {
	pterm.DisableOutput()
	t.enabled = false
}

// SetOutput sets an output to target writer.
func (t *Terminal) SetOutput(w io.Writer) {
	t.w = w
}

// Write implements [io.Writer] interface.
func (t *Terminal) Write(p []byte) (int, error) {
	if !t.enabled {
		return io.Discard.Write(p)
	}
	return t.w.Write(p)
}

// Println implements [TextPrinter] interface.
func (t *Terminal) Println(a ...any) { t.Basic().Println(a...) }

// Printfln implements [TextPrinter] interface.
func (t *Terminal) Printfln(format string, a ...any) { t.Basic().Printfln(format, a...) }

// Basic returns a printer without styles.
func (t *Terminal) Basic() TextPrinter {
	return ptermPrinter{t, func(w io.Writer) pterm.TextPrinter { return pterm.DefaultBasicText.WithWriter(w) }}
}

// Info returns a printer with an "info" prefix.
func (t *Terminal) Info() TextPrinter {
	return ptermPrinter{t, func(w io.Writer) pterm.TextPrinter { return pterm.Info.WithWriter(w) }}
}

// Warning returns a printer with a "warning" prefix.
func (t *Terminal) Warning() TextPrinter {
	return ptermPrinter{t, func(w io.Writer) pterm.TextPrinter { return pterm.Warning.WithWriter(w) }}
}

// Success returns a printer with a "success" prefix.
func (t *Terminal) Success() TextPrinter {
	return ptermPrinter{t, func(w io.Writer) pterm.TextPrinter { return pterm.Success.WithWriter(w) }}
}

// Error returns a printer with an "error" prefix.
func (t *Terminal) Error() TextPrinter {
	return ptermPrinter{t, func(w io.Writer) pterm.TextPrinter { return pterm.Error.WithWriter(w) }}
}
