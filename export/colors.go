package export

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
	"github.com/mattn/go-isatty"
)

const escape = "\x1b"

// Colors makes YAML output carry ANSI colors. JSON output is never colored.
func Colors(v bool) Option {
	return func(es *encState) { es.colors = v }
}

// IsTerminal reports whether w is a terminal, for deciding on Colors.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func colorProperty(attr color.Attribute) func() *printer.Property {
	return func() *printer.Property {
		return &printer.Property{
			Prefix: fmt.Sprintf("%s[%dm", escape, attr),
			Suffix: fmt.Sprintf("%s[%dm", escape, color.Reset),
		}
	}
}

func colorize(yml []byte) string {
	p := printer.Printer{
		MapKey: colorProperty(color.FgHiCyan),
		String: colorProperty(color.FgHiGreen),
		Number: colorProperty(color.FgHiMagenta),
		Bool:   colorProperty(color.FgHiYellow),
	}
	return p.PrintTokens(lexer.Tokenize(string(yml)))
}
