package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"
)

var (
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	SetColor(supportscolor.Stderr().SupportsColor)
}

// SetColor turns coloured error output on or off, overriding terminal detection.
func SetColor(enabled bool) {
	if enabled {
		red, reset = "\033[31m", "\033[0m"
		return
	}
	red, reset = "", ""
}

// Banner is printed before anything else on every run.
const Banner = "=== File Reader Program ===\nThis program reads and displays the contents of a text file.\n\n"

// Divider frames the numbered content block.
const Divider = "----------------------------------------"

// PrintBanner writes the program banner.
func PrintBanner(w io.Writer) {
	_, _ = io.WriteString(w, Banner)
}

// PrintError writes a single "Error..." line, colouring the leading "Error" when supported.
// msg is the full message, e.g. "Error: File 'x' does not exist."
func PrintError(w io.Writer, msg string) {
	if rest, ok := strings.CutPrefix(msg, "Error"); ok {
		_, _ = fmt.Fprintf(w, "%sError%s%s\n", red, reset, rest)
		return
	}
	_, _ = fmt.Fprintln(w, msg)
}

// PrintLine writes one numbered content line.
func PrintLine(w io.Writer, number int, text string) {
	_, _ = fmt.Fprintf(w, "%4d | %s\n", number, text)
}
