package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
)

// printer renders results, colored unless disabled.
type printer struct {
	w       io.Writer
	colored bool
}

func (p printer) paint(c color.Color, s string) string {
	if !p.colored {
		return s
	}

	return c.Sprint(s)
}

// line prints "label: value" with the label highlighted.
func (p printer) line(label, value string) {
	fmt.Fprintf(p.w, "%s: %s\n", p.paint(color.Cyan, label), value)
}

// values prints a bare space-separated list.
func (p printer) values(vs []string) {
	fmt.Fprintln(p.w, p.paint(color.Green, strings.Join(vs, " ")))
}

// list formats vs as "[a b c]".
func list(vs []string) string {
	return "[" + strings.Join(vs, " ") + "]"
}
