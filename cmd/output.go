package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// styled reports whether reports should be colourised.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// field writes one "label value" report line.
func field(w io.Writer, label string, value interface{}) {
	if styled(w) {
		fmt.Fprintln(w, labelStyle.Render(label)+valueStyle.Render(fmt.Sprint(value)))
		return
	}
	fmt.Fprintf(w, "%-10s%v\n", label, value)
}

func warn(w io.Writer, msg string) {
	if styled(w) {
		fmt.Fprintln(w, warnStyle.Render(msg))
		return
	}
	fmt.Fprintln(w, msg)
}
