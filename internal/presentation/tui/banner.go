package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`     _       _                 _   `, "#34d399"},
	{`    / \   __| |_   _____ _ __ | |_ `, "#10b981"},
	{`   / _ \ / _` + "`" + ` \ \ / / _ \ '_ \| __|`, "#059669"},
	{`  / ___ \ (_| |\ V /  __/ | | | |_ `, "#f87171"},
	{` /_/   \_\__,_| \_/ \___|_| |_|\__|`, "#ef4444"},
}

// PrintBanner writes the advent banner to w, colored when the terminal supports it.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
