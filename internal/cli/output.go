package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/advent/internal/presentation/tui"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/registry"
	"golang.org/x/term"
)

type outputMode int

const (
	outputPlain outputMode = iota
	outputJSON
	outputPretty
)

func resolveOutputMode(w io.Writer, jsonMode, pretty, prettyConfigured bool) outputMode {
	switch {
	case jsonMode:
		return outputJSON
	case pretty:
		return outputPretty
	case prettyConfigured && isTerminal(w):
		return outputPretty
	}
	return outputPlain
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeAnswers prints answers in the selected mode. A single JSON answer is
// written as an object, several as an array.
func writeAnswers(w io.Writer, mode outputMode, answers []domain.Answer, puzzles []registry.Puzzle) error {
	switch mode {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(answers) == 1 {
			return enc.Encode(answers[0])
		}
		return enc.Encode(answers)

	case outputPretty:
		titles := make(map[int]string, len(puzzles))
		for _, p := range puzzles {
			titles[p.Day] = p.Title
		}
		out, err := tui.RenderReport(answers, titles)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}

	for i, a := range answers {
		if len(answers) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "day %d\n", a.Day)
		}
		for _, line := range a.Lines() {
			fmt.Fprintln(w, line)
		}
	}
	return nil
}
