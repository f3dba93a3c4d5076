package cli

import (
	"fmt"

	"github.com/aretw0/advent/pkg/adapters/file"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/network"
)

// RunSolve handles the 'solve' command.
func RunSolve(opts SolveOptions) error {
	cfg, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}
	logger, err := createLogger(cfg)
	if err != nil {
		return err
	}

	ctx := NewSignalContext(opts.baseContext())
	defer ctx.Cancel()

	eng, closer, err := createEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	day := opts.Day
	if day == 0 {
		day = network.Day
	}

	var answers []domain.Answer
	switch {
	case opts.All:
		answers, err = eng.SolveAll(ctx)
		if err == nil && len(answers) == 0 {
			return fmt.Errorf("no inputs found in %s", cfg.InputDir)
		}
	case opts.Input != "":
		var lines []string
		if lines, err = file.ReadLines(opts.Input); err != nil {
			return err
		}
		var answer domain.Answer
		if answer, err = eng.Solve(ctx, day, lines); err == nil {
			answers = append(answers, answer)
		}
	default:
		var answer domain.Answer
		if answer, err = eng.SolveDay(ctx, day); err == nil {
			answers = append(answers, answer)
		}
	}
	if err != nil {
		if sig := ctx.Signal(); sig != nil {
			printSystemMessage("Interrupted by %v", sig)
		}
		return err
	}

	mode := resolveOutputMode(opts.out(), opts.JSON, opts.Pretty, cfg.Pretty)
	return writeAnswers(opts.out(), mode, answers, eng.Puzzles())
}
