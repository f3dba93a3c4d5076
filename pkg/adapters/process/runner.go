package process

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/registry"
)

// ErrNoResult is returned when a solver exits cleanly without printing both parts.
var ErrNoResult = errors.New("solver printed no result")

// Runner executes external solver programs.
// Only registered commands run; input is never turned into command arguments.
type Runner struct {
	registry map[int]SolverConfig
	baseDir  string
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithRegistry populates the allow-list from a loaded config.
func WithRegistry(solvers map[int]SolverConfig) RunnerOption {
	return func(r *Runner) {
		for day, s := range solvers {
			s.Day = day
			r.registry[day] = s
		}
	}
}

// WithBaseDir sets the working directory for executed processes.
func WithBaseDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// NewRunner creates a new Process Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: make(map[int]SolverConfig),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a trusted command for day to the allow-list.
func (r *Runner) Register(day int, command string, args ...string) {
	r.registry[day] = SolverConfig{
		Day:     day,
		Command: command,
		Args:    args,
	}
}

// Puzzles exposes every registered solver as a registry entry, ordered by day.
func (r *Runner) Puzzles() []registry.Puzzle {
	out := make([]registry.Puzzle, 0, len(r.registry))
	for day, s := range r.registry {
		title := s.Title
		if title == "" {
			title = s.Command
		}
		out = append(out, registry.Puzzle{
			Day:   day,
			Title: title,
			Solve: func(ctx context.Context, lines []string) (domain.Answer, error) {
				return r.Solve(ctx, day, lines)
			},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// Solve runs the solver registered for day with lines on its stdin.
// The day is passed as ADVENT_DAY.
func (r *Runner) Solve(ctx context.Context, day int, lines []string) (domain.Answer, error) {
	s, ok := r.registry[day]
	if !ok {
		return domain.Answer{}, fmt.Errorf("%w: no external solver for day %d", domain.ErrDayNotFound, day)
	}

	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	cmd.Dir = r.baseDir

	env := []string{fmt.Sprintf("ADVENT_DAY=%d", day)}
	for k, v := range s.Environment {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = append(cmd.Environ(), env...)

	var stdin bytes.Buffer
	for _, line := range lines {
		stdin.WriteString(line)
		stdin.WriteByte('\n')
	}
	cmd.Stdin = &stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Answer{}, ctxErr
		}
		return domain.Answer{}, fmt.Errorf("execution failed: %w. Stderr: %s", err, strings.TrimSpace(stderr.String()))
	}

	answer, err := ParseOutput(stdout.String())
	if err != nil {
		return domain.Answer{}, err
	}
	answer.Day = day
	return answer, nil
}

// ParseOutput reads an answer from solver output: either a JSON object with
// part_one and part_two, or the two "result (part one): N" lines.
func ParseOutput(output string) (domain.Answer, error) {
	trimmed := strings.TrimSpace(output)

	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		var answer domain.Answer
		if err := json.Unmarshal([]byte(trimmed), &answer); err != nil {
			return domain.Answer{}, fmt.Errorf("failed to parse solver output: %w", err)
		}
		return answer, nil
	}

	var answer domain.Answer
	var seenOne, seenTwo bool
	for _, line := range strings.Split(trimmed, "\n") {
		label, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		var target *uint64
		switch strings.TrimSpace(label) {
		case "result (part one)":
			target, seenOne = &answer.PartOne, true
		case "result (part two)":
			target, seenTwo = &answer.PartTwo, true
		default:
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return domain.Answer{}, fmt.Errorf("failed to parse solver output %q: %w", line, err)
		}
		*target = n
	}
	if !seenOne || !seenTwo {
		return domain.Answer{}, ErrNoResult
	}
	return answer, nil
}
