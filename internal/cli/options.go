package cli

import (
	"context"
	"io"
	"os"
)

// Options holds the flags shared by every command.
type Options struct {
	ConfigPath string
	InputDir   string // overrides input_dir when set
	Debug      bool
	Stdout     io.Writer
	Context    context.Context
	Extra      map[string]any // further config overrides, applied last
}

func (o Options) baseContext() context.Context {
	if o.Context == nil {
		return context.Background()
	}
	return o.Context
}

func (o Options) out() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

// overrides turns explicitly set flags into config overrides.
func (o Options) overrides() map[string]any {
	m := map[string]any{}
	if o.InputDir != "" {
		m["input_dir"] = o.InputDir
	}
	if o.Debug {
		m["log_level"] = "debug"
	}
	for k, v := range o.Extra {
		m[k] = v
	}
	return m
}

// SolveOptions configures the solve command.
type SolveOptions struct {
	Options
	Day    int
	All    bool
	Input  string // explicit input file, used instead of the input dir
	JSON   bool
	Pretty bool
}

// GraphOptions configures the graph command.
type GraphOptions struct {
	Options
	Input   string
	Walkers bool
}

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	Options
	Input string
}

// ServeOptions configures the serve command.
type ServeOptions struct {
	Options
	Port string
}

// MCPOptions configures the mcp command.
type MCPOptions struct {
	Options
	Transport string
	Port      int
}
