package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"tasktable/internal/app"
	"tasktable/internal/commands"
	"tasktable/internal/config"
	"tasktable/internal/exitcode"
	"tasktable/internal/logging"
	"tasktable/internal/output"
)

// TUIFunc runs the interactive table on a session built from opts.
type TUIFunc func(ctx context.Context, opts ...app.Option) error

// Runner is the process entry point: it parses global flags, loads the
// configuration and runs the selected mode.
type Runner struct {
	Registry *commands.Registry
	TUI      TUIFunc

	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run executes args (without the program name) and returns the exit code.
//
// Modes: no command or "tui" opens the TUI; "shell" reads commands from
// Stdin; anything else runs a single command on a fresh session.
func (r *Runner) Run(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("tasktable", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configDir string
	var quiet, debug bool
	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(r.Stderr, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = cfg.Quiet || quiet
	cfg.Debug = debug

	logger := logging.New(r.Stderr, logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Debug:  cfg.Debug,
	})
	opts := []app.Option{
		app.WithLogger(logger),
		app.WithIDPolicy(cfg.Policy()),
	}

	rest := fs.Args()
	mode := ""
	if len(rest) > 0 {
		mode = rest[0]
	}
	logger.Debug("starting", "mode", mode, "config", cfg.Dir, "id_policy", cfg.Policy().String())

	switch mode {
	case "", "tui":
		if r.TUI == nil {
			fmt.Fprintln(r.Stderr, "error: interactive mode unavailable")
			return exitcode.UserError
		}
		if err := r.TUI(ctx, opts...); err != nil {
			fmt.Fprintf(r.Stderr, "error: %v\n", err)
			return exitcode.UserError
		}
		return exitcode.Success
	case "shell":
		d := r.dispatcher(cfg, opts)
		return d.Shell(ctx, r.Stdin, r.Stdout, r.Stderr, r.prompt(cfg, rest[1:]))
	default:
		if strings.HasPrefix(mode, "-") {
			fmt.Fprintf(r.Stderr, "error: unknown command: %s\n", mode)
			return exitcode.UserError
		}
		return r.dispatcher(cfg, opts).Run(ctx, rest, r.Stdout, r.Stderr)
	}
}

func (r *Runner) dispatcher(cfg *config.Config, opts []app.Option) *Dispatcher {
	registry := r.Registry
	if registry == nil {
		registry = commands.DefaultRegistry
	}
	session := app.New(append(opts, app.WithToast(output.NewToaster(r.Stdout, cfg.Quiet)))...)
	return NewDispatcher(registry, session, cfg)
}

// prompt returns the shell prompt. It is shown only when Stdin is a
// terminal; "shell --no-prompt" and quiet mode disable it.
func (r *Runner) prompt(cfg *config.Config, args []string) string {
	if cfg.Quiet || !isTerminal(r.Stdin) {
		return ""
	}
	for _, a := range args {
		if a == "--no-prompt" || a == "-no-prompt" {
			return ""
		}
	}
	return "> "
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
