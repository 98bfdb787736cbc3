package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// EnvLogLevel names the environment variable consulted when --log-level is
// not given.
const EnvLogLevel = "SEQAUG_LOG_LEVEL"

const defaultLogLevel = "warn"

// errUsage marks errors caused by bad input rather than by the operation.
var errUsage = errors.New("usage")

// command is one sub-command: it parses its own flags from args.
type command func(env *env, args []string) error

// env is the state shared by every sub-command of one Run.
type env struct {
	out    printer
	errOut io.Writer
	log    zerolog.Logger
}

var commands = map[string]command{
	"range": runRange,
	"split": runSplit,
	"match": runMatch,
}

// Run executes the command line args (without the program name) and returns
// the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("seqaug", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	logLevel := fs.String("log-level", "", "log level: trace, debug, info, warn, error (env "+EnvLogLevel+")")
	noColor := fs.Bool("no-color", false, "disable colored output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: seqaug [--log-level L] [--no-color] <range|split|match> [flags] [values...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	logger, err := newLogger(stderr, *logLevel, *noColor)
	if err != nil {
		fmt.Fprintln(stderr, "seqaug:", err)
		return ExitUsage
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return ExitUsage
	}
	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "seqaug: unknown command %q\n", name)
		fs.Usage()
		return ExitUsage
	}

	e := &env{
		out:    printer{w: stdout, colored: !*noColor},
		errOut: stderr,
		log:    logger.With().Str("command", name).Logger(),
	}
	e.log.Debug().Strs("args", fs.Args()[1:]).Msg("running command")

	if err := cmd(e, fs.Args()[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintln(stderr, "seqaug:", err)
		if errors.Is(err, errUsage) {
			return ExitUsage
		}
		return ExitFailure
	}

	return ExitOK
}

// newLogger builds the console logger. An explicit level wins over the
// environment; an empty result falls back to warn.
func newLogger(w io.Writer, level string, noColor bool) (zerolog.Logger, error) {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	if level == "" {
		level = defaultLogLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cw := zerolog.ConsoleWriter{Out: w, NoColor: noColor}

	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger(), nil
}

// newFlagSet returns a sub-command flag set writing usage to e.errOut.
func (e *env) newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(e.errOut)

	return fs
}

// usagef wraps a formatted message as a usage error.
func usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}
