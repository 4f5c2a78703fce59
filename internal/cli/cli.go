package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/klotskigraph/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("klotskigraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
klotskigraph - exhaustive state-space explorer for sliding-block puzzles.

Usage:
  klotskigraph [options] [BOARD_PATH]

Arguments:
  BOARD_PATH
    Path to a .hcl board definition file.

Options:
`)
		flagSet.PrintDefaults()
	}

	boardFlag := flagSet.String("board", "", "Path to the board definition file.")
	bFlag := flagSet.String("b", "", "Path to the board definition file (shorthand).")
	outFlag := flagSet.String("out", "", "Write the built graph to this file. Empty disables export.")
	formatFlag := flagSet.String("format", "json", "Export format. Options: 'json' or 'dot'.")
	servePortFlag := flagSet.Int("serve-port", 0, "Port for the HTTP graph server. 0 is disabled.")
	workersFlag := flagSet.Int("workers", 1, "Number of concurrent workers for frontier expansion.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *boardFlag != "" {
		path = *boardFlag
	} else if *bFlag != "" {
		path = *bFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Board path determined.", "path", path)

	if path == "" {
		slog.Debug("No board path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format := strings.ToLower(*formatFlag)
	if format != "json" && format != "dot" {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'json' or 'dot'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		BoardPath: path,
		OutPath:   *outFlag,
		OutFormat: format,
		ServePort: *servePortFlag,
		Workers:   *workersFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
