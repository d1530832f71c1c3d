package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/tickdown/internal/app"
	"github.com/vk/tickdown/internal/font"
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

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or
// an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("tickdown", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
tickdown - A large-font terminal countdown timer.

Usage:
  tickdown [options] DURATION

Arguments:
  DURATION
    How long to count down for. One of:
      - a duration string            (1h30m, 25m, 15m30s)
      - an absolute datetime         (2026-01-25T14:00)
      - a time of day, meaning its
        next occurrence              (T14:00)

Options:
`)
		flagSet.PrintDefaults()
	}

	defaultFont := os.Getenv("TIMER_FONT")
	if defaultFont == "" {
		defaultFont = font.DefaultName
	}

	messageFlag := flagSet.String("message", "", "Message to display under the timer.")
	mFlag := flagSet.String("m", "", "Message to display under the timer (shorthand).")
	noBellFlag := flagSet.Bool("no-bell", false, "Do not ring the terminal bell once the timer is over.")
	fontFlag := flagSet.String("font", defaultFont, "Font used to render the timer (overrides the TIMER_FONT env var).")
	fontsPathFlag := flagSet.String("fonts-path", "", "Directory of custom font manifests (*.hcl), searched recursively.")
	soundFlag := flagSet.String("sound", "", "Path to a wav file to play once the timer is over.")
	listFontsFlag := flagSet.Bool("list-fonts", false, "List available fonts and exit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "error", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	message := *messageFlag
	if message == "" {
		message = *mFlag
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

	durationArg := strings.TrimSpace(flagSet.Arg(0))
	if durationArg == "" && !*listFontsFlag {
		slog.Debug("No duration provided, printing usage.")
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "please specify a timer duration"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Duration:  durationArg,
		Message:   message,
		FontName:  *fontFlag,
		FontsPath: *fontsPathFlag,
		SoundPath: *soundFlag,
		Bell:      !*noBellFlag,
		ListFonts: *listFontsFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
