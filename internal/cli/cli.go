package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/pathtree/internal/app"
	"github.com/specialistvlad/pathtree/internal/render"
	"github.com/spf13/pflag"
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

// EnvPrefix prefixes every environment variable that can provide a flag default.
const EnvPrefix = "PATHTREE_"

// envFlags lists the flags that fall back to PATHTREE_<NAME> when not given
// on the command line.
var envFlags = []string{"format", "meta", "root", "color", "diff", "history", "log-format", "log-level"}

// LookupEnv matches os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flag defaults come from the process environment first and then from the
// env file.
func Parse(args []string, output io.Writer, lookupEnv LookupEnv) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("pathtree", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pathtree - builds a node tree from slash-delimited path lines.

Usage:
  pathtree [options] INPUT...

Arguments:
  INPUT
    A file with one path per line, e.g. /Request/Items[]/Item#id.
    Use '-' to read from stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.StringP("format", "f", string(render.FormatText), "Output format. Options: "+formatNames()+".")
	metaFlag := flagSet.StringSliceP("meta", "m", nil, "HCL file or directory with meta rules. Repeatable.")
	rootFlag := flagSet.String("root", "/", "Name of the root node.")
	colorFlag := flagSet.String("color", app.ColorAuto, "Colorize text output. Options: 'auto', 'always', 'never'.")
	diffFlag := flagSet.Bool("diff", false, "Print a diff of the tree after every input.")
	historyFlag := flagSet.Int("history", 16, "Number of tree revisions to keep.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	envFileFlag := flagSet.String("env-file", ".env", "File with PATHTREE_* defaults. A missing default file is ignored.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	fileEnv, err := godotenv.Read(*envFileFlag)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || flagSet.Changed("env-file") {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("failed to read env file: %v", err)}
		}
		fileEnv = nil
	}
	if err := applyEnv(flagSet, lookupEnv, fileEnv); err != nil {
		return nil, false, err
	}

	inputs := flagSet.Args()
	if len(inputs) == 0 {
		slog.Debug("No inputs provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format, err := render.ParseFormat(*formatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
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
		Inputs:    inputs,
		MetaPaths: *metaFlag,
		Format:    format,
		RootName:  *rootFlag,
		Color:     strings.ToLower(*colorFlag),
		Diff:      *diffFlag,
		History:   *historyFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// applyEnv sets every unset flag in envFlags from the environment.
func applyEnv(flagSet *pflag.FlagSet, lookupEnv LookupEnv, fileEnv map[string]string) error {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	for _, name := range envFlags {
		if flagSet.Changed(name) {
			continue
		}
		key := EnvPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		value, ok := lookupEnv(key)
		if !ok {
			value, ok = fileEnv[key]
		}
		if !ok {
			continue
		}
		if err := flagSet.Set(name, value); err != nil {
			return &ExitError{Code: 2, Message: fmt.Sprintf("invalid value %q in %s: %v", value, key, err)}
		}
		slog.Debug("Flag default taken from environment.", "flag", name, "env", key)
	}
	return nil
}

func formatNames() string {
	var names []string
	for _, f := range render.Formats() {
		names = append(names, "'"+string(f)+"'")
	}
	return strings.Join(names, ", ")
}
