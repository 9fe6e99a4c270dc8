package term

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/op/go-logging"
	xterm "golang.org/x/term"
	"sigs.k8s.io/yaml"
)

// DefaultFormat is the go-logging format used when none is configured.
const DefaultFormat = "%{color}%{time:2006.01.02 15:04:05} " +
	"%{level:.4s}%{color:reset} " +
	"[%{module}] %{color:bold}%{shortfunc}%{color:reset} -> %{message}"

var colorVerb = regexp.MustCompile(`%\{color(:[a-z]+)?\}`)

// Logger is a leveled logger which threshold is fixed on construction.
type Logger struct {
	*logging.Logger
	level logging.Level
}

// Verbosity returns the logging threshold selected by the global debug flag.
func Verbosity(debug bool) logging.Level {
	if debug {
		return logging.DEBUG
	}

	return logging.INFO
}

// NewLogger creates Logger which drops records less severe than `level`.
func NewLogger(level logging.Level, options ...LoggerOption) *Logger {
	var args = &loggerArgs{
		stderr: os.Stderr,
		module: "vsysctl",
		format: DefaultFormat,
		color:  xterm.IsTerminal(int(os.Stderr.Fd())),
	}

	for i := range options {
		options[i](args)
	}

	format := args.format
	if !args.color {
		format = colorVerb.ReplaceAllString(format, "")
	}

	backend := logging.AddModuleLevel(logging.NewBackendFormatter(
		logging.NewLogBackend(args.stderr, "", 0),
		logging.MustStringFormatter(format),
	))
	backend.SetLevel(level, args.module)

	logger := logging.MustGetLogger(args.module)
	logger.SetBackend(backend)

	return &Logger{
		Logger: logger,
		level:  level,
	}
}

// Level returns the threshold Logger was created with.
func (l *Logger) Level() logging.Level {
	return l.level
}

// IsEnabledFor determines whether records of `level` pass the Logger threshold.
func (l *Logger) IsEnabledFor(level logging.Level) bool {
	return level <= l.level
}

// LogArguments writes `label` followed by indented rendering of `value`
// when `level` passes the Logger threshold.
func LogArguments(l *Logger, level logging.Level, label string, value interface{}) {
	if !l.IsEnabledFor(level) {
		return
	}

	var (
		msg    = fmt.Sprintf("%s:\n%s", label, FormatIndented(value, 1))
		caller = *l.Logger
	)

	// Records are attributed to the function calling LogArguments.
	caller.ExtraCalldepth++

	switch level {
	case logging.CRITICAL:
		caller.Critical(msg)
	case logging.ERROR:
		caller.Error(msg)
	case logging.WARNING:
		caller.Warning(msg)
	case logging.NOTICE:
		caller.Notice(msg)
	case logging.INFO:
		caller.Info(msg)
	default:
		caller.Debug(msg)
	}
}

// FormatIndented renders `value` and indents every line of it by `level` tabs.
// Strings are taken as is, anything else is rendered as YAML with sorted keys.
func FormatIndented(value interface{}, level int) string {
	text, ok := value.(string)
	if !ok {
		text = Render(value)
	}

	return Indent(text, level)
}

// Render returns deterministic YAML rendering of `value`.
func Render(value interface{}) string {
	out, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%+v", value)
	}

	return strings.TrimSuffix(string(out), "\n")
}

// Indent prefixes every line of `text` with `level` tab characters.
// Trailing newline does not open a new line, level of zero or less leaves `text` unchanged.
func Indent(text string, level int) string {
	if level <= 0 || len(text) == 0 {
		return text
	}

	var (
		b      strings.Builder
		prefix = strings.Repeat("\t", level)
	)

	for _, line := range strings.SplitAfter(text, "\n") {
		if len(line) == 0 {
			continue
		}

		b.WriteString(prefix)
		b.WriteString(line)
	}

	return b.String()
}
