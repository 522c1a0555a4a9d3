// internal/logging/logging.go
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// DefaultPath is the fixed append-only provisioning log.
const DefaultPath = "/var/log/hostprep.log"

const fieldOutcome = "outcome"

const (
	outcomeSuccess = "success"
	outcomeSkip    = "skip"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Logger writes "[timestamp] [LEVEL] message" lines to the log file and
// mirrors every entry to the console with the usual status symbols.
type Logger struct {
	rus    *logrus.Logger
	closer io.Closer
}

func New(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := NewWithOutput(f, os.Stdout)
	l.closer = f
	return l, nil
}

// NewWithOutput builds a logger over arbitrary writers. Tests use this to
// capture both the file stream and the console mirror.
func NewWithOutput(file io.Writer, console io.Writer) *Logger {
	rus := logrus.New()
	rus.SetLevel(logrus.InfoLevel)
	rus.SetFormatter(&lineFormatter{})
	rus.SetOutput(file)
	rus.AddHook(&consoleHook{out: console})
	return &Logger{rus: rus}
}

func (l *Logger) Info(msg string)  { l.rus.Info(msg) }
func (l *Logger) Warn(msg string)  { l.rus.Warn(msg) }
func (l *Logger) Error(msg string) { l.rus.Error(msg) }

func (l *Logger) Infof(format string, args ...interface{})  { l.rus.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.rus.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.rus.Errorf(format, args...) }

// Success records a completed action. The file line carries the SUCCESS level.
func (l *Logger) Success(msg string) {
	l.rus.WithField(fieldOutcome, outcomeSuccess).Info(msg)
}

func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// Skip records an idempotency guard firing. Logged as INFO, shown distinctly.
func (l *Logger) Skip(msg string) {
	l.rus.WithField(fieldOutcome, outcomeSkip).Info(msg)
}

func (l *Logger) Skipf(format string, args ...interface{}) {
	l.Skip(fmt.Sprintf(format, args...))
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

type lineFormatter struct{}

func (f *lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	level := "INFO"
	switch entry.Level {
	case logrus.WarnLevel:
		level = "WARN"
	case logrus.ErrorLevel:
		level = "ERROR"
	}
	if entry.Data[fieldOutcome] == outcomeSuccess {
		level = "SUCCESS"
	}

	fmt.Fprintf(b, "[%s] [%s] %s\n", entry.Time.Format("2006-01-02 15:04:05"), level, entry.Message)
	return b.Bytes(), nil
}

type consoleHook struct {
	out io.Writer
}

func (h *consoleHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}
}

func (h *consoleHook) Fire(entry *logrus.Entry) error {
	switch {
	case entry.Level == logrus.ErrorLevel:
		fmt.Fprintf(h.out, "  %s %s\n", red("✗"), entry.Message)
	case entry.Level == logrus.WarnLevel:
		fmt.Fprintf(h.out, "  %s %s\n", yellow("⚠"), entry.Message)
	case entry.Data[fieldOutcome] == outcomeSuccess:
		fmt.Fprintf(h.out, "  %s %s\n", green("✓"), entry.Message)
	case entry.Data[fieldOutcome] == outcomeSkip:
		fmt.Fprintf(h.out, "  %s %s\n", yellow("⏭"), entry.Message)
	default:
		fmt.Fprintf(h.out, "  %s\n", cyan(entry.Message))
	}
	return nil
}

// Console-only banners, never written to the log file.

func Header(msg string) {
	fmt.Printf("\n  %s\n", bold(msg))
}

func Result(msg string) {
	fmt.Printf("\n  %s\n\n", green(msg))
}

func Good(msg string) {
	fmt.Printf("  %s %s\n", green("✓"), msg)
}

func Bad(msg string) {
	fmt.Printf("  %s %s\n", red("✗"), msg)
}
