// Package logging provides the small named-component logger used across
// the pipeline: every package that reports progress or failure gets its
// own Logger instance labelled with the component name, mirroring the
// per-namespace loggers of the original simulator.
package logging

import (
	"fmt"
	"log"
	"os"
)

type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
	Critical
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level, defaulting to Info on any
// unrecognized input.
func ParseLevel(name string) Level {
	switch name {
	case "DEBUG":
		return Debug
	case "INFO":
		return Info
	case "WARNING":
		return Warning
	case "ERROR":
		return Error
	case "CRITICAL":
		return Critical
	default:
		return Info
	}
}

// Logger tags every line it writes with its own name and drops anything
// below its configured level.
type Logger struct {
	name  string
	level Level
	out   *log.Logger
}

// New creates a component logger at INFO level writing to stderr.
func New(name string) *Logger {
	return &Logger{
		name:  name,
		level: Info,
		out:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) log(level Level, format string, args ...any) {
	if level < l.level {
		return
	}
	l.out.Printf("[%s] [%s] %s", level, l.name, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any)    { l.log(Debug, format, args...) }
func (l *Logger) Info(format string, args ...any)     { l.log(Info, format, args...) }
func (l *Logger) Warning(format string, args ...any)  { l.log(Warning, format, args...) }
func (l *Logger) Error(format string, args ...any)    { l.log(Error, format, args...) }
func (l *Logger) Critical(format string, args ...any) { l.log(Critical, format, args...) }
