// Package logger provides namespaced debug channels on top of the standard
// log package. Channels are silent until a pattern passed to Enable matches
// their name, e.g. "player-*,-player-bounds".
package logger

import (
	"io"
	"log"
	"os"
	"path"
	"strings"
	"sync"
	"sync/atomic"
)

// EnvVar is read by EnableFromEnv.
const EnvVar = "DEBUG"

type Logger struct {
	name    string
	enabled atomic.Bool
}

var (
	mu       sync.Mutex
	loggers  = map[string]*Logger{}
	patterns []pattern
	out      = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
)

type pattern struct {
	glob    string
	exclude bool
}

// New returns the channel called name, creating it on first use.
func New(name string) *Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	l := &Logger{name: name}
	l.enabled.Store(matches(patterns, name))
	loggers[name] = l
	return l
}

func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) Enabled() bool {
	return l != nil && l.enabled.Load()
}

func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	out.Printf(l.name+" "+format, args...)
}

// Enable replaces the active pattern list and re-evaluates every channel.
// Patterns are separated by commas or spaces; a leading '-' excludes.
func Enable(spec string) {
	mu.Lock()
	defer mu.Unlock()
	patterns = parse(spec)
	for name, l := range loggers {
		l.enabled.Store(matches(patterns, name))
	}
}

// EnableFromEnv calls Enable with the value of $DEBUG.
func EnableFromEnv() {
	Enable(os.Getenv(EnvVar))
}

// SetOutput redirects every channel.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out.SetOutput(w)
}

func parse(spec string) []pattern {
	fields := strings.FieldsFunc(spec, func(r rune) bool { return r == ',' || r == ' ' })
	ps := make([]pattern, 0, len(fields))
	for _, f := range fields {
		p := pattern{glob: f}
		if strings.HasPrefix(f, "-") {
			p = pattern{glob: f[1:], exclude: true}
		}
		if p.glob == "" {
			continue
		}
		ps = append(ps, p)
	}
	return ps
}

func matches(ps []pattern, name string) bool {
	on := false
	for _, p := range ps {
		ok, err := path.Match(p.glob, name)
		if err != nil || !ok {
			continue
		}
		if p.exclude {
			return false
		}
		on = true
	}
	return on
}
