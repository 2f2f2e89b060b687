// Package logging builds the process logger and the error reporter the
// adapters call on failure.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Domain tells which layer a failure came from.
type Domain string

const (
	DomainNetwork Domain = "network"
	DomainAdapter Domain = "adapter"
)

// ErrorLogger receives exactly one call per adapter failure.
type ErrorLogger interface {
	LogError(domain Domain, code, message string, meta map[string]any)
}

// New builds a production zap logger, at debug level when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ZapReporter writes failures to a zap logger.
type ZapReporter struct {
	logger *zap.Logger
}

func NewZapReporter(logger *zap.Logger) *ZapReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapReporter{logger: logger}
}

func (r *ZapReporter) LogError(domain Domain, code, message string, meta map[string]any) {
	r.logger.Error(message,
		zap.String("domain", string(domain)),
		zap.String("code", code),
		zap.Any("meta", meta),
	)
}

// Nop discards every failure.
func Nop() ErrorLogger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) LogError(Domain, string, string, map[string]any) {}

// Entry is one recorded LogError call.
type Entry struct {
	Domain  Domain
	Code    string
	Message string
	Meta    map[string]any
}

// Recorder keeps every LogError call in memory. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) LogError(domain Domain, code, message string, meta map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Domain: domain, Code: code, Message: message, Meta: meta})
}

// Entries returns a copy of the recorded calls.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}
