package app

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Context holds application-wide configuration and state
type Context struct {
	context.Context

	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool

	// Destinations for results and diagnostics
	Out    io.Writer
	ErrOut io.Writer

	// Logger receives diagnostics; NewContext derives it from ErrOut
	Logger *slog.Logger

	// Progress reporting
	ProgressCallback func(message string, percent int)
}

// NewContext creates a new application context writing to the standard
// streams
func NewContext() *Context {
	c := &Context{
		Context:      context.Background(),
		OutputFormat: "table",
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
	}
	c.ConfigureLogger()
	return c
}

// ConfigureLogger rebuilds the logger from ErrOut and the verbosity flags.
// Verbose enables debug output, quiet keeps only errors.
func (c *Context) ConfigureLogger() {
	level := slog.LevelInfo
	switch {
	case c.Quiet:
		level = slog.LevelError
	case c.Verbose:
		level = slog.LevelDebug
	}
	c.Logger = slog.New(slog.NewTextHandler(c.ErrOut, &slog.HandlerOptions{Level: level}))
}

// WithCancel creates a cancellable context
func (c *Context) WithCancel() (*Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(c.Context)
	newCtx := *c
	newCtx.Context = ctx
	return &newCtx, cancel
}

// Err reports why the context was cancelled. A Context without a parent is
// never cancelled.
func (c *Context) Err() error {
	if c.Context == nil {
		return nil
	}
	return c.Context.Err()
}

// SetProgress sets the progress callback function
func (c *Context) SetProgress(callback func(string, int)) {
	c.ProgressCallback = callback
}

// Progress reports progress if callback is set
func (c *Context) Progress(message string, percent int) {
	if c.ProgressCallback != nil {
		c.ProgressCallback(message, percent)
	}
}

// Log outputs a debug message, shown only when verbose
func (c *Context) Log(message string, args ...any) {
	c.logger().Debug(message, args...)
}

// Warn reports a recoverable problem unless quiet
func (c *Context) Warn(message string, args ...any) {
	c.logger().Warn(message, args...)
}

// Error outputs an error message
func (c *Context) Error(message string, args ...any) {
	c.logger().Error(message, args...)
}

func (c *Context) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Stdout returns the result writer
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}
