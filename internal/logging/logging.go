// Package logging builds the single prefixed log stream used by every stage of
// a scaffold run. Lines look like:
//
//	[sasswave] Removed default React CSS file {"path": "src/index.css"}
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sasswave-labs/sasswave-create/internal/branding"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var prefixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

type options struct {
	level zapcore.Level
	color bool
}

// Option configures New.
type Option func(*options)

// WithVerbose enables debug-level output.
func WithVerbose(verbose bool) Option {
	return func(o *options) {
		if verbose {
			o.level = zapcore.DebugLevel
		}
	}
}

// WithColor toggles the colored prefix. Tests disable it to match on plain text.
func WithColor(color bool) Option {
	return func(o *options) {
		o.color = color
	}
}

// New returns a logger that writes console lines to w, prefixed with the
// product name. Levels are not rendered; every line starts with the prefix.
func New(w io.Writer, opts ...Option) *zap.Logger {
	o := options{level: zapcore.InfoLevel, color: true}
	for _, opt := range opts {
		opt(&o)
	}

	enc := zapcore.NewConsoleEncoder(encoderConfig(o.color))
	core := zapcore.NewCore(enc, zapcore.AddSync(w), o.level)
	return zap.New(core).Named(Prefix())
}

// Prefix is the logger name rendered in front of every line.
func Prefix() string {
	return strings.ToLower(branding.DisplayName())
}

func encoderConfig(color bool) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeName: func(name string, enc zapcore.PrimitiveArrayEncoder) {
			tag := "[" + name + "]"
			if color {
				tag = prefixStyle.Render(tag)
			}
			enc.AppendString(tag)
		},
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
