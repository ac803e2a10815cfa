package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// TimeLayout renders entry timestamps with millisecond precision.
const TimeLayout = "2006-01-02 15:04:05.000"

// ColorMode controls ANSI coloring of the level token on the console.
type ColorMode string

const (
	// ColorAuto colors only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever writes plain level tokens.
	ColorNever ColorMode = "never"
)

// ParseColorMode converts string input to a ColorMode.
func ParseColorMode(s string) (ColorMode, bool) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, true
	case "":
		return ColorAuto, true
	default:
		return ColorAuto, false
	}
}

// palette colors level tokens. A nil palette leaves them plain.
type palette map[Level]*color.Color

func newPalette(mode ColorMode) palette {
	if mode == ColorNever {
		return nil
	}

	p := palette{
		DebugLevel:    color.New(color.FgCyan),
		InfoLevel:     color.New(color.FgGreen),
		WarningLevel:  color.New(color.FgYellow, color.Bold),
		ErrorLevel:    color.New(color.FgRed, color.Bold),
		CriticalLevel: color.New(color.FgHiWhite, color.BgRed, color.Bold),
	}

	// In auto mode fatih/color consults its own terminal detection.
	if mode == ColorAlways {
		for _, c := range p {
			c.EnableColor()
		}
	}

	return p
}

func (p palette) token(l Level) string {
	c, ok := p[l]
	if !ok {
		return l.String()
	}

	return c.Sprint(l.String())
}

// patternEncoder renders "[time] [name] [level] message" and hands
// structured fields and the line ending to an inner console encoder.
type patternEncoder struct {
	zapcore.Encoder

	palette palette
}

func newPatternEncoder(p palette) *patternEncoder {
	//nolint:exhaustruct // Time, level and name are rendered by the pattern itself.
	inner := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "message",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	})

	return &patternEncoder{
		Encoder: inner,
		palette: p,
	}
}

// Clone copies the encoder together with any context fields added so far.
//
//nolint:ireturn,nolintlint // Returning zapcore.Encoder is intended for zap integration.
func (e *patternEncoder) Clone() zapcore.Encoder {
	return &patternEncoder{
		Encoder: e.Encoder.Clone(),
		palette: e.palette,
	}
}

// EncodeEntry prefixes the message with the timestamp, logger name and level.
//
//nolint:gocritic // zapcore.Encoder requires ent to be passed by value.
func (e *patternEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	token := e.palette.token(levelFromZap(ent.Level))

	ent.Message = fmt.Sprintf("[%s] [%s] [%s] %s",
		ent.Time.Format(TimeLayout), ent.LoggerName, token, ent.Message)

	return e.Encoder.EncodeEntry(ent, fields)
}
