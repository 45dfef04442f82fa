package console

import (
	"go.uber.org/zap/zapcore"

	"dirpx.dev/logflow/apis/record"
	"dirpx.dev/logflow/runtime/format"
	"dirpx.dev/logflow/runtime/format/internalzap"
)

var _ format.Formatter = (*Formatter)(nil)

// Formatter adapts zapcore.ConsoleEncoder to format.Formatter.
//
// A zapcore.Encoder instance is not safe for concurrent use; this type
// stores a prototype encoder and calls Clone() per Format invocation.
type Formatter struct {
	base zapcore.Encoder // prototype; Clone() per call
}

// New constructs a console (human-readable) formatter backed by zap's
// ConsoleEncoder.
func New() *Formatter {
	return &Formatter{base: zapcore.NewConsoleEncoder(internalzap.DefaultEncoderConfig())}
}

// Format implements format.Formatter.
func (f *Formatter) Format(r *record.Record) (string, bool) {
	if !r.IsEmit() {
		return "", false
	}
	zenc := f.base.Clone()
	buf, err := zenc.EncodeEntry(internalzap.ToEntry(r), nil)
	if err != nil {
		return "", false
	}
	out := internalzap.NormalizeLineEnding(buf.Bytes())
	line := string(out)
	buf.Free()
	return line, true
}
