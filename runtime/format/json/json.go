package json

import (
	"go.uber.org/zap/zapcore"

	"dirpx.dev/logflow/apis/record"
	"dirpx.dev/logflow/runtime/format"
	"dirpx.dev/logflow/runtime/format/internalzap"
)

var _ format.Formatter = (*Formatter)(nil)

// Formatter adapts zapcore.JSONEncoder to format.Formatter. See
// runtime/format/console for the Clone()-per-call rationale.
type Formatter struct {
	base zapcore.Encoder
}

// New constructs a JSON formatter backed by zap's JSON encoder.
func New() *Formatter {
	return &Formatter{base: zapcore.NewJSONEncoder(internalzap.DefaultEncoderConfig())}
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
