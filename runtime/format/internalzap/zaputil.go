/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package internalzap hosts small utilities for adapting logflow's
// record shape to zap encoders: a compact, deterministic mapping from
// apis/level.Level to zapcore.Level, plus configuration helpers shared
// by the console and json formatters.
package internalzap

import (
	"strings"

	"go.uber.org/zap/zapcore"

	"dirpx.dev/logflow/apis/level"
	"dirpx.dev/logflow/apis/record"
)

// DefaultEncoderConfig returns a minimal, stable zap EncoderConfig
// shared by both console and JSON adapters. The stacktrace key is left
// empty: logflow has no structured-field or caller-frame extraction
// beyond what Record already carries.
func DefaultEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "target",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "",
		LineEnding:     "\n", // final framing normalized by NormalizeLineEnding
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// NormalizeLineEnding enforces a single trailing '\n' on the encoded
// byte slice, independent of zap's own framing defaults.
func NormalizeLineEnding(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\n' {
		return b
	}
	out := make([]byte, 0, len(b)+1)
	out = append(out, b...)
	return append(out, '\n')
}

// MapLevel converts apis/level.Level to a zapcore.Level. Unrecognized
// values fall back to Info.
func MapLevel(l level.Level) zapcore.Level {
	switch strings.ToLower(l.String()) {
	case "trace", "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// ToEntry builds a zapcore.Entry from r. Message is Target+": "+Args
// when Target is set, otherwise just Args — logflow has no separate
// structured message field, so the two are joined the way a
// conventional logger renders a named sub-logger's output.
func ToEntry(r *record.Record) zapcore.Entry {
	msg := r.Args
	if r.Target != "" {
		msg = r.Target + ": " + r.Args
	}
	var line int
	if r.Line != nil {
		line = int(*r.Line)
	}
	return zapcore.Entry{
		Time:    r.Time,
		Level:   MapLevel(r.Level),
		Message: msg,
		Caller: zapcore.EntryCaller{
			Defined: r.File != "",
			File:    r.File,
			Line:    line,
		},
	}
}
