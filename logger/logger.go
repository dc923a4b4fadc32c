/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package logger

import (
	"encoding/hex"
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Direction marks which way traced bytes moved across the connection.
type Direction byte

const (
	Inbound  Direction = '>'
	Outbound Direction = '<'
)

func (d Direction) marker() string {
	if d == Outbound {
		return "<<"
	}
	return ">>"
}

// Logger is the facade every component logs through. It is safe for
// concurrent use: the supervisor shares one base Logger across its
// connection goroutines, and each connection driver logs through its own
// labelled copy of it.
type Logger interface {
	// SetLabel returns a Logger that prefixes label on every line (an empty
	// label becomes "(stdio)" per spec.md §6) and writes through the same
	// output and level as the receiver. The receiver keeps its own label.
	SetLabel(label string) Logger

	// SetLevel changes the filter; entries more severe-or-equal pass.
	SetLevel(level Level) Logger

	Fatal(msg string, f ...Fields)
	Error(msg string, f ...Fields)
	Warn(msg string, f ...Fields)
	Info(msg string, f ...Fields)
	Debug(msg string, f ...Fields)
	Trace(msg string, f ...Fields)

	// TraceLine logs one consumed/emitted protocol line at Trace level,
	// prefixed with a direction marker, per spec.md §4.K.
	TraceLine(dir Direction, line string)

	// TraceChunk logs one emitted/consumed body chunk at Trace level. Binary
	// payloads are hex-encoded so the line stays well-formed.
	TraceChunk(dir Direction, chunk []byte)
}

type logger struct {
	base  *logrus.Logger
	label atomic.Value // string
}

// New builds a Logger writing formatted lines to w, filtering at level.
func New(w io.Writer, level Level) Logger {
	l := &logger{base: logrus.New()}
	l.base.SetOutput(w)
	l.base.SetFormatter(newLineFormatter())
	l.base.SetLevel(level.logrus())
	l.label.Store("(stdio)")
	return l
}

func (l *logger) SetLabel(label string) Logger {
	if label == "" {
		label = "(stdio)"
	}
	n := &logger{base: l.base}
	n.label.Store(label)
	return n
}

func (l *logger) SetLevel(level Level) Logger {
	l.base.SetLevel(level.logrus())
	return l
}

func (l *logger) entry(f ...Fields) *logrus.Entry {
	merged := Fields{}
	for _, fl := range f {
		for k, v := range fl {
			merged[k] = v
		}
	}
	merged[fieldLabel], _ = l.label.Load().(string)
	return l.base.WithFields(merged.logrus())
}

// Fatal logs at FATAL but never calls os.Exit: the core is one-shot per
// connection and must let the connection driver decide how to close, not
// the logger.
func (l *logger) Fatal(msg string, f ...Fields) { l.entry(f...).Log(Fatal.logrus(), msg) }
func (l *logger) Error(msg string, f ...Fields) { l.entry(f...).Error(msg) }
func (l *logger) Warn(msg string, f ...Fields)  { l.entry(f...).Warn(msg) }
func (l *logger) Info(msg string, f ...Fields)  { l.entry(f...).Info(msg) }
func (l *logger) Debug(msg string, f ...Fields) { l.entry(f...).Debug(msg) }
func (l *logger) Trace(msg string, f ...Fields) { l.entry(f...).Trace(msg) }

func (l *logger) TraceLine(dir Direction, line string) {
	l.entry().Tracef("%s %q", dir.marker(), line)
}

func (l *logger) TraceChunk(dir Direction, chunk []byte) {
	l.entry(Fields{"bytes": len(chunk)}).Tracef("%s %s", dir.marker(), hex.EncodeToString(chunk))
}

// Discard is a Logger that drops every entry; useful for tests and for
// callers that do not want per-connection logging.
func Discard() Logger {
	l := New(io.Discard, Fatal)
	return l
}
