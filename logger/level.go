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

import "github.com/sirupsen/logrus"

// Level is one of the six severities spec.md §4.K names, in monotone order:
// Fatal is most severe, Trace least. A logger configured to filter at level
// X emits every entry whose Level is numerically <= X.
type Level uint32

const (
	Fatal Level = Level(logrus.FatalLevel)
	Error Level = Level(logrus.ErrorLevel)
	Warn  Level = Level(logrus.WarnLevel)
	Info  Level = Level(logrus.InfoLevel)
	Debug Level = Level(logrus.DebugLevel)
	Trace Level = Level(logrus.TraceLevel)
)

// String renders the level the way each log line prefixes it.
func (l Level) String() string {
	switch l {
	case Fatal:
		return "FATAL"
	case Error:
		return "ERROR"
	case Warn:
		return "WARN"
	case Info:
		return "INFO"
	case Debug:
		return "DEBUG"
	case Trace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

func (l Level) logrus() logrus.Level {
	return logrus.Level(l)
}

// Enabled reports whether an entry at level l passes a logger filtering at
// (at most) filter.
func (l Level) Enabled(filter Level) bool {
	return l <= filter
}
