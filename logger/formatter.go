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
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
)

// lineFormatter renders "<ISO-8601 UTC> <label>[<pid>] <LEVEL>: <msg> k=v...",
// one line per entry, matching spec.md §4.K's required prefix.
type lineFormatter struct {
	pid int
}

func newLineFormatter() *lineFormatter {
	return &lineFormatter{pid: os.Getpid()}
}

func (f *lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer

	label := "(stdio)"
	if v, ok := e.Data[fieldLabel]; ok {
		if s, ok := v.(string); ok && s != "" {
			label = s
		}
	}

	lvl := Level(e.Level).String()

	fmt.Fprintf(&buf, "%s %s[%d] %s: %s",
		e.Time.UTC().Format("2006-01-02T15:04:05.000Z"),
		label, f.pid, lvl, e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		if k == fieldLabel {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&buf, " %s=%v", k, e.Data[k])
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

const fieldLabel = "conn"
