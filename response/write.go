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

package response

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nabbar/httpcore/herr"
	"github.com/nabbar/httpcore/wire"
)

// rfc1123GMT matches net/http.TimeFormat without importing net/http —
// the core owns its own wire types and has no use for the rest of that
// package.
const rfc1123GMT = "Mon, 02 Jan 2006 15:04:05 GMT"

// Write serializes r onto out: status line, headers, cookies, blank line,
// body — in that order (spec.md §4.I). method is the request method, used
// only to decide HEAD body suppression. willClose tells Write whether the
// connection driver intends to close after this response; Write adds
// "Connection: close" itself, idempotently, when that's true, except for a
// 101 response whose body is a writer (an upgrade).
func Write(out wire.Writer, method string, r *Response, willClose bool) herr.Error {
	isHead := strings.EqualFold(method, "HEAD")
	is1xx := r.Status >= 100 && r.Status < 200
	noBodyStatus := is1xx || r.Status == 204 || r.Status == 304
	allowUpgradeBody := r.Status == 101 && r.kind == KindWriter

	if !r.Headers.Has("Date") {
		r.Headers.Set("Date", time.Now().UTC().Format(rfc1123GMT))
	}
	if r.kind == KindString && !r.Headers.Has("Content-Length") {
		r.Headers.Set("Content-Length", strconv.Itoa(len(r.bodyString)))
	}
	if willClose && !allowUpgradeBody && !r.Headers.ContainsValue("Connection", "close") {
		r.Headers.Add("Connection", "close")
	}

	if err := writeLine(out, fmt.Sprintf("HTTP/1.1 %d %s\r\n", r.Status, r.Reason)); err != nil {
		return err
	}
	for _, line := range r.Headers.Lines() {
		if err := writeLine(out, fmt.Sprintf("%s: %s\r\n", line.Name, line.Value)); err != nil {
			return err
		}
	}
	for _, c := range r.Cookies() {
		if err := writeLine(out, fmt.Sprintf("Set-Cookie: %s=%s\r\n", c.Name, c.Value)); err != nil {
			return err
		}
	}
	if err := writeLine(out, "\r\n"); err != nil {
		return err
	}

	suppressBody := isHead || (noBodyStatus && !allowUpgradeBody)
	if !suppressBody {
		switch r.kind {
		case KindString:
			if err := writeLine(out, r.bodyString); err != nil {
				return err
			}
		case KindWriter:
			if err := r.bodyWriter(out); err != nil {
				return herr.New(CodeWriteFailed, "streaming body writer failed", err)
			}
		}
	}

	if err := out.Flush(); err != nil {
		return herr.New(CodeFlushFailed, "flush failed", err)
	}
	return nil
}

func writeLine(out wire.Writer, s string) herr.Error {
	if _, err := out.Write([]byte(s)); err != nil {
		return herr.New(CodeWriteFailed, "write failed", err)
	}
	return nil
}
