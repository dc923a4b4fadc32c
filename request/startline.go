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

package request

import "regexp"

// startLineRE is the literal grammar a request line must match:
// METHOD SP TARGET SP HTTP/1.1 CRLF, each of method/target restricted to
// visible ASCII (no SP, no CTL). line still carries the CRLF a line
// reader returns it with.
var startLineRE = regexp.MustCompile(`^([!-~]+) ([!-~]+) (HTTP/1\.1)\r\n$`)

// ParseStartLine validates line (as returned by wire.Reader.ReadLine,
// CRLF included) against the request-line grammar.
//
// A mismatch is not fatal: the caller stays in the start-line state and
// waits for the next line, tolerating blank lines before a request.
func ParseStartLine(line string) (req *Request, ok bool) {
	m := startLineRE.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	return New(m[1], m[2], m[3]), true
}
