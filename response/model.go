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

import "github.com/nabbar/httpcore/wire"

// Kind distinguishes how a Response carries its body.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindString
	// KindWriter is a streaming body: a function given the raw output
	// stream, used both for large bodies and for protocol upgrades
	// (status 101), where it takes over framing entirely.
	KindWriter
)

// WriterFunc produces framed output bytes directly onto out.
type WriterFunc func(out wire.Writer) error

// CookiePair is one Set-Cookie emission.
type CookiePair struct {
	Name  string
	Value string
}

// Response is what a handler returns: status line, header fields, cookies
// and a body of one of the three Kinds.
type Response struct {
	Status int
	Reason string
	Headers *Fields

	cookieOrder []string
	cookies     map[string]string

	kind       Kind
	bodyString string
	bodyWriter WriterFunc
}

// New returns a Response with no body and empty headers/cookies.
func New(status int, reason string) *Response {
	return &Response{
		Status:  status,
		Reason:  reason,
		Headers: NewFields(),
		cookies: make(map[string]string),
	}
}

// SetBodyString sets a fixed-length string body.
func (r *Response) SetBodyString(s string) {
	r.kind = KindString
	r.bodyString = s
}

// SetBodyWriter sets a streaming body.
func (r *Response) SetBodyWriter(fn WriterFunc) {
	r.kind = KindWriter
	r.bodyWriter = fn
}

func (r *Response) BodyKind() Kind { return r.kind }
func (r *Response) BodyString() string { return r.bodyString }
func (r *Response) BodyWriter() WriterFunc { return r.bodyWriter }

// SetCookie records name's Set-Cookie value; a second call for the same
// name replaces it, keeping at most one emission per name as spec.md §4.I
// requires. value is pre-formatted by the caller (attributes included).
func (r *Response) SetCookie(name, value string) {
	if _, ok := r.cookies[name]; !ok {
		r.cookieOrder = append(r.cookieOrder, name)
	}
	r.cookies[name] = value
}

// Cookies returns the recorded Set-Cookie pairs in first-set name order.
func (r *Response) Cookies() []CookiePair {
	out := make([]CookiePair, 0, len(r.cookieOrder))
	for _, n := range r.cookieOrder {
		out = append(out, CookiePair{Name: n, Value: r.cookies[n]})
	}
	return out
}
