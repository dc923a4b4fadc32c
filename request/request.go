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

import (
	"github.com/nabbar/httpcore/body"
	"github.com/nabbar/httpcore/codec"
	"github.com/nabbar/httpcore/cookie"
	"github.com/nabbar/httpcore/httpfield"
)

// BodyKind distinguishes how a Request carries its received body.
type BodyKind uint8

const (
	BodyAbsent BodyKind = iota
	// BodyFixed means the Content-Length body has already been drained
	// into Fixed — spec.md's Data Model exposes a fixed body as a plain
	// byte string, not an iterator.
	BodyFixed
	// BodyChunked means Chunks is a live body.Reader. Once the handler has
	// exhausted it, Chunks.Trailers() holds the trailers; the connection
	// driver copies them into Request.Trailers only after the handler returns.
	BodyChunked
)

// Request is the structured object built from the wire request, mutated as
// headers, cookies and the body are consumed, then handed to a handler.
type Request struct {
	Method  string
	Path    string
	Params  *codec.Values
	Version string

	Headers  *httpfield.Store
	Cookies  []cookie.Pair
	Trailers *httpfield.Store

	BodyKind BodyKind
	Fixed    string
	Chunks   body.Reader

	// Matches holds the router's pattern captures, set by the router
	// before the handler runs.
	Matches []string
}

// New builds a Request from an already-parsed start line. Headers, Cookies,
// Trailers and Body are filled in afterwards by the connection driver.
func New(method, target, version string) *Request {
	path, query := splitTarget(target)
	return &Request{
		Method:  method,
		Path:    codec.PercentDecode(path),
		Params:  codec.ParseQueryString(query),
		Version: version,
	}
}

func splitTarget(target string) (path, query string) {
	for i := 0; i < len(target); i++ {
		if target[i] == '?' {
			return target[:i], target[i+1:]
		}
	}
	return target, ""
}
