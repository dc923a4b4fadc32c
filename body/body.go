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

package body

import (
	"strconv"
	"strings"

	"github.com/nabbar/httpcore/herr"
	"github.com/nabbar/httpcore/httpfield"
	"github.com/nabbar/httpcore/wire"
)

// ExtValue is one chunk-extension occurrence: either a bare flag
// (HasValue == false) or a name=value pair.
type ExtValue struct {
	Value    string
	HasValue bool
}

// Reader is the iterator a handler drains to read a request body, chunk by
// chunk (or as a single chunk for a fixed-length body). Exts/ExtsRaw are
// only meaningful for a chunked body; a fixed-length or absent body always
// reports them empty.
type Reader interface {
	// Next returns the next piece of body data. ok is false once the body
	// is exhausted (err is nil in that case); err is non-nil only on a
	// framing violation.
	Next() (data []byte, exts map[string][]ExtValue, extsRaw string, ok bool, err herr.Error)
	// Trailers is only meaningful once Next has returned ok == false.
	Trailers() *httpfield.Store
	// Chunked reports whether this Reader came from the Transfer-Encoding
	// path. A caller that wants spec.md's "fixed body is a plain byte
	// string, chunked body is a lazy iterator" distinction drains
	// non-chunked readers eagerly and keeps chunked ones live.
	Chunked() bool
}

// Select applies spec.md §4.G's selection rule: chunked Transfer-Encoding
// is checked first, then Content-Length, else no body. Both framing headers
// present at once is rejected outright (RFC 9112 §6.3 smuggling risk).
func Select(input wire.Reader, headers *httpfield.Store, maxChunkSize int, limits httpfield.Limits) (Reader, herr.Error) {
	te, hasTE := headers.Get("Transfer-Encoding")
	cl, hasCL := headers.Get("Content-Length")

	if hasTE && hasCL {
		return nil, CodeBothFramingHeaders.Error()
	}

	if hasTE {
		elems := te.Elements()
		if len(elems) == 0 || !strings.EqualFold(elems[len(elems)-1].Value, "chunked") {
			return nil, CodeUnsupportedTransferEncoding.Error()
		}
		return newChunkedReader(input, maxChunkSize, limits), nil
	}

	if hasCL {
		vals := cl.Unvalidated()
		raw := vals[len(vals)-1]
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 0 || !isAllDigits(raw) {
			return nil, CodeInvalidContentLength.Error()
		}
		return newFixedReader(input, n), nil
	}

	return emptyReader{}, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// emptyReader is returned when no body is framed at all.
type emptyReader struct{}

func (emptyReader) Next() ([]byte, map[string][]ExtValue, string, bool, herr.Error) {
	return nil, nil, "", false, nil
}

func (emptyReader) Trailers() *httpfield.Store {
	return nil
}

func (emptyReader) Chunked() bool {
	return false
}
