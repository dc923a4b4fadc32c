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

package conn

import (
	"github.com/nabbar/httpcore/body"
	"github.com/nabbar/httpcore/herr"
	"github.com/nabbar/httpcore/request"
)

// attachBody selects the body framing and, for anything other than a
// chunked Transfer-Encoding, drains it immediately into req.Fixed — spec.md
// §3's Data Model exposes a fixed body as a plain string, reserving the
// lazy iterator shape for chunked transfer.
func (d *Driver) attachBody(req *request.Request) herr.Error {
	reader, err := body.Select(d.in, req.Headers, d.maxChunkSize, d.fieldLimits)
	if err != nil {
		return err
	}

	if reader.Chunked() {
		req.BodyKind = request.BodyChunked
		req.Chunks = reader
		return nil
	}

	data, _, _, ok, nerr := reader.Next()
	if nerr != nil {
		return nerr
	}
	if !ok {
		req.BodyKind = request.BodyAbsent
		return nil
	}
	req.BodyKind = request.BodyFixed
	req.Fixed = string(data)
	return nil
}
