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

// chunkedReader decodes RFC 9112 §7.1 chunked transfer framing: a size-line
// (hex size, optional ";"-separated extensions), exactly size bytes, a CRLF
// terminator, repeated until a zero-size chunk, followed by trailer fields
// and a blank line.
type chunkedReader struct {
	input    wire.Reader
	maxChunk int
	limits   httpfield.Limits
	done     bool
	trailers *httpfield.Store
}

func newChunkedReader(input wire.Reader, maxChunk int, limits httpfield.Limits) *chunkedReader {
	return &chunkedReader{input: input, maxChunk: maxChunk, limits: limits}
}

func (c *chunkedReader) Next() ([]byte, map[string][]ExtValue, string, bool, herr.Error) {
	if c.done {
		return nil, nil, "", false, nil
	}

	line, err := c.input.ReadLine()
	if err != nil {
		return nil, nil, "", false, CodeInvalidChunkSize.Error(err)
	}
	sizeField, extRaw := splitChunkSizeLine(line)

	size, convErr := strconv.ParseInt(sizeField, 16, 64)
	if convErr != nil || size < 0 {
		return nil, nil, "", false, CodeInvalidChunkSize.Error(convErr)
	}
	if int(size) > c.maxChunk {
		return nil, nil, "", false, CodeChunkSizeExceedsMax.Error()
	}

	exts := parseChunkExtensions(extRaw)

	if size == 0 {
		if err := c.readTrailers(); err != nil {
			return nil, nil, "", false, err
		}
		c.done = true
		return nil, nil, "", false, nil
	}

	data, err := c.input.ReadFull(int(size))
	if err != nil {
		return nil, nil, "", false, CodeShortRead.Error(err)
	}
	term, err := c.input.ReadFull(2)
	if err != nil || string(term) != "\r\n" {
		return nil, nil, "", false, CodeInvalidChunkTerminator.Error(err)
	}

	return data, exts, extRaw, true, nil
}

func (c *chunkedReader) Trailers() *httpfield.Store {
	return c.trailers
}

func (c *chunkedReader) Chunked() bool {
	return true
}

func (c *chunkedReader) readTrailers() herr.Error {
	c.trailers = httpfield.NewStore(c.limits)
	for {
		line, err := c.input.ReadLine()
		if err != nil {
			return CodeInvalidTrailerLine.Error(err)
		}
		trimmed := trimCRLF(line)
		if trimmed == "" {
			return nil
		}
		name, value, ok := splitTrailerLine(trimmed)
		if !ok {
			return CodeInvalidTrailerLine.Error()
		}
		c.trailers.Add(name, value)
	}
}

// splitChunkSizeLine separates "size-line" (CRLF trimmed) into its hex size
// and the raw text of any ";"-delimited extensions.
func splitChunkSizeLine(line string) (size, extRaw string) {
	trimmed := trimCRLF(line)
	if i := strings.IndexByte(trimmed, ';'); i >= 0 {
		return trimmed[:i], trimmed[i+1:]
	}
	return trimmed, ""
}

func trimCRLF(s string) string {
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s
}

// parseChunkExtensions parses a ";"-joined run of "name" or "name=value"
// (value optionally quoted) pairs, best-effort per spec.md §4.G: empty
// segments are skipped and no segment is validated, so a malformed one is
// kept as parsed rather than failing the whole chunk.
func parseChunkExtensions(raw string) map[string][]ExtValue {
	if raw == "" {
		return nil
	}
	out := make(map[string][]ExtValue)
	for _, seg := range strings.Split(raw, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		eq := strings.IndexByte(seg, '=')
		if eq < 0 {
			name := seg
			out[name] = append(out[name], ExtValue{HasValue: false})
			continue
		}
		name := seg[:eq]
		value := seg[eq+1:]
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}
		out[name] = append(out[name], ExtValue{Value: value, HasValue: true})
	}
	return out
}

// splitTrailerLine parses "Name: value" out of one trailer header line.
func splitTrailerLine(line string) (name, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i <= 0 {
		return "", "", false
	}
	name = line[:i]
	value = strings.TrimLeft(line[i+1:], " \t")
	return name, value, true
}
