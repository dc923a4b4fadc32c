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

package wire

import (
	"bufio"
	"io"
)

// Reader is the input half of the accept boundary: one line at a time
// (CRLF included, per spec.md §6), or an exact fixed-size read.
type Reader interface {
	ReadLine() (string, error)
	ReadFull(n int) ([]byte, error)
}

// Writer is the output half: raw bytes plus an explicit flush, since the
// core assumes stream-buffered output.
type Writer interface {
	io.Writer
	Flush() error
}

// bufReader adapts any io.Reader to Reader.
type bufReader struct {
	r *bufio.Reader
}

// NewReader wraps r for line- and fixed-size reads.
func NewReader(r io.Reader) Reader {
	return &bufReader{r: bufio.NewReaderSize(r, 4096)}
}

func (b *bufReader) ReadLine() (string, error) {
	return b.r.ReadString('\n')
}

func (b *bufReader) ReadFull(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// bufWriter adapts any io.Writer to Writer.
type bufWriter struct {
	w *bufio.Writer
}

// NewWriter wraps w for buffered writes with an explicit flush.
func NewWriter(w io.Writer) Writer {
	return &bufWriter{w: bufio.NewWriterSize(w, 4096)}
}

func (b *bufWriter) Write(p []byte) (int, error) {
	return b.w.Write(p)
}

func (b *bufWriter) Flush() error {
	return b.w.Flush()
}
