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
	"github.com/nabbar/httpcore/herr"
	"github.com/nabbar/httpcore/httpfield"
	"github.com/nabbar/httpcore/wire"
)

// fixedReader reads exactly n bytes, once, per Content-Length.
type fixedReader struct {
	input wire.Reader
	n     int
	done  bool
}

func newFixedReader(input wire.Reader, n int) *fixedReader {
	return &fixedReader{input: input, n: n}
}

func (f *fixedReader) Next() ([]byte, map[string][]ExtValue, string, bool, herr.Error) {
	if f.done {
		return nil, nil, "", false, nil
	}
	f.done = true
	if f.n == 0 {
		return nil, nil, "", false, nil
	}
	data, err := f.input.ReadFull(f.n)
	if err != nil {
		return nil, nil, "", false, CodeShortRead.Error(err)
	}
	return data, nil, "", true, nil
}

func (f *fixedReader) Trailers() *httpfield.Store {
	return nil
}

func (f *fixedReader) Chunked() bool {
	return false
}
