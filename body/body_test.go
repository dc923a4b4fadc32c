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

package body_test

import (
	"bufio"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/httpcore/body"
	"github.com/nabbar/httpcore/httpfield"
	"github.com/nabbar/httpcore/wire"
)

// stringReader is a minimal wire.Reader over a fixed in-memory buffer, used
// so these tests don't need a real socket or pipe.
type stringReader struct {
	r *bufio.Reader
}

func newStringReader(s string) wire.Reader {
	return &stringReader{r: bufio.NewReader(strings.NewReader(s))}
}

func (s *stringReader) ReadLine() (string, error) {
	return s.r.ReadString('\n')
}

func (s *stringReader) ReadFull(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func headerStore(pairs ...[2]string) *httpfield.Store {
	s := httpfield.NewStore(httpfield.DefaultLimits())
	for _, p := range pairs {
		s.Add(p[0], p[1])
	}
	return s
}

var _ = Describe("Select", func() {
	It("reads a fixed-length body from Content-Length", func() {
		in := newStringReader("hello")
		headers := headerStore([2]string{"Content-Length", "5"})
		r, err := body.Select(in, headers, 1<<20, httpfield.DefaultLimits())
		Expect(err).To(BeNil())

		data, _, _, ok, nerr := r.Next()
		Expect(nerr).To(BeNil())
		Expect(ok).To(BeTrue())
		Expect(string(data)).To(Equal("hello"))

		_, _, _, ok, nerr = r.Next()
		Expect(nerr).To(BeNil())
		Expect(ok).To(BeFalse())
	})

	It("reports a short read as an error", func() {
		in := newStringReader("hi")
		headers := headerStore([2]string{"Content-Length", "10"})
		r, err := body.Select(in, headers, 1<<20, httpfield.DefaultLimits())
		Expect(err).To(BeNil())

		_, _, _, ok, nerr := r.Next()
		Expect(ok).To(BeFalse())
		Expect(nerr).NotTo(BeNil())
		Expect(nerr.Code()).To(Equal(body.CodeShortRead))
	})

	It("rejects both Transfer-Encoding and Content-Length present", func() {
		headers := headerStore(
			[2]string{"Transfer-Encoding", "chunked"},
			[2]string{"Content-Length", "5"},
		)
		_, err := body.Select(newStringReader(""), headers, 1<<20, httpfield.DefaultLimits())
		Expect(err).NotTo(BeNil())
		Expect(err.Code()).To(Equal(body.CodeBothFramingHeaders))
	})

	It("reports no body when neither framing header is present", func() {
		r, err := body.Select(newStringReader(""), headerStore(), 1<<20, httpfield.DefaultLimits())
		Expect(err).To(BeNil())
		_, _, _, ok, nerr := r.Next()
		Expect(nerr).To(BeNil())
		Expect(ok).To(BeFalse())
	})

	// scenario #4 / invariant I4: chunked reassembly byte-equals the
	// concatenation of every chunk emitted by the sender.
	It("reassembles a chunked body with trailers", func() {
		in := newStringReader("5\r\nHello\r\n6\r\n World\r\n0\r\nX-T: v\r\n\r\n")
		headers := headerStore([2]string{"Transfer-Encoding", "chunked"})
		r, err := body.Select(in, headers, 1<<20, httpfield.DefaultLimits())
		Expect(err).To(BeNil())

		var got strings.Builder
		for {
			data, _, _, ok, nerr := r.Next()
			Expect(nerr).To(BeNil())
			if !ok {
				break
			}
			got.Write(data)
		}
		Expect(got.String()).To(Equal("Hello World"))

		tr := r.Trailers()
		Expect(tr).NotTo(BeNil())
		f, ok := tr.Get("x-t")
		Expect(ok).To(BeTrue())
		Expect(f.Concat(",")).To(Equal("v"))
	})

	It("rejects a chunk size exceeding the configured maximum", func() {
		in := newStringReader("ff\r\n")
		headers := headerStore([2]string{"Transfer-Encoding", "chunked"})
		r, err := body.Select(in, headers, 16, httpfield.DefaultLimits())
		Expect(err).To(BeNil())

		_, _, _, ok, nerr := r.Next()
		Expect(ok).To(BeFalse())
		Expect(nerr).NotTo(BeNil())
		Expect(nerr.Code()).To(Equal(body.CodeChunkSizeExceedsMax))
	})

	It("rejects an unsupported final Transfer-Encoding coding", func() {
		headers := headerStore([2]string{"Transfer-Encoding", "gzip"})
		_, err := body.Select(newStringReader(""), headers, 1<<20, httpfield.DefaultLimits())
		Expect(err).NotTo(BeNil())
		Expect(err.Code()).To(Equal(body.CodeUnsupportedTransferEncoding))
	})
})
