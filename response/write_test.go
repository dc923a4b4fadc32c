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

package response_test

import (
	"bytes"
	"regexp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/httpcore/response"
	"github.com/nabbar/httpcore/wire"
)

// buffer adapts a bytes.Buffer to wire.Writer with a no-op Flush, enough
// for tests that only inspect the written bytes.
type buffer struct {
	bytes.Buffer
}

func (b *buffer) Flush() error { return nil }

func newBuffer() wire.Writer { return &buffer{} }

var _ = Describe("Write", func() {
	// scenario #1: simple GET, auto Date/Content-Length/Connection.
	It("serializes status, auto headers and a string body", func() {
		r := response.New(200, "ok")
		r.SetBodyString("hi")

		out := &buffer{}
		err := response.Write(out, "GET", r, true)
		Expect(err).To(BeNil())

		got := out.String()
		Expect(got).To(HavePrefix("HTTP/1.1 200 ok\r\n"))
		Expect(got).To(MatchRegexp(`Date: [A-Za-z]{3}, \d{2} [A-Za-z]{3} \d{4} \d{2}:\d{2}:\d{2} GMT\r\n`))
		Expect(got).To(ContainSubstring("Content-Length: 2\r\n"))
		Expect(got).To(ContainSubstring("Connection: close\r\n"))
		Expect(got).To(HaveSuffix("\r\n\r\nhi"))
	})

	It("does not duplicate an explicit Connection: close", func() {
		r := response.New(200, "ok")
		r.Headers.Add("Connection", "close")
		r.SetBodyString("x")

		out := &buffer{}
		Expect(response.Write(out, "GET", r, true)).To(BeNil())

		count := len(regexp.MustCompile(`Connection: close`).FindAllString(out.String(), -1))
		Expect(count).To(Equal(1))
	})

	It("suppresses body content for HEAD", func() {
		r := response.New(200, "ok")
		r.SetBodyString("hello")

		out := &buffer{}
		Expect(response.Write(out, "HEAD", r, true)).To(BeNil())

		Expect(out.String()).To(ContainSubstring("Content-Length: 5\r\n"))
		Expect(out.String()).To(HaveSuffix("\r\n\r\n"))
	})

	It("suppresses body for 204 No Content", func() {
		r := response.New(204, "No Content")
		r.SetBodyString("should not appear")

		out := &buffer{}
		Expect(response.Write(out, "GET", r, true)).To(BeNil())
		Expect(out.String()).To(HaveSuffix("\r\n\r\n"))
	})

	It("allows a writer body through for 101 Switching Protocols", func() {
		r := response.New(101, "Switching Protocols")
		r.SetBodyWriter(func(out wire.Writer) error {
			_, err := out.Write([]byte("upgraded"))
			return err
		})

		out := &buffer{}
		Expect(response.Write(out, "GET", r, false)).To(BeNil())
		Expect(out.String()).To(HaveSuffix("upgraded"))
	})

	It("emits repeated header values as one line each, in order", func() {
		r := response.New(200, "ok")
		r.Headers.Add("X-Trace", "a")
		r.Headers.Add("X-Trace", "b")

		out := &buffer{}
		Expect(response.Write(out, "GET", r, true)).To(BeNil())

		Expect(out.String()).To(ContainSubstring("X-Trace: a\r\n"))
		Expect(out.String()).To(ContainSubstring("X-Trace: b\r\n"))
	})

	It("emits at most one Set-Cookie per name, last value wins", func() {
		r := response.New(200, "ok")
		r.SetCookie("sid", "1")
		r.SetCookie("sid", "2")

		out := &buffer{}
		Expect(response.Write(out, "GET", r, true)).To(BeNil())

		count := len(regexp.MustCompile(`Set-Cookie: sid=`).FindAllString(out.String(), -1))
		Expect(count).To(Equal(1))
		Expect(out.String()).To(ContainSubstring("Set-Cookie: sid=2\r\n"))
	})
})
