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

package conn_test

import (
	"bytes"
	"regexp"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/httpcore/conn"
	"github.com/nabbar/httpcore/httpfield"
	"github.com/nabbar/httpcore/logger"
	"github.com/nabbar/httpcore/request"
	"github.com/nabbar/httpcore/response"
	"github.com/nabbar/httpcore/router"
	"github.com/nabbar/httpcore/wire"
)

type outBuffer struct{ bytes.Buffer }

func (b *outBuffer) Flush() error { return nil }

var _ = Describe("Driver", func() {
	// scenario #1: simple GET.
	It("serves a simple GET and closes", func() {
		in := wire.NewReader(strings.NewReader("GET / HTTP/1.1\r\nHost: x\r\n\r\n"))
		out := &outBuffer{}

		rt := router.New()
		Expect(rt.AddRoute("GET", "^/$", func(req *request.Request) *response.Response {
			resp := response.New(200, "ok")
			resp.SetBodyString("hi")
			return resp
		})).To(BeNil())

		d := conn.New(in, out, "(test)", logger.Discard(), rt, 1<<20, httpfield.DefaultLimits())
		state := d.Serve()

		Expect(state).To(Equal(conn.StateClosed))
		Expect(out.String()).To(HavePrefix("HTTP/1.1 200 ok\r\n"))
		Expect(out.String()).To(ContainSubstring("Content-Length: 2\r\n"))
		Expect(out.String()).To(ContainSubstring("Connection: close\r\n"))
		Expect(out.String()).To(HaveSuffix("\r\n\r\nhi"))
	})

	// scenario #2: missing route.
	It("responds 501 when no routes exist for the method", func() {
		in := wire.NewReader(strings.NewReader("PUT /a HTTP/1.1\r\nHost: x\r\n\r\n"))
		out := &outBuffer{}

		rt := router.New()
		Expect(rt.AddRoute("GET", "^/a$", func(req *request.Request) *response.Response {
			return response.New(200, "ok")
		})).To(BeNil())

		d := conn.New(in, out, "(test)", logger.Discard(), rt, 1<<20, httpfield.DefaultLimits())
		d.Serve()

		Expect(out.String()).To(HavePrefix("HTTP/1.1 501 Not Implemented\r\n"))
		Expect(out.String()).To(ContainSubstring("Content-Length: 15\r\n"))
		Expect(out.String()).To(HaveSuffix("not implemented"))
	})

	It("responds 404 when the method has routes but none match", func() {
		in := wire.NewReader(strings.NewReader("GET /missing HTTP/1.1\r\n\r\n"))
		out := &outBuffer{}

		rt := router.New()
		Expect(rt.AddRoute("GET", "^/a$", func(req *request.Request) *response.Response {
			return response.New(200, "ok")
		})).To(BeNil())

		d := conn.New(in, out, "(test)", logger.Discard(), rt, 1<<20, httpfield.DefaultLimits())
		d.Serve()

		Expect(out.String()).To(HavePrefix("HTTP/1.1 404 Not Found\r\n"))
	})

	It("recovers a handler panic into a 500 and closes", func() {
		in := wire.NewReader(strings.NewReader("GET / HTTP/1.1\r\n\r\n"))
		out := &outBuffer{}

		rt := router.New()
		Expect(rt.AddRoute("GET", "^/$", func(req *request.Request) *response.Response {
			panic("boom")
		})).To(BeNil())

		d := conn.New(in, out, "(test)", logger.Discard(), rt, 1<<20, httpfield.DefaultLimits())
		state := d.Serve()

		Expect(state).To(Equal(conn.StateClosed))
		Expect(out.String()).To(HavePrefix("HTTP/1.1 500 Internal Server Error\r\n"))
		Expect(out.String()).To(HaveSuffix("internal server error"))
	})

	It("rejects both framing headers present with a 400 and closes", func() {
		in := wire.NewReader(strings.NewReader(
			"POST / HTTP/1.1\r\nTransfer-Encoding: chunked\r\nContent-Length: 5\r\n\r\n"))
		out := &outBuffer{}

		rt := router.New()
		Expect(rt.AddRoute("POST", "^/$", func(req *request.Request) *response.Response {
			return response.New(200, "ok")
		})).To(BeNil())

		d := conn.New(in, out, "(test)", logger.Discard(), rt, 1<<20, httpfield.DefaultLimits())
		d.Serve()

		Expect(out.String()).To(HavePrefix("HTTP/1.1 400 Bad Request\r\n"))
	})

	It("tolerates a blank line before the request line", func() {
		in := wire.NewReader(strings.NewReader("\r\nGET / HTTP/1.1\r\n\r\n"))
		out := &outBuffer{}

		rt := router.New()
		Expect(rt.AddRoute("GET", "^/$", func(req *request.Request) *response.Response {
			return response.New(200, "ok")
		})).To(BeNil())

		d := conn.New(in, out, "(test)", logger.Discard(), rt, 1<<20, httpfield.DefaultLimits())
		d.Serve()

		Expect(out.String()).To(HavePrefix("HTTP/1.1 200 ok\r\n"))
	})

	It("exposes a chunked body as a live iterator the handler drains", func() {
		in := wire.NewReader(strings.NewReader(
			"POST / HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n5\r\nHello\r\n0\r\n\r\n"))
		out := &outBuffer{}

		var seen string
		rt := router.New()
		Expect(rt.AddRoute("POST", "^/$", func(req *request.Request) *response.Response {
			Expect(req.BodyKind).To(Equal(request.BodyChunked))
			for {
				data, _, _, ok, err := req.Chunks.Next()
				Expect(err).To(BeNil())
				if !ok {
					break
				}
				seen += string(data)
			}
			return response.New(200, "ok")
		})).To(BeNil())

		d := conn.New(in, out, "(test)", logger.Discard(), rt, 1<<20, httpfield.DefaultLimits())
		d.Serve()

		Expect(seen).To(Equal("Hello"))
		Expect(out.String()).To(HavePrefix("HTTP/1.1 200 ok\r\n"))
	})

	It("closes immediately on an empty input stream", func() {
		in := wire.NewReader(strings.NewReader(""))
		out := &outBuffer{}
		rt := router.New()

		d := conn.New(in, out, "(test)", logger.Discard(), rt, 1<<20, httpfield.DefaultLimits())
		state := d.Serve()

		Expect(state).To(Equal(conn.StateClosed))
		Expect(out.Len()).To(Equal(0))
	})

	It("matches the literal scenario byte-for-byte modulo the Date line", func() {
		in := wire.NewReader(strings.NewReader("GET / HTTP/1.1\r\nHost: x\r\n\r\n"))
		out := &outBuffer{}

		rt := router.New()
		Expect(rt.AddRoute("GET", "^/$", func(req *request.Request) *response.Response {
			resp := response.New(200, "ok")
			resp.SetBodyString("hi")
			return resp
		})).To(BeNil())

		d := conn.New(in, out, "(test)", logger.Discard(), rt, 1<<20, httpfield.DefaultLimits())
		d.Serve()

		re := regexp.MustCompile(`^HTTP/1\.1 200 ok\r\nDate: [^\r]+\r\nContent-Length: 2\r\nConnection: close\r\n\r\nhi$`)
		Expect(re.MatchString(out.String())).To(BeTrue())
	})
})
