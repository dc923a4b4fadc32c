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

package router_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/httpcore/request"
	"github.com/nabbar/httpcore/response"
	"github.com/nabbar/httpcore/router"
)

var _ = Describe("Router", func() {
	// scenario #1: simple GET with a matching route.
	It("dispatches the first matching route for the method", func() {
		r := router.New()
		Expect(r.AddRoute("GET", "^/$", func(req *request.Request) *response.Response {
			resp := response.New(200, "ok")
			resp.SetBodyString("hi")
			return resp
		})).To(BeNil())

		req := request.New("GET", "/", "HTTP/1.1")
		resp, haveRoutes, matched := r.Dispatch(req)
		Expect(haveRoutes).To(BeTrue())
		Expect(matched).To(BeTrue())
		Expect(resp.Status).To(Equal(200))
		Expect(resp.BodyString()).To(Equal("hi"))
	})

	// scenario #2: missing route (no routes registered for the method).
	It("reports no routes for an unregistered method", func() {
		r := router.New()
		Expect(r.AddRoute("GET", "^/a$", nil)).To(BeNil())

		req := request.New("PUT", "/a", "HTTP/1.1")
		_, haveRoutes, matched := r.Dispatch(req)
		Expect(haveRoutes).To(BeFalse())
		Expect(matched).To(BeFalse())
	})

	It("reports a registered method with no matching pattern", func() {
		r := router.New()
		Expect(r.AddRoute("GET", "^/a$", nil)).To(BeNil())

		req := request.New("GET", "/b", "HTTP/1.1")
		_, haveRoutes, matched := r.Dispatch(req)
		Expect(haveRoutes).To(BeTrue())
		Expect(matched).To(BeFalse())
	})

	It("tries patterns in insertion order and stops at the first match", func() {
		r := router.New()
		var hit string
		Expect(r.AddRoute("GET", "^/x$", func(req *request.Request) *response.Response {
			hit = "first"
			return response.New(200, "ok")
		})).To(BeNil())
		Expect(r.AddRoute("GET", "^/.*$", func(req *request.Request) *response.Response {
			hit = "second"
			return response.New(200, "ok")
		})).To(BeNil())

		req := request.New("GET", "/x", "HTTP/1.1")
		_, _, matched := r.Dispatch(req)
		Expect(matched).To(BeTrue())
		Expect(hit).To(Equal("first"))
	})

	It("stores pattern captures on Request.Matches", func() {
		r := router.New()
		Expect(r.AddRoute("GET", `^/users/([0-9]+)$`, func(req *request.Request) *response.Response {
			return response.New(200, "ok")
		})).To(BeNil())

		req := request.New("GET", "/users/42", "HTTP/1.1")
		_, _, matched := r.Dispatch(req)
		Expect(matched).To(BeTrue())
		Expect(req.Matches).To(Equal([]string{"42"}))
	})

	It("rejects an invalid pattern at registration time", func() {
		r := router.New()
		err := r.AddRoute("GET", "(unterminated", nil)
		Expect(err).NotTo(BeNil())
		Expect(err.Code()).To(Equal(router.CodeInvalidPattern))
	})
})
