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

package connctx_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/httpcore/connctx"
)

var _ = Describe("Context", func() {
	It("stamps a non-empty trace id", func() {
		c := connctx.New(nil)
		Expect(c.TraceID()).ToNot(BeEmpty())
	})

	It("gives distinct trace ids to distinct contexts", func() {
		a := connctx.New(nil)
		b := connctx.New(nil)
		Expect(a.TraceID()).ToNot(Equal(b.TraceID()))
	})

	It("stores, loads and deletes values", func() {
		c := connctx.New(nil)

		_, ok := c.Load("k")
		Expect(ok).To(BeFalse())

		c.Store("k", "v")
		val, ok := c.Load("k")
		Expect(ok).To(BeTrue())
		Expect(val).To(Equal("v"))

		c.Delete("k")
		_, ok = c.Load("k")
		Expect(ok).To(BeFalse())
	})

	It("treats a nil Store value as a delete", func() {
		c := connctx.New(nil)
		c.Store("k", "v")
		c.Store("k", nil)

		_, ok := c.Load("k")
		Expect(ok).To(BeFalse())
	})
})
