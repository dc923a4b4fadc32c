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

package codec_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/httpcore/codec"
)

var _ = Describe("PercentDecode / PercentEncode", func() {
	It("decodes '+' as space", func() {
		Expect(codec.PercentDecode("a+b")).To(Equal("a b"))
	})

	It("decodes %HH hex escapes", func() {
		Expect(codec.PercentDecode("a%20b")).To(Equal("a b"))
	})

	It("normalizes CRLF to LF", func() {
		Expect(codec.PercentDecode("a\r\nb")).To(Equal("a\nb"))
	})

	It("passes through malformed escapes literally", func() {
		Expect(codec.PercentDecode("100%")).To(Equal("100%"))
		Expect(codec.PercentDecode("100%zz")).To(Equal("100%zz"))
	})

	It("encodes space as '+' and LF as CRLF", func() {
		Expect(codec.PercentEncode("a b\nc")).To(Equal("a+b\r\nc"))
	})

	It("encodes reserved bytes as uppercase %HH", func() {
		Expect(codec.PercentEncode("a/b")).To(Equal("a%2Fb"))
	})

	DescribeTable("round trips (I2)",
		func(s string) {
			Expect(codec.PercentDecode(codec.PercentEncode(s))).To(Equal(s))
		},
		Entry("plain ascii", "hello world"),
		Entry("only LF", "line1\nline2\nline3"),
		Entry("only CRLF", "line1\r\nline2\r\nline3"),
		Entry("reserved bytes", "a=b&c;d/e?f#g"),
		Entry("already percent-looking", "100%done"),
	)
})

var _ = Describe("ParseQueryString", func() {
	It("splits on '&' and '=' and decodes both sides", func() {
		v := codec.ParseQueryString("a=1&b=2")
		Expect(v.Get("a")).To(Equal("1"))
		Expect(v.Get("b")).To(Equal("2"))
	})

	It("also splits on ';'", func() {
		v := codec.ParseQueryString("a=1;b=2")
		Expect(v.Get("a")).To(Equal("1"))
		Expect(v.Get("b")).To(Equal("2"))
	})

	It("silently drops pieces with no '='", func() {
		v := codec.ParseQueryString("a=1&bare&c=3")
		Expect(v.Keys()).To(Equal([]string{"a", "c"}))
	})

	It("accumulates repeated keys in arrival order", func() {
		v := codec.ParseQueryString("x=1&x=2&x=3")
		Expect(v.All("x")).To(Equal([]string{"1", "2", "3"}))
	})

	It("percent-decodes both key and value", func() {
		v := codec.ParseQueryString("a+b=c%20d")
		Expect(v.Get("a b")).To(Equal("c d"))
	})
})
