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

package httpfield_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/httpcore/httpfield"
)

var _ = Describe("Parse", func() {
	limits := httpfield.DefaultLimits()

	It("parses a single bare token", func() {
		els, ok := httpfield.Parse("keep-alive", limits)
		Expect(ok).To(BeTrue())
		Expect(els).To(HaveLen(1))
		Expect(els[0].Value).To(Equal("keep-alive"))
	})

	It("parses a comma-separated list", func() {
		els, ok := httpfield.Parse("gzip, deflate, br", limits)
		Expect(ok).To(BeTrue())
		Expect(els).To(HaveLen(3))
		Expect(els[0].Value).To(Equal("gzip"))
		Expect(els[1].Value).To(Equal("deflate"))
		Expect(els[2].Value).To(Equal("br"))
	})

	It("parses parameters with unquoted and quoted values", func() {
		els, ok := httpfield.Parse(`gzip; q=0.8, br; q="1.0"`, limits)
		Expect(ok).To(BeTrue())
		Expect(els).To(HaveLen(2))

		p, found := els[0].Param("q")
		Expect(found).To(BeTrue())
		Expect(p.Value).To(Equal("0.8"))

		p, found = els[1].Param("q")
		Expect(found).To(BeTrue())
		Expect(p.Value).To(Equal("1.0"))
	})

	// tchar (RFC 9110 §5.6.2) excludes '/': a media-type-shaped value falls
	// out of list/parameter structure into unstructured CONTENT once it hits
	// the slash. The lexer still accepts the field (raw survives), it simply
	// yields a single, truncated element rather than two.
	It("falls back to CONTENT on bytes outside the list/parameter grammar", func() {
		els, ok := httpfield.Parse("text/html", limits)
		Expect(ok).To(BeTrue())
		Expect(els).To(HaveLen(1))
		Expect(els[0].Value).To(Equal("text"))
	})

	It("unescapes backslash sequences inside quoted strings", func() {
		els, ok := httpfield.Parse(`x; name="a\"b\\c"`, limits)
		Expect(ok).To(BeTrue())
		p, found := els[0].Param("name")
		Expect(found).To(BeTrue())
		Expect(p.Value).To(Equal(`a"b\c`))
	})

	It("accepts a bare attribute parameter with no value", func() {
		els, ok := httpfield.Parse("state; secure", limits)
		Expect(ok).To(BeTrue())
		p, found := els[0].Param("secure")
		Expect(found).To(BeTrue())
		Expect(p.HasValue).To(BeFalse())
	})

	It("collects nested comment text", func() {
		els, ok := httpfield.Parse("1.1 (nginx (proxy))", limits)
		Expect(ok).To(BeTrue())
		Expect(els[0].Comments).To(HaveLen(1))
		Expect(els[0].Comments[0].Children).To(HaveLen(1))
	})

	// scenario #6: two bare tokens with no list delimiter downgrade the
	// whole value to unstructured content (invariant I3/I6 interplay).
	It("downgrades a second bare token with no delimiter", func() {
		els, ok := httpfield.Parse("a b", limits)
		Expect(ok).To(BeTrue())
		Expect(els).To(BeEmpty())
	})

	It("rejects a field value containing a raw control byte", func() {
		_, ok := httpfield.Parse("a\x01b", limits)
		Expect(ok).To(BeFalse())
	})

	It("rejects an unterminated quoted string", func() {
		_, ok := httpfield.Parse(`a; name="unterminated`, limits)
		Expect(ok).To(BeFalse())
	})

	It("enforces the comment nesting depth limit", func() {
		deep := httpfield.Limits{EscapeStackSize: 1000, CommentDepth: 2}
		_, ok := httpfield.Parse("(((too deep)))", deep)
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Field and Store", func() {
	It("concatenates elements across repeated occurrences (I3)", func() {
		f := httpfield.NewField("Accept", "a, b", httpfield.DefaultLimits())
		f.AddValue("c")
		Expect(f.Elements()).To(HaveLen(3))
	})

	It("drops occurrences that fail to lex from raw, keeps the rest", func() {
		f := httpfield.NewField("X", "ok", httpfield.DefaultLimits())
		f.AddValue("bad\x01value")
		Expect(f.Raw()).To(Equal([]string{"ok"}))
	})

	It("looks up field names case-insensitively and preserves first casing (I6)", func() {
		s := httpfield.NewStore(httpfield.DefaultLimits())
		s.Add("Content-Type", "text/plain")
		s.Add("content-type", "text/html")

		f, ok := s.Get("CONTENT-TYPE")
		Expect(ok).To(BeTrue())
		Expect(f.Name).To(Equal("Content-Type"))
		Expect(f.Unvalidated()).To(Equal([]string{"text/plain", "text/html"}))
	})
})
