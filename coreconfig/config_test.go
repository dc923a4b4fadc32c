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

package coreconfig_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/httpcore/coreconfig"
)

var _ = Describe("Config", func() {
	It("fills every knob with its default", func() {
		c := coreconfig.Default()
		Expect(c.MaxChunkSize).To(Equal(coreconfig.DefaultMaxChunkSize))
		Expect(c.FieldValueParserStackSizeLimit).To(Equal(coreconfig.DefaultFieldValueParserStackSizeLimit))
		Expect(c.FieldValueParserCommentDepthLimit).To(Equal(coreconfig.DefaultFieldValueParserCommentDepthLimit))
	})

	It("rejects a config missing Name/Listen/Expose", func() {
		c := coreconfig.Config{}
		Expect(c.Validate()).ToNot(BeNil())
	})

	It("accepts a fully populated config and backfills zero knobs", func() {
		c := coreconfig.Config{
			Name:   "demo",
			Listen: "127.0.0.1:8080",
			Expose: "http://example.test",
		}
		Expect(c.Validate()).To(BeNil())
		Expect(c.MaxChunkSize).To(Equal(coreconfig.DefaultMaxChunkSize))
	})

	It("rejects a malformed Listen address", func() {
		c := coreconfig.Config{
			Name:   "demo",
			Listen: "not a host port",
			Expose: "http://example.test",
		}
		Expect(c.Validate()).ToNot(BeNil())
	})

	It("clones independently", func() {
		a := coreconfig.Default()
		a.Name = "a"
		b := a.Clone()
		b.Name = "b"
		Expect(a.Name).To(Equal("a"))
		Expect(b.Name).To(Equal("b"))
	})
})
