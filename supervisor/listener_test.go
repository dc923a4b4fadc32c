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

package supervisor_test

import (
	"bufio"
	"fmt"
	"net"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/httpcore/coreconfig"
	"github.com/nabbar/httpcore/logger"
	"github.com/nabbar/httpcore/request"
	"github.com/nabbar/httpcore/response"
	"github.com/nabbar/httpcore/router"
	"github.com/nabbar/httpcore/supervisor"
)

var _ = Describe("Supervisor", func() {
	It("accepts a TCP connection and serves one request through the core", func() {
		cfg := coreconfig.Default()
		cfg.Name = "test"
		cfg.Listen = "127.0.0.1:0"
		cfg.Expose = "http://127.0.0.1"

		rt := router.New()
		Expect(rt.AddRoute("GET", "^/$", func(req *request.Request) *response.Response {
			resp := response.New(200, "ok")
			resp.SetBodyString("hi")
			return resp
		})).To(BeNil())

		s := supervisor.New(cfg, logger.Discard())
		Expect(s.Listen(rt)).To(BeNil())
		defer func() { _ = s.Shutdown() }()

		Expect(s.IsRunning()).To(BeTrue())

		c, err := net.DialTimeout("tcp", s.Addr().String(), time.Second)
		Expect(err).To(BeNil())
		defer func() { _ = c.Close() }()

		_, err = fmt.Fprint(c, "GET / HTTP/1.1\r\nHost: x\r\n\r\n")
		Expect(err).To(BeNil())

		status, err := bufio.NewReader(c).ReadString('\n')
		Expect(err).To(BeNil())
		Expect(status).To(Equal("HTTP/1.1 200 ok\r\n"))
	})

	It("rejects a second Listen call while already running", func() {
		cfg := coreconfig.Default()
		cfg.Name = "test"
		cfg.Listen = "127.0.0.1:0"
		cfg.Expose = "http://127.0.0.1"

		s := supervisor.New(cfg, logger.Discard())
		Expect(s.Listen(router.New())).To(BeNil())
		defer func() { _ = s.Shutdown() }()

		Expect(s.Listen(router.New())).ToNot(BeNil())
	})

	It("reports health through Shutdown", func() {
		cfg := coreconfig.Default()
		cfg.Name = "test"
		cfg.Listen = "127.0.0.1:0"
		cfg.Expose = "http://127.0.0.1"

		s := supervisor.New(cfg, logger.Discard())
		Expect(s.Listen(router.New())).To(BeNil())
		Expect(s.Health().Listening).To(BeTrue())

		Expect(s.Shutdown()).To(BeNil())
		Eventually(func() bool { return s.Health().Listening }).Should(BeFalse())
	})
})
