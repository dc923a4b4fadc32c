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

// Command httpcore-stdio runs a single request/response cycle over
// (stdin, stdout), the default listener spec.md §6 names explicitly: it is
// yielded exactly once, never re-entered. Useful under a socket-activation
// supervisor (inetd-style) that hands the process one already-accepted
// connection per invocation.
package main

import (
	"os"

	"github.com/nabbar/httpcore/conn"
	"github.com/nabbar/httpcore/coreconfig"
	"github.com/nabbar/httpcore/httpfield"
	"github.com/nabbar/httpcore/logger"
	"github.com/nabbar/httpcore/request"
	"github.com/nabbar/httpcore/response"
	"github.com/nabbar/httpcore/router"
	"github.com/nabbar/httpcore/wire"
)

func main() {
	log := logger.New(os.Stderr, logger.Info)
	cfg := coreconfig.Default()

	rt := router.New()
	_ = rt.AddRoute("GET", "^/$", func(req *request.Request) *response.Response {
		resp := response.New(200, "ok")
		resp.SetBodyString("httpcore stdio demo\n")
		return resp
	})

	in := wire.NewReader(os.Stdin)
	out := wire.NewWriter(os.Stdout)

	d := conn.New(in, out, "(stdio)", log, rt, cfg.MaxChunkSize, httpfield.DefaultLimits())
	d.Serve()
}
