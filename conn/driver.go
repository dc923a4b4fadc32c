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

package conn

import (
	"context"

	"github.com/nabbar/httpcore/connctx"
	"github.com/nabbar/httpcore/httpfield"
	"github.com/nabbar/httpcore/logger"
	"github.com/nabbar/httpcore/request"
	"github.com/nabbar/httpcore/response"
	"github.com/nabbar/httpcore/router"
	"github.com/nabbar/httpcore/wire"
)

// State is one of the five connection-driver states spec.md §4.J names.
type State uint8

const (
	StateStartLine State = iota
	StateHeaderField
	StateTrailerField
	StateResponse
	StateClosed
)

// Driver orchestrates one accepted connection end to end. It is one-shot:
// Serve handles exactly one request and always leaves the driver in
// StateClosed, per spec.md's deferred-pipelining design decision.
type Driver struct {
	in  wire.Reader
	out wire.Writer
	log logger.Logger
	ctx *connctx.Context

	router       *router.Router
	maxChunkSize int
	fieldLimits  httpfield.Limits

	state State
}

// New builds a Driver. label becomes the connection's logger prefix
// (defaults to "(stdio)" at the supervisor boundary per spec.md §6). Each
// Driver gets its own trace id, carried in ctx and logged on the
// "connection accepted" line; the driver's other log lines do not carry it.
func New(in wire.Reader, out wire.Writer, label string, log logger.Logger, rt *router.Router, maxChunkSize int, fieldLimits httpfield.Limits) *Driver {
	cc := connctx.New(context.Background())
	return &Driver{
		in:           in,
		out:          out,
		log:          log.SetLabel(label),
		ctx:          cc,
		router:       rt,
		maxChunkSize: maxChunkSize,
		fieldLimits:  fieldLimits,
		state:        StateStartLine,
	}
}

// TraceID returns the connection's trace id.
func (d *Driver) TraceID() string { return d.ctx.TraceID() }

// State reports the driver's current state.
func (d *Driver) State() State { return d.state }

// Serve drives the connection through exactly one request/response cycle
// and returns the final state (always StateClosed).
func (d *Driver) Serve() (final State) {
	defer func() {
		d.state = StateClosed
		final = d.state
	}()

	d.log.Debug("connection accepted", logger.Fields{"trace_id": d.ctx.TraceID()})

	req, ok := d.readStartLine()
	if !ok {
		return d.state
	}
	d.state = StateHeaderField

	headers := httpfield.NewStore(d.fieldLimits)
	cookies, rerr := request.ReadFields(d.in, headers, d.log)
	if rerr != nil {
		return d.state
	}
	req.Headers = headers
	req.Cookies = cookies

	if berr := d.attachBody(req); berr != nil {
		d.log.Error("body framing error", logger.Fields{"error": berr.Error()})
		d.writeError(req.Method, 400, "bad request")
		return d.state
	}

	d.state = StateResponse
	resp := d.dispatch(req)
	d.writeResponse(req.Method, resp)
	return d.state
}

// readStartLine loops, tolerant of blank lines, until a request line
// matches or the input stream ends.
func (d *Driver) readStartLine() (*request.Request, bool) {
	for {
		line, err := d.in.ReadLine()
		if err != nil {
			return nil, false
		}
		d.log.TraceLine(logger.Inbound, line)

		req, ok := request.ParseStartLine(line)
		if ok {
			return req, true
		}
		d.log.Warn("malformed start line", logger.Fields{"line": line})
	}
}

// dispatch runs the router and the matched handler, recovering a handler
// panic into a 500 per spec.md §7. The recover must wrap the call that
// actually invokes the handler (router.Dispatch), not a call made after it
// returns, or a panicking handler would unwind straight past this function.
func (d *Driver) dispatch(req *request.Request) (resp *response.Response) {
	defer func() {
		if rec := recover(); rec != nil {
			d.log.Error("handler panic", logger.Fields{"cause": rec})
			resp = internalServerError()
		}
	}()

	result, haveRoutes, matched := d.router.Dispatch(req)
	switch {
	case !haveRoutes:
		d.log.Info("no routes for method", logger.Fields{"method": req.Method})
		return notImplemented()
	case !matched:
		d.log.Info("no pattern match", logger.Fields{"path": req.Path})
		return notFound()
	}

	if req.BodyKind == request.BodyChunked {
		req.Trailers = req.Chunks.Trailers()
	}
	return result
}

func (d *Driver) writeResponse(method string, resp *response.Response) {
	if err := response.Write(d.out, method, resp, true); err != nil {
		d.log.Error("write response failed", logger.Fields{"error": err.Error()})
	}
}

func (d *Driver) writeError(method string, status int, body string) {
	d.writeResponse(method, plainText(status, body))
}

func plainText(status int, body string) *response.Response {
	resp := response.New(status, statusReason(status))
	resp.SetBodyString(body)
	return resp
}

func statusReason(status int) string {
	switch status {
	case 400:
		return "Bad Request"
	case 404:
		return "Not Found"
	case 500:
		return "Internal Server Error"
	case 501:
		return "Not Implemented"
	default:
		return ""
	}
}

func notImplemented() *response.Response { return plainText(501, "not implemented") }
func notFound() *response.Response { return plainText(404, "not found") }
func internalServerError() *response.Response { return plainText(500, "internal server error") }
