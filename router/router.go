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

package router

import (
	"regexp"

	"github.com/nabbar/httpcore/herr"
	"github.com/nabbar/httpcore/request"
	"github.com/nabbar/httpcore/response"
)

// Handler produces a Response from a Request. Matches (capture groups from
// the winning pattern) are already set on req by the time Handler runs.
type Handler func(req *request.Request) *response.Response

type route struct {
	pattern string
	re      *regexp.Regexp
	handler Handler
}

// Router holds a per-method ordered list of (pattern, handler) routes and
// dispatches with first-match-wins semantics.
type Router struct {
	byMethod map[string][]route
}

// New returns an empty Router.
func New() *Router {
	return &Router{byMethod: make(map[string][]route)}
}

// AddRoute appends a route for method (compared case-exact). pattern is a
// regexp against the full request path; it is compiled eagerly so a bad
// pattern fails at registration time, not at dispatch time.
func (r *Router) AddRoute(method, pattern string, handler Handler) herr.Error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return herr.New(CodeInvalidPattern, "invalid route pattern regexp", err)
	}
	r.byMethod[method] = append(r.byMethod[method], route{pattern: pattern, re: re, handler: handler})
	return nil
}

// Dispatch tries each route registered for req.Method, in insertion order,
// against req.Path. The first non-empty match wins; its captures (skipping
// the whole-match group) are stored on req.Matches before the handler runs.
// No routes for the method yields (nil, false, false); routes but no match
// yields (nil, true, false).
func (r *Router) Dispatch(req *request.Request) (resp *response.Response, haveRoutes bool, matched bool) {
	routes, ok := r.byMethod[req.Method]
	if !ok || len(routes) == 0 {
		return nil, false, false
	}
	for _, rt := range routes {
		m := rt.re.FindStringSubmatch(req.Path)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			req.Matches = m[1:]
		}
		return rt.handler(req), true, true
	}
	return nil, true, false
}
