/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

package herr

import (
	"fmt"
	"strings"
)

// Error is a code-carrying error that can chain parent causes without losing
// the code of the original failure.
type Error interface {
	error

	// Code returns this error's own code (not a parent's).
	Code() CodeError

	// HasCode reports whether this error or any parent carries code.
	HasCode(code CodeError) bool

	// Unwrap exposes parents for errors.Is/errors.As.
	Unwrap() []error

	// AddParent appends additional causes after construction.
	AddParent(parent ...error)

	// HasParent reports whether any parent cause was recorded.
	HasParent() bool
}

type ers struct {
	code    CodeError
	message string
	parents []error
}

// New builds an Error with an explicit code and message.
func New(code CodeError, message string, parents ...error) Error {
	e := &ers{code: code, message: message}
	e.AddParent(parents...)
	return e
}

// Newf is New with fmt.Sprintf-style formatting of message.
func Newf(code CodeError, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}

func (e *ers) Error() string {
	if e.message == "" {
		return UnknownError.Message()
	}
	return e.message
}

func (e *ers) Code() CodeError {
	return e.code
}

func (e *ers) HasCode(code CodeError) bool {
	if e.code == code {
		return true
	}
	for _, p := range e.parents {
		var he Error
		if ok := As(p, &he); ok && he.HasCode(code) {
			return true
		}
	}
	return false
}

func (e *ers) Unwrap() []error {
	return e.parents
}

func (e *ers) AddParent(parent ...error) {
	for _, p := range parent {
		if p != nil {
			e.parents = append(e.parents, p)
		}
	}
}

func (e *ers) HasParent() bool {
	return len(e.parents) > 0
}

// As is a tiny local helper so herr does not need to import errors just for
// a single-level type assertion chain; it understands *ers directly and any
// other value implementing Error. It does not unwrap err: any other error
// yields false.
func As(err error, target *Error) bool {
	if err == nil {
		return false
	}
	if e, ok := err.(*ers); ok {
		*target = e
		return true
	}
	if e, ok := err.(Error); ok {
		*target = e
		return true
	}
	return false
}

// Join renders every error in the chain (outermost first) as one string,
// separated by " <- ", for log lines that want the full cause chain inline.
func Join(err error) string {
	if err == nil {
		return ""
	}

	var parts []string
	var walk func(e error)
	walk = func(e error) {
		if e == nil {
			return
		}
		parts = append(parts, e.Error())
		if u, ok := e.(interface{ Unwrap() []error }); ok {
			for _, p := range u.Unwrap() {
				walk(p)
			}
		}
	}
	walk(err)
	return strings.Join(parts, " <- ")
}
