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

import "sync"

// CodeError is a small namespaced error code, one block per component.
type CodeError uint16

// UnknownError is the fallback code for errors created without a registered code.
const UnknownError CodeError = 0

// Min* blocks give every component a disjoint 100-wide range of codes, the
// same layout convention as the teacher's errors/modules.go.
const (
	MinCodec      CodeError = 100
	MinHttpField  CodeError = 200
	MinCookie     CodeError = 300
	MinBody       CodeError = 400
	MinRequest    CodeError = 500
	MinRouter     CodeError = 600
	MinResponse   CodeError = 700
	MinConn       CodeError = 800
	MinCoreConfig CodeError = 900
	MinSupervisor CodeError = 1000
)

var (
	muMessages sync.RWMutex
	messages   = map[CodeError]string{
		UnknownError: "unknown error",
	}
)

// Register associates a human-readable message with a code. Called once per
// code from each component's init(), mirroring RegisterIdFctMessage.
func Register(code CodeError, message string) {
	muMessages.Lock()
	defer muMessages.Unlock()
	messages[code] = message
}

// Message returns the registered message for code, or the unknown fallback.
func (c CodeError) Message() string {
	muMessages.RLock()
	defer muMessages.RUnlock()

	if m, ok := messages[c]; ok {
		return m
	}
	return messages[UnknownError]
}

// Uint16 returns the underlying numeric value.
func (c CodeError) Uint16() uint16 {
	return uint16(c)
}

// Error builds a new Error from this code's registered message, with parents.
func (c CodeError) Error(parents ...error) Error {
	return New(c, c.Message(), parents...)
}
