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

package connctx

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Context pairs a standard context.Context with an atomic key/value map,
// scoped to a single accepted connection. The zero value is not usable;
// build one with New.
type Context struct {
	context.Context

	id string
	m  sync.Map
}

// New derives a Context from parent (context.Background() if nil) and stamps
// it with a fresh trace id.
func New(parent context.Context) *Context {
	if parent == nil {
		parent = context.Background()
	}
	return &Context{
		Context: parent,
		id:      uuid.NewString(),
	}
}

// TraceID returns the connection's trace id, stable for the Context's
// lifetime.
func (c *Context) TraceID() string {
	return c.id
}

// Load returns the value stored under key, if any.
func (c *Context) Load(key string) (val interface{}, ok bool) {
	return c.m.Load(key)
}

// Store associates val with key. A nil val removes the key.
func (c *Context) Store(key string, val interface{}) {
	if val == nil {
		c.m.Delete(key)
		return
	}
	c.m.Store(key, val)
}

// Delete removes key, if present.
func (c *Context) Delete(key string) {
	c.m.Delete(key)
}
