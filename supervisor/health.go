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

package supervisor

import "sync/atomic"

// Health is a point-in-time snapshot of a Supervisor's accept loop.
// Connections are accepted and closed from different goroutines, so the
// counters backing it are atomic; Health itself is a plain copied value.
type Health struct {
	Listening         bool
	ConnectionsTotal  uint64
	ConnectionsActive int64
}

type health struct {
	listening atomic.Bool
	total     atomic.Uint64
	active    atomic.Int64
}

func newHealth() *health {
	return &health{}
}

func (h *health) setListening(v bool) {
	h.listening.Store(v)
}

func (h *health) connectionAccepted() {
	h.total.Add(1)
	h.active.Add(1)
}

func (h *health) connectionClosed() {
	h.active.Add(-1)
}

func (h *health) snapshot() Health {
	return Health{
		Listening:         h.listening.Load(),
		ConnectionsTotal:  h.total.Load(),
		ConnectionsActive: h.active.Load(),
	}
}
