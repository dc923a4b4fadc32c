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

import (
	"context"
	"crypto/tls"
	"net"
	"sync/atomic"

	"github.com/nabbar/httpcore/conn"
	"github.com/nabbar/httpcore/coreconfig"
	"github.com/nabbar/httpcore/herr"
	"github.com/nabbar/httpcore/httpfield"
	"github.com/nabbar/httpcore/logger"
	"github.com/nabbar/httpcore/router"
	"github.com/nabbar/httpcore/wire"
)

// Supervisor accepts TCP connections and spawns one conn.Driver per
// connection, the reference "listener adapter" spec.md §6 leaves outside
// the core's own scope.
type Supervisor struct {
	cfg coreconfig.Config
	log logger.Logger
	tls TLSFiles

	running atomic.Bool
	health  *health

	ln  net.Listener
	tm  *tlsManager
	cnl context.CancelFunc
}

// New builds a Supervisor from cfg. Call SetTLS before Listen to terminate
// TLS; otherwise connections are handled as plain TCP.
func New(cfg coreconfig.Config, log logger.Logger) *Supervisor {
	return &Supervisor{
		cfg:    cfg,
		log:    log,
		health: newHealth(),
	}
}

// SetTLS configures the cert/key pair this supervisor terminates TLS with.
// Must be called before Listen.
func (s *Supervisor) SetTLS(files TLSFiles) {
	s.tls = files
}

// IsRunning reports whether Listen has an active accept loop.
func (s *Supervisor) IsRunning() bool {
	return s.running.Load()
}

// Addr returns the bound listener address. Only meaningful after a
// successful Listen; useful for tests that bind an ephemeral port.
func (s *Supervisor) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Health returns the supervisor's live health snapshot.
func (s *Supervisor) Health() Health {
	return s.health.snapshot()
}

// Listen binds cfg.Listen and starts accepting connections in a background
// goroutine, dispatching each to rt via a fresh conn.Driver. It returns once
// the listener is bound; accept errors are logged, not returned.
func (s *Supervisor) Listen(rt *router.Router) herr.Error {
	if s.running.Load() {
		return herr.New(CodeAlreadyRunning, "listen called twice")
	}

	ln, e := net.Listen("tcp", s.cfg.Listen)
	if e != nil {
		return herr.New(CodeListen, "binding listener", e)
	}

	if s.tls.enabled() {
		tm, err := newTLSManager(s.tls, s.log)
		if err != nil {
			_ = ln.Close()
			return err
		}
		s.tm = tm
		ln = tls.NewListener(ln, &tls.Config{
			GetConfigForClient: func(*tls.ClientHelloInfo) (*tls.Config, error) {
				return tm.current(), nil
			},
		})
	}

	ctx, cnl := context.WithCancel(context.Background())
	s.ln = ln
	s.cnl = cnl
	s.running.Store(true)
	s.health.setListening(true)

	s.log.Info("supervisor listening", logger.Fields{"name": s.cfg.Name, "listen": s.cfg.Listen})

	go s.acceptLoop(ctx, rt)
	return nil
}

func (s *Supervisor) acceptLoop(ctx context.Context, rt *router.Router) {
	defer func() {
		s.running.Store(false)
		s.health.setListening(false)
	}()

	limits := httpfield.DefaultLimits()
	if s.cfg.FieldValueParserStackSizeLimit > 0 {
		limits.EscapeStackSize = s.cfg.FieldValueParserStackSizeLimit
	}
	if s.cfg.FieldValueParserCommentDepthLimit > 0 {
		limits.CommentDepth = s.cfg.FieldValueParserCommentDepthLimit
	}

	for {
		c, e := s.ln.Accept()
		if e != nil {
			if ctx.Err() != nil {
				return
			}
			s.log.Warn("accept failed", logger.Fields{"error": e.Error()})
			continue
		}

		s.health.connectionAccepted()
		go s.serve(c, rt, limits)
	}
}

func (s *Supervisor) serve(c net.Conn, rt *router.Router, limits httpfield.Limits) {
	defer func() { _ = c.Close() }()

	label := c.RemoteAddr().String()
	in := wire.NewReader(c)
	out := wire.NewWriter(c)

	d := conn.New(in, out, label, s.log, rt, s.cfg.MaxChunkSize, limits)
	d.Serve()

	s.health.connectionClosed()
}

// Shutdown stops accepting new connections and closes the listener.
// In-flight connections are left to finish on their own, consistent with
// the core's one-shot-per-connection design.
func (s *Supervisor) Shutdown() herr.Error {
	if !s.running.Load() {
		return herr.New(CodeNotRunning, "shutdown called while not running")
	}

	s.cnl()
	if s.tm != nil {
		s.tm.close()
	}
	if e := s.ln.Close(); e != nil {
		return herr.New(CodeListen, "closing listener", e)
	}
	return nil
}
