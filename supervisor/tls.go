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
	"crypto/tls"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/nabbar/httpcore/herr"
	"github.com/nabbar/httpcore/logger"
)

// TLSFiles names the cert/key pair the supervisor terminates TLS with. Both
// are required; leave both empty for a plain TCP listener.
type TLSFiles struct {
	CertFile string
	KeyFile  string
}

func (t TLSFiles) enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

// tlsManager holds the live *tls.Config and swaps its certificate in place
// whenever the cert or key file changes on disk, so a long-running
// supervisor never needs a restart to pick up a renewed certificate.
type tlsManager struct {
	files TLSFiles
	cfg   atomic.Value // *tls.Config
	log   logger.Logger
	watch *fsnotify.Watcher
}

func newTLSManager(files TLSFiles, log logger.Logger) (*tlsManager, herr.Error) {
	m := &tlsManager{files: files, log: log}
	if err := m.reload(); err != nil {
		return nil, err
	}

	w, e := fsnotify.NewWatcher()
	if e != nil {
		return nil, herr.New(CodeTLSLoad, "starting certificate watcher", e)
	}
	if e = w.Add(files.CertFile); e != nil {
		_ = w.Close()
		return nil, herr.New(CodeTLSLoad, "watching certificate file", e)
	}
	if e = w.Add(files.KeyFile); e != nil {
		_ = w.Close()
		return nil, herr.New(CodeTLSLoad, "watching key file", e)
	}
	m.watch = w

	go m.run()
	return m, nil
}

func (m *tlsManager) reload() herr.Error {
	cert, e := tls.LoadX509KeyPair(m.files.CertFile, m.files.KeyFile)
	if e != nil {
		return herr.New(CodeTLSLoad, "loading certificate pair", e)
	}
	m.cfg.Store(&tls.Config{Certificates: []tls.Certificate{cert}})
	return nil
}

func (m *tlsManager) run() {
	for {
		select {
		case ev, ok := <-m.watch.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := m.reload(); err != nil {
				m.log.Warn("certificate reload failed", logger.Fields{"error": err.Error()})
				continue
			}
			m.log.Info("certificate reloaded", logger.Fields{"cert": m.files.CertFile})
		case e, ok := <-m.watch.Errors:
			if !ok {
				return
			}
			m.log.Warn("certificate watcher error", logger.Fields{"error": e.Error()})
		}
	}
}

func (m *tlsManager) current() *tls.Config {
	return m.cfg.Load().(*tls.Config)
}

func (m *tlsManager) close() {
	if m.watch != nil {
		_ = m.watch.Close()
	}
}
