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

// Command httpcore-supervise wires a viper-loaded coreconfig.Config into a
// long-running supervisor.Supervisor fronting a demo router, exercising the
// full domain stack (config validation, TLS termination, accept loop,
// structured logging) end to end.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"

	"github.com/nabbar/httpcore/coreconfig"
	"github.com/nabbar/httpcore/logger"
	"github.com/nabbar/httpcore/request"
	"github.com/nabbar/httpcore/response"
	"github.com/nabbar/httpcore/router"
	"github.com/nabbar/httpcore/supervisor"
)

func main() {
	var (
		configFile = flag.String("config", "", "path to a json/yaml/toml config file")
		certFile   = flag.String("tls-cert", "", "PEM certificate file (optional)")
		keyFile    = flag.String("tls-key", "", "PEM key file (optional)")
	)
	flag.Parse()

	log := logger.New(os.Stderr, logger.Info)

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal("loading configuration", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}

	if verr := cfg.Validate(); verr != nil {
		log.Fatal("invalid configuration", logger.Fields{"error": verr.Error()})
		os.Exit(1)
	}

	rt := router.New()
	_ = rt.AddRoute("GET", "^/$", func(req *request.Request) *response.Response {
		resp := response.New(200, "ok")
		resp.SetBodyString("httpcore supervisor demo\n")
		return resp
	})

	s := supervisor.New(cfg, log)
	if *certFile != "" && *keyFile != "" {
		s.SetTLS(supervisor.TLSFiles{CertFile: *certFile, KeyFile: *keyFile})
	}

	if lerr := s.Listen(rt); lerr != nil {
		log.Fatal("starting supervisor", logger.Fields{"error": lerr.Error()})
		os.Exit(1)
	}

	waitForSignal()

	if serr := s.Shutdown(); serr != nil {
		log.Error("shutdown failed", logger.Fields{"error": serr.Error()})
	}
}

func loadConfig(path string) (coreconfig.Config, error) {
	cfg := coreconfig.Default()

	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func waitForSignal() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch
}
