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

package request

import (
	"strings"

	"github.com/nabbar/httpcore/cookie"
	"github.com/nabbar/httpcore/httpfield"
	"github.com/nabbar/httpcore/logger"
	"github.com/nabbar/httpcore/wire"
)

// ReadFields reads field lines from in until a blank CRLF line, appending
// each into store. "Cookie" lines are diverted to the cookie parser instead
// and merged into cookies; only the first Cookie occurrence is honored, per
// RFC 6265 request-side guidance. A line that does not split into a valid
// field name, a ':' and a value is logged at WARN and otherwise ignored — it
// does not abort the read.
//
// This scanner serves the header phase only; chunked-body trailer lines are
// read by the body package's own decoder.
func ReadFields(in wire.Reader, store *httpfield.Store, log logger.Logger) (cookies []cookie.Pair, err error) {
	haveCookie := false

	for {
		line, rerr := in.ReadLine()
		if rerr != nil {
			return cookies, rerr
		}
		log.TraceLine(logger.Inbound, line)

		trimmed := trimCRLF(line)
		if trimmed == "" {
			return cookies, nil
		}

		name, value, ok := splitFieldLine(trimmed)
		if !ok {
			log.Warn("malformed header line", logger.Fields{"line": trimmed})
			continue
		}

		if strings.EqualFold(name, "Cookie") {
			if haveCookie {
				continue
			}
			haveCookie = true
			pairs, cok := cookie.Parse(value)
			if !cok {
				log.Warn("malformed Cookie header", logger.Fields{"value": value})
				continue
			}
			cookies = pairs
			continue
		}

		store.Add(name, value)
	}
}

// splitFieldLine splits "Name: value" into its two halves. RFC 9112
// requires no whitespace before the colon; one optional leading SP after
// it is trimmed along with any other OWS.
func splitFieldLine(line string) (name, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i <= 0 {
		return "", "", false
	}
	name = line[:i]
	for _, c := range name {
		if !isFieldNameChar(byte(c)) {
			return "", "", false
		}
	}
	value = strings.Trim(line[i+1:], " \t")
	return name, value, true
}

func isFieldNameChar(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b >= '0' && b <= '9':
		return true
	case strings.IndexByte("!#$%&'*+-.^_`|~", b) >= 0:
		return true
	}
	return false
}

func trimCRLF(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}
