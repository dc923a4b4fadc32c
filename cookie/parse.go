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

package cookie

// Pair is one name/value cookie-pair parsed from a request's Cookie header.
type Pair struct {
	Name  string
	Value string
}

// isTChar is the RFC 2616 token character set cookie-name is drawn from.
func isTChar(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

// isCookieOctet is the RFC 6265 §4.1.1 cookie-octet set.
func isCookieOctet(b byte) bool {
	switch {
	case b == 0x21:
		return true
	case b >= 0x23 && b <= 0x2B:
		return true
	case b >= 0x2D && b <= 0x3A:
		return true
	case b >= 0x3C && b <= 0x5B:
		return true
	case b >= 0x5D && b <= 0x7E:
		return true
	}
	return false
}

// Parse scans header against "cookie-pair (\";\" SP cookie-pair)*" end to
// end. Any deviation — a malformed name, an unquoted reserved byte in a
// value, a separator that isn't exactly "; " — rejects the whole header;
// callers drop it entirely and log a warning (spec.md §4.F, §7).
func Parse(header string) ([]Pair, bool) {
	var pairs []Pair
	i := 0
	n := len(header)

	for {
		nameStart := i
		for i < n && isTChar(header[i]) {
			i++
		}
		if i == nameStart {
			return nil, false
		}
		name := header[nameStart:i]

		if i >= n || header[i] != '=' {
			return nil, false
		}
		i++

		value, next, ok := parseCookieValue(header, i)
		if !ok {
			return nil, false
		}
		i = next

		pairs = append(pairs, Pair{Name: name, Value: value})

		if i == n {
			return pairs, true
		}
		if i+1 < n && header[i] == ';' && header[i+1] == ' ' {
			i += 2
			continue
		}
		return nil, false
	}
}

func parseCookieValue(header string, i int) (value string, next int, ok bool) {
	n := len(header)
	if i < n && header[i] == '"' {
		j := i + 1
		for j < n && header[j] != '"' {
			if !isCookieOctet(header[j]) {
				return "", 0, false
			}
			j++
		}
		if j >= n {
			return "", 0, false
		}
		return header[i+1 : j], j + 1, true
	}

	start := i
	for i < n && isCookieOctet(header[i]) {
		i++
	}
	return header[start:i], i, true
}
