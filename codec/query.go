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

package codec

// Values is an ordered-by-first-seen-key map of decoded query parameters.
// Distinct keys are kept in the order they were first seen; repeated
// occurrences of the same key append to its slice in arrival order.
type Values struct {
	order []string
	data  map[string][]string
}

// NewValues returns an empty, ready-to-use Values.
func NewValues() *Values {
	return &Values{data: make(map[string][]string)}
}

// Add appends val to key, recording key's first-seen position if new.
func (v *Values) Add(key, val string) {
	if _, ok := v.data[key]; !ok {
		v.order = append(v.order, key)
	}
	v.data[key] = append(v.data[key], val)
}

// Get returns the first value for key, or "" if absent.
func (v *Values) Get(key string) string {
	if vs := v.data[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// All returns every value recorded for key, in arrival order.
func (v *Values) All(key string) []string {
	return v.data[key]
}

// Keys returns every distinct key in first-seen order.
func (v *Values) Keys() []string {
	return v.order
}

// ParseQueryString splits q on ';' or '&', each piece on its first '='.
// A piece with no '=' is silently dropped (spec.md §4.A). Both sides of
// each pair are percent-decoded independently.
func ParseQueryString(q string) *Values {
	v := NewValues()

	start := 0
	for i := 0; i <= len(q); i++ {
		if i == len(q) || q[i] == ';' || q[i] == '&' {
			piece := q[start:i]
			start = i + 1

			if piece == "" {
				continue
			}

			eq := -1
			for j := 0; j < len(piece); j++ {
				if piece[j] == '=' {
					eq = j
					break
				}
			}

			if eq < 0 {
				continue
			}

			key := PercentDecode(piece[:eq])
			val := PercentDecode(piece[eq+1:])
			v.Add(key, val)
		}
	}

	return v
}
