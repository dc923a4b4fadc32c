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

package httpfield

import (
	"strings"
	"sync"
)

// Field holds every wire occurrence of one header or trailer name, plus the
// lazily-computed, memoized views spec.md §4.E names: raw (the occurrences
// that lexed cleanly) and elements (their concatenated structured values,
// invariant I3).
type Field struct {
	Name string

	limits Limits
	values []string

	once     sync.Once
	raw      []string
	elements []Element
}

// NewField starts a field with its first wire occurrence.
func NewField(name, value string, limits Limits) *Field {
	return &Field{Name: name, limits: limits, values: []string{value}}
}

// AddValue records a repeated occurrence of this field name (multiple header
// lines with the same name are distinct occurrences, not one concatenated
// string, until Concat is asked for).
func (f *Field) AddValue(value string) {
	f.values = append(f.values, value)
	f.once = sync.Once{}
	f.raw, f.elements = nil, nil
}

// Unvalidated returns every occurrence exactly as received, including ones
// that fail structured-field lexing.
func (f *Field) Unvalidated() []string {
	return append([]string(nil), f.values...)
}

func (f *Field) parse() {
	f.once.Do(func() {
		for _, v := range f.values {
			els, ok := Parse(v, f.limits)
			if !ok {
				continue
			}
			f.raw = append(f.raw, v)
			f.elements = append(f.elements, els...)
		}
	})
}

// Raw returns the subset of occurrences that parsed as well-formed
// structured field values.
func (f *Field) Raw() []string {
	f.parse()
	return append([]string(nil), f.raw...)
}

// Elements returns the concatenation of every occurrence's elements, in
// arrival order (invariant I3).
func (f *Field) Elements() []Element {
	f.parse()
	return append([]Element(nil), f.elements...)
}

// Concat joins every wire occurrence with sep, the RFC 9110 §5.3 rule for
// combining repeated field lines into one value.
func (f *Field) Concat(sep string) string {
	return strings.Join(f.values, sep)
}

// ContainsValue reports whether any element's bare value case-insensitively
// equals v.
func (f *Field) ContainsValue(v string) bool {
	for _, e := range f.Elements() {
		if equalFold(e.Value, v) {
			return true
		}
	}
	return false
}

// FindElements returns every element whose bare value case-insensitively
// equals v.
func (f *Field) FindElements(v string) []Element {
	var out []Element
	for _, e := range f.Elements() {
		if equalFold(e.Value, v) {
			out = append(out, e)
		}
	}
	return out
}
