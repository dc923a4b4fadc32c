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

package response

import "strings"

// Line is one emitted "Name: Value" wire line.
type Line struct {
	Name  string
	Value string
}

type fieldEntry struct {
	name   string // case as first set by the handler
	values []string
}

// Fields is the response-side parallel of httpfield.Store (spec.md §4.E):
// case-insensitive lookup, but values stay in their caller-given list form
// instead of being lexed, and casing is whatever the handler first used.
type Fields struct {
	order []string
	byKey map[string]*fieldEntry
}

// NewFields returns an empty, ready-to-use Fields.
func NewFields() *Fields {
	return &Fields{byKey: make(map[string]*fieldEntry)}
}

// Set replaces any existing value(s) for name with a single scalar value.
func (f *Fields) Set(name, value string) {
	key := strings.ToLower(name)
	if e, ok := f.byKey[key]; ok {
		e.values = []string{value}
		return
	}
	f.order = append(f.order, key)
	f.byKey[key] = &fieldEntry{name: name, values: []string{value}}
}

// Add appends value to name's list, emitting one wire line per call.
func (f *Fields) Add(name, value string) {
	key := strings.ToLower(name)
	if e, ok := f.byKey[key]; ok {
		e.values = append(e.values, value)
		return
	}
	f.order = append(f.order, key)
	f.byKey[key] = &fieldEntry{name: name, values: []string{value}}
}

// Has reports whether name was set at all, regardless of case.
func (f *Fields) Has(name string) bool {
	_, ok := f.byKey[strings.ToLower(name)]
	return ok
}

// ContainsValue reports whether any value recorded for name equals value,
// case-insensitively — used to add "Connection: close" idempotently.
func (f *Fields) ContainsValue(name, value string) bool {
	e, ok := f.byKey[strings.ToLower(name)]
	if !ok {
		return false
	}
	for _, v := range e.values {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

// Lines returns every (name, value) wire line in first-set field order,
// then value-append order within a field — one Line per emitted line.
func (f *Fields) Lines() []Line {
	out := make([]Line, 0, len(f.order))
	for _, key := range f.order {
		e := f.byKey[key]
		for _, v := range e.values {
			out = append(out, Line{Name: e.name, Value: v})
		}
	}
	return out
}
