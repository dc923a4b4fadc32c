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

import "strings"

// Store is a case-insensitive, name-keyed collection of Fields, used for
// both the header list and the trailer list (spec.md §4.E, invariant I6).
// Lookups fold case; the name reported by Names is whatever casing arrived
// first on the wire for that name.
type Store struct {
	limits Limits
	order  []string
	byKey  map[string]*Field
}

// NewStore creates an empty field store bounded by limits.
func NewStore(limits Limits) *Store {
	return &Store{limits: limits, byKey: make(map[string]*Field)}
}

func foldKey(name string) string {
	return strings.ToLower(name)
}

// Add records one wire occurrence of name: value, preserving name's first
// arrival casing and appending to any existing Field for that name.
func (s *Store) Add(name, value string) {
	key := foldKey(name)
	if f, ok := s.byKey[key]; ok {
		f.AddValue(value)
		return
	}
	f := NewField(name, value, s.limits)
	s.byKey[key] = f
	s.order = append(s.order, key)
}

// Get looks up a field by case-insensitive name.
func (s *Store) Get(name string) (*Field, bool) {
	f, ok := s.byKey[foldKey(name)]
	return f, ok
}

// Has reports whether any occurrence of name was recorded.
func (s *Store) Has(name string) bool {
	_, ok := s.byKey[foldKey(name)]
	return ok
}

// Names returns every distinct field name, each in its first-seen casing, in
// arrival order.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key].Name)
	}
	return out
}

// Len reports the number of distinct field names held.
func (s *Store) Len() int {
	return len(s.order)
}
