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

// state is one lexer state of the field-value FSM (spec.md §4.C).
type state uint8

const (
	stOWS state = iota
	stToken
	stListDelimiter
	stQuotedStringBegin
	stQuotedString
	stQuotedStringEnd
	stEscape
	stCommentOpen
	stComment
	stCommentClose
	stParameter
	stParameterName
	stParameterValue
	stContent
	stError
	numStates
)

// accepting reports whether stopping the lexer in s yields a structurally
// complete field value. _BEGIN, mid-string, mid-comment, ESCAPE,
// PARAMETER_VALUE and ERROR are not accepting. CONTENT accepts: it is the
// catch-all for bytes outside the structured grammar (e.g. "/" in
// "text/html"), and the lexer still commits whatever element was staged
// before falling into it.
func (s state) accepting() bool {
	switch s {
	case stOWS, stToken, stListDelimiter, stQuotedStringEnd,
		stCommentOpen, stCommentClose, stParameter, stParameterName, stContent:
		return true
	default:
		return false
	}
}

// tchar is the RFC 9110 §5.6.2 token character set.
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

func isOWS(b byte) bool {
	return b == ' ' || b == '\t'
}

// vchar or obs-text: printable ASCII or any byte >= 0x80.
func isVCharOrObsText(b byte) bool {
	return (b >= 0x21 && b <= 0x7E) || b >= 0x80
}
