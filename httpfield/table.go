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

import "sync"

// lexTable[int(s)*256+int(b)] is the next state for byte b read in state s.
// Built once, lazily, on first field parse (spec.md §4.C, §9).
var (
	lexTableOnce sync.Once
	lexTable     [int(numStates) * 256]state
)

func getLexTable() *[int(numStates) * 256]state {
	lexTableOnce.Do(buildLexTable)
	return &lexTable
}

func set(s state, b byte, to state) {
	lexTable[int(s)*256+int(b)] = to
}

func setRange(s state, lo, hi byte, to state) {
	for b := int(lo); b <= int(hi); b++ {
		set(s, byte(b), to)
	}
}

func setAll(s state, pred func(byte) bool, to state) {
	for b := 0; b < 256; b++ {
		if pred(byte(b)) {
			set(s, byte(b), to)
		}
	}
}

// buildLexTable fills every (state, byte) cell. A default pass runs first
// and sends every byte of every state to CONTENT; the per-state rules after
// it overwrite only the cells they handle, so "unhandled" really means
// "falls back to CONTENT", matching RFC 9110 §5.5's field-content default —
// except true control bytes, which are lexer errors.
func buildLexTable() {
	isCTL := func(b byte) bool {
		return (b <= 0x1F && b != '\t') || b == 0x7F
	}

	// Default pass: every state, every byte -> CONTENT, except CTLs -> ERROR.
	for s := state(0); s < stError; s++ {
		setAll(s, func(b byte) bool { return !isCTL(b) }, stContent)
		setAll(s, isCTL, stError)
	}
	// HTAB is a CTL byte numerically but is legal OWS; undo the blanket error.
	for s := state(0); s < stError; s++ {
		set(s, '\t', stContent)
	}

	// --- stOWS: start of a value, or between list items ---
	setAll(stOWS, isOWS, stOWS)
	set(stOWS, ',', stListDelimiter)
	setAll(stOWS, isTChar, stToken)
	set(stOWS, '"', stQuotedStringBegin)
	set(stOWS, '(', stCommentOpen)
	set(stOWS, ';', stParameter)

	// --- stToken: inside a bare token (element value or parameter value) ---
	setAll(stToken, isTChar, stToken)
	setAll(stToken, isOWS, stOWS)
	set(stToken, ',', stListDelimiter)
	set(stToken, ';', stParameter)

	// --- stListDelimiter: just consumed ',' ---
	setAll(stListDelimiter, isOWS, stOWS)
	setAll(stListDelimiter, isTChar, stToken)
	set(stListDelimiter, '"', stQuotedStringBegin)
	set(stListDelimiter, '(', stCommentOpen)

	// --- stQuotedStringBegin: just consumed opening '"' ---
	setAll(stQuotedStringBegin, isVCharOrObsText, stQuotedString)
	set(stQuotedStringBegin, '"', stQuotedStringEnd)
	set(stQuotedStringBegin, '\\', stEscape)
	setAll(stQuotedStringBegin, isOWS, stQuotedString)

	// --- stQuotedString: inside a quoted string ---
	setAll(stQuotedString, isVCharOrObsText, stQuotedString)
	set(stQuotedString, '"', stQuotedStringEnd)
	set(stQuotedString, '\\', stEscape)
	setAll(stQuotedString, isOWS, stQuotedString)

	// --- stQuotedStringEnd: just consumed closing '"' ---
	setAll(stQuotedStringEnd, isOWS, stOWS)
	set(stQuotedStringEnd, ',', stListDelimiter)
	set(stQuotedStringEnd, ';', stParameter)

	// --- stEscape: mid '\' escape; default resumes a quoted string, the
	//     parser's RETURN opcode snaps this to COMMENT when the escape was
	//     opened from inside a comment (spec.md §4.D, §9 "iterative comment").
	setAll(stEscape, isVCharOrObsText, stQuotedString)
	setAll(stEscape, isOWS, stQuotedString)

	// --- stCommentOpen: just consumed '(' (depth becomes 1) ---
	setAll(stCommentOpen, isVCharOrObsText, stComment)
	set(stCommentOpen, ')', stCommentClose)
	set(stCommentOpen, '(', stCommentOpen)
	set(stCommentOpen, '\\', stEscape)
	setAll(stCommentOpen, isOWS, stComment)

	// --- stComment: interior of a (possibly nested) comment ---
	setAll(stComment, isVCharOrObsText, stComment)
	set(stComment, ')', stCommentClose)
	set(stComment, '(', stCommentOpen)
	set(stComment, '\\', stEscape)
	setAll(stComment, isOWS, stComment)

	// --- stCommentClose: just consumed ')' at depth 0 (opcode PUSH_COMMENT
	//     re-snaps this to stComment when depth is still > 0) ---
	setAll(stCommentClose, isOWS, stOWS)
	set(stCommentClose, ',', stListDelimiter)
	set(stCommentClose, ';', stParameter)
	setAll(stCommentClose, isTChar, stToken)
	set(stCommentClose, '(', stCommentOpen)

	// --- stParameter: just consumed ';', waiting for a parameter name ---
	setAll(stParameter, isOWS, stParameter)
	setAll(stParameter, isTChar, stParameterName)

	// --- stParameterName: inside a parameter (or bare attribute) name ---
	setAll(stParameterName, isTChar, stParameterName)
	set(stParameterName, '=', stParameterValue)
	set(stParameterName, ',', stListDelimiter)
	set(stParameterName, ';', stParameter)
	setAll(stParameterName, isOWS, stOWS)

	// --- stParameterValue: just consumed '=' ---
	set(stParameterValue, '"', stQuotedStringBegin)
	setAll(stParameterValue, isTChar, stToken)
}
