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

// opcode is a bitmask of the semantic actions the parser executes on a
// single (fromState, toState) lexer transition (spec.md §4.D).
type opcode uint16

const (
	opMark        opcode = 1 << iota // record pos as the start of a pending token/string
	opEscapePush                     // about to consume one escaped byte
	opCommentOpen                    // entering a (possibly nested) comment
	opCommentBody                    // append pending byte to the open comment
	opQuotedBody                     // append pending byte to the open quoted string
	opStartItem                      // a new bare value is beginning
	opPushToken                      // materialize value[mark:pos-1] as a token
	opPushQuoted                     // materialize the accumulated quoted string
	opPushComment                    // close one level of comment nesting
	opSetParam                       // '=' seen right after a parameter name
	opEndItem                        // finalize the current element
	opReturn                         // after ESCAPE, resume the enclosing context
)

// opcodeKey packs a (from, to) state pair into an index for opcodeTable.
func opcodeKey(from, to state) int {
	return int(from)<<8 | int(to)
}

var (
	opcodeTableOnce sync.Once
	opcodeTable     [int(numStates) << 8]opcode
	finalOpcodeOnce sync.Once
	finalOpcodeTbl  [numStates]opcode
)

func getOpcodeTable() *[int(numStates) << 8]opcode {
	opcodeTableOnce.Do(buildOpcodeTable)
	return &opcodeTable
}

func getFinalOpcodeTable() *[numStates]opcode {
	finalOpcodeOnce.Do(buildFinalOpcodeTable)
	return &finalOpcodeTbl
}

func setOp(from, to state, op opcode) {
	opcodeTable[opcodeKey(from, to)] |= op
}

// buildOpcodeTable derives, once, the action(s) to run for every transition
// the lexer table can produce. Entering a token/quoted-string/comment marks
// the start position; leaving one materializes it; ',' always ends the
// current element; a second bare value with no intervening ',' triggers the
// parser's downgrade path instead of opStartItem (handled in parser.go,
// since that decision needs the run's accumulated state, not just the pair).
func buildOpcodeTable() {
	// Entering a token.
	for _, from := range []state{stOWS, stListDelimiter, stCommentClose} {
		setOp(from, stToken, opMark|opStartItem)
	}
	setOp(stParameterValue, stToken, opMark)
	setOp(stParameter, stParameterName, opMark)
	setOp(stParameterName, stParameterValue, opSetParam)

	// Staying inside / continuing a token: no-op, the mark already covers it.

	// Leaving a token.
	for _, to := range []state{stOWS, stListDelimiter, stParameter, stContent} {
		setOp(stToken, to, opPushToken)
		setOp(stParameterName, to, opPushToken)
	}

	// Quoted strings.
	for _, from := range []state{stOWS, stListDelimiter} {
		setOp(from, stQuotedStringBegin, opMark|opStartItem)
	}
	setOp(stParameterValue, stQuotedStringBegin, opMark)
	setOp(stQuotedStringBegin, stQuotedString, opQuotedBody)
	setOp(stQuotedString, stQuotedString, opQuotedBody)
	setOp(stQuotedStringBegin, stEscape, opEscapePush)
	setOp(stQuotedString, stEscape, opEscapePush)
	setOp(stEscape, stQuotedString, opReturn)
	setOp(stQuotedStringBegin, stQuotedStringEnd, opPushQuoted)
	setOp(stQuotedString, stQuotedStringEnd, opPushQuoted)

	// Comments.
	setOp(stOWS, stCommentOpen, opCommentOpen)
	setOp(stListDelimiter, stCommentOpen, opCommentOpen)
	setOp(stCommentClose, stCommentOpen, opCommentOpen)
	setOp(stCommentOpen, stCommentOpen, opCommentOpen)
	setOp(stComment, stCommentOpen, opCommentOpen)
	setOp(stCommentOpen, stComment, opCommentBody)
	setOp(stComment, stComment, opCommentBody)
	setOp(stCommentOpen, stEscape, opEscapePush)
	setOp(stComment, stEscape, opEscapePush)
	setOp(stEscape, stComment, opReturn)
	setOp(stCommentOpen, stCommentClose, opPushComment)
	setOp(stComment, stCommentClose, opPushComment)

	// ',' always closes out whatever element is open.
	for from := state(0); from < stError; from++ {
		setOp(from, stListDelimiter, opcodeTable[opcodeKey(from, stListDelimiter)]|opEndItem)
	}
}

// buildFinalOpcodeTable derives the action(s) to run once, at end of input,
// based on the state the lexer stopped in.
func buildFinalOpcodeTable() {
	finalOpcodeTbl[stToken] = opPushToken | opEndItem
	finalOpcodeTbl[stParameterName] = opPushToken | opEndItem
	finalOpcodeTbl[stOWS] = opEndItem
	finalOpcodeTbl[stListDelimiter] = opEndItem
	finalOpcodeTbl[stParameter] = opEndItem
	finalOpcodeTbl[stQuotedStringEnd] = opEndItem
	finalOpcodeTbl[stCommentOpen] = opEndItem
	finalOpcodeTbl[stCommentClose] = opEndItem
	finalOpcodeTbl[stContent] = opEndItem
	// stQuotedStringBegin, stQuotedString, stEscape, stComment,
	// stParameterValue and stError are incomplete/invalid: no opcode, the
	// parser treats stopping there as a lexer rejection of the whole value.
}
