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

// Limits bounds the abuse surfaces of the structured field-value parser: how
// deeply escapes may stack inside a single quoted-string/comment run, and how
// deeply comments may nest (spec.md §6, §9).
type Limits struct {
	EscapeStackSize int
	CommentDepth    int
}

// DefaultLimits returns the core's documented defaults.
func DefaultLimits() Limits {
	return Limits{EscapeStackSize: 1000, CommentDepth: 100}
}

// escapeCtx records which production an ESCAPE byte belongs to, so the
// RETURN opcode knows where to resume and where to deposit the escaped byte.
type escapeCtx uint8

const (
	ctxNone escapeCtx = iota
	ctxQuoted
	ctxComment
)

// Parse runs the lexer/opcode machine over a single field value and builds
// its elements. ok is false when the lexer rejected the value outright (an
// illegal byte, or an incomplete production at end of input); callers must
// then drop the value from both raw and elements (spec.md §4.C, §4.D).
func Parse(value string, limits Limits) (elements []Element, ok bool) {
	lex := getLexTable()
	ops := getOpcodeTable()
	fin := getFinalOpcodeTable()

	cur := stOWS
	mark := 0
	var quoted strings.Builder
	var commentStack []*Comment
	var curElem *Element
	pendingParamName := ""
	havePendingParamName := false
	downgraded := false
	escDepth := 0
	commentDepth := 0
	var escCtx escapeCtx

	finishToken := func(from state, i int) bool {
		s := value[mark:i]
		if downgraded {
			return true
		}
		switch {
		case from == stParameterName:
			curElem.Parameters = append(curElem.Parameters, Parameter{Name: s})
		case havePendingParamName:
			curElem.Parameters = append(curElem.Parameters, Parameter{Name: pendingParamName, Value: s, HasValue: true})
			havePendingParamName = false
			pendingParamName = ""
		default:
			curElem.Value = s
		}
		return true
	}

	finishQuoted := func() {
		s := quoted.String()
		if downgraded {
			return
		}
		if havePendingParamName {
			curElem.Parameters = append(curElem.Parameters, Parameter{Name: pendingParamName, Value: s, HasValue: true})
			havePendingParamName = false
			pendingParamName = ""
		} else {
			curElem.Value = s
		}
	}

	closeComment := func() {
		if len(commentStack) == 0 {
			return
		}
		closed := commentStack[len(commentStack)-1]
		commentStack = commentStack[:len(commentStack)-1]
		if downgraded {
			return
		}
		if len(commentStack) > 0 {
			parent := commentStack[len(commentStack)-1]
			parent.Children = append(parent.Children, *closed)
		} else if curElem != nil {
			curElem.Comments = append(curElem.Comments, *closed)
		}
	}

	endItem := func() {
		if !downgraded && curElem != nil {
			elements = append(elements, *curElem)
		}
		curElem = nil
		havePendingParamName = false
		pendingParamName = ""
	}

	startItem := func() {
		if curElem != nil && !downgraded {
			// a second bare value began before the first was comma-terminated
			elements = nil
			downgraded = true
		}
		curElem = &Element{}
	}

	rejected := false

	for i := 0; i < len(value); i++ {
		b := value[i]
		from := cur
		next := lex[int(from)*256+int(b)]

		if next == stError {
			rejected = true
			break
		}

		op := ops[opcodeKey(from, next)]

		if op&opStartItem != 0 {
			startItem()
		}
		if op&opMark != 0 {
			mark = i
			if next == stQuotedStringBegin {
				quoted.Reset()
				escDepth = 0
			}
		}
		if op&opQuotedBody != 0 {
			quoted.WriteByte(b)
		}
		if op&opEscapePush != 0 {
			escDepth++
			if escDepth > limits.EscapeStackSize {
				rejected = true
				break
			}
			if from == stCommentOpen || from == stComment {
				escCtx = ctxComment
			} else {
				escCtx = ctxQuoted
			}
		}
		if op&opReturn != 0 {
			if escCtx == ctxComment {
				if len(commentStack) > 0 {
					commentStack[len(commentStack)-1].Text += string(b)
				}
				next = stComment
			} else {
				quoted.WriteByte(b)
			}
		}
		if op&opCommentOpen != 0 {
			commentDepth++
			if commentDepth == 1 {
				escDepth = 0
			}
			if commentDepth > limits.CommentDepth {
				rejected = true
				break
			}
			commentStack = append(commentStack, &Comment{})
		}
		if op&opCommentBody != 0 {
			if len(commentStack) > 0 {
				commentStack[len(commentStack)-1].Text += string(b)
			}
		}
		if op&opPushComment != 0 {
			commentDepth--
			closeComment()
		}
		if op&opPushToken != 0 {
			finishToken(from, i)
		}
		if op&opPushQuoted != 0 {
			finishQuoted()
		}
		if op&opSetParam != 0 {
			pendingParamName = value[mark:i]
			havePendingParamName = true
		}
		if op&opEndItem != 0 {
			endItem()
		}

		// A comment closed at depth > 0 resumes scanning the enclosing
		// comment rather than the lexer table's default post-comment state.
		if next == stCommentClose && commentDepth > 0 {
			next = stComment
		}

		cur = next
	}

	if rejected {
		return nil, false
	}

	if !cur.accepting() {
		return nil, false
	}

	finOp := fin[cur]
	if finOp&opPushToken != 0 {
		finishToken(cur, len(value))
	}
	for len(commentStack) > 0 {
		closeComment()
	}
	if finOp&opEndItem != 0 || curElem != nil {
		endItem()
	}

	if downgraded {
		return nil, true
	}
	return elements, true
}
