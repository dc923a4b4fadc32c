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

package body

import "github.com/nabbar/httpcore/herr"

const (
	CodeBothFramingHeaders herr.CodeError = herr.MinBody + iota
	CodeUnsupportedTransferEncoding
	CodeInvalidContentLength
	CodeShortRead
	CodeInvalidChunkSize
	CodeChunkSizeExceedsMax
	CodeInvalidChunkTerminator
	CodeInvalidTrailerLine
)

func init() {
	herr.Register(CodeBothFramingHeaders, "both Transfer-Encoding and Content-Length present")
	herr.Register(CodeUnsupportedTransferEncoding, "unsupported or missing final Transfer-Encoding coding")
	herr.Register(CodeInvalidContentLength, "invalid Content-Length value")
	herr.Register(CodeShortRead, "short read against declared body length")
	herr.Register(CodeInvalidChunkSize, "invalid chunk size line")
	herr.Register(CodeChunkSizeExceedsMax, "chunk size exceeds configured maximum")
	herr.Register(CodeInvalidChunkTerminator, "invalid chunk-data terminator")
	herr.Register(CodeInvalidTrailerLine, "invalid trailer field line")
}
