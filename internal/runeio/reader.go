// Package runeio implements a random-access UTF-8 rune reader over an
// in-memory byte source. It supports forward and reverse traversal with
// byte-accurate positioning, and is the leaf dependency of the jsonh
// tokenizer.
package runeio

import (
	"io"
	"unicode/utf8"
)

// Reader decodes one Unicode scalar value at a time from a seekable byte
// source, forwards or backwards. A Reader is not safe for concurrent use;
// callers must serialize access externally.
type Reader struct {
	data []byte
	pos  int
}

// New wraps a byte slice for rune-at-a-time traversal. The slice is not
// copied; callers must not mutate it while the Reader is in use.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// NewString wraps a string for rune-at-a-time traversal.
func NewString(s string) *Reader {
	return New([]byte(s))
}

// Len returns the total number of bytes in the underlying source.
func (r *Reader) Len() int {
	return len(r.data)
}

// Position returns the current byte offset.
func (r *Reader) Position() int {
	return r.pos
}

// Seek moves the cursor to byte offset relative to whence, one of
// io.SeekStart, io.SeekCurrent, io.SeekEnd.
func (r *Reader) Seek(offset int, whence int) (int, error) {
	var abs int
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.pos + offset
	case io.SeekEnd:
		abs = len(r.data) + offset
	default:
		return 0, io.ErrNoProgress
	}
	if abs < 0 || abs > len(r.data) {
		return r.pos, io.ErrUnexpectedEOF
	}
	r.pos = abs
	return r.pos, nil
}

// utf8SeqLen derives the byte length of a UTF-8 rune from its leading byte:
// 1 if the byte is ASCII; otherwise ((b - 0xA0) >> (20 - b/16)) + 2, which
// yields 2 for 110xxxxx, 3 for 1110xxxx, 4 for 11110xxx.
func utf8SeqLen(b byte) int {
	if b < 0x80 {
		return 1
	}
	return ((int(b) - 0xA0) >> (20 - int(b)/16)) + 2
}

// isContinuation reports whether b is a UTF-8 continuation byte (10xxxxxx).
func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// Read decodes the rune starting at the current position and advances past
// it. It reports false at end of input. ASCII bytes take a fast path.
func (r *Reader) Read() (rune, bool) {
	if r.pos >= len(r.data) {
		return 0, false
	}
	b := r.data[r.pos]
	if b < 0x80 {
		r.pos++
		return rune(b), true
	}
	n := utf8SeqLen(b)
	end := r.pos + n
	if end > len(r.data) {
		end = len(r.data)
	}
	ru, size := utf8.DecodeRune(r.data[r.pos:end])
	if size == 0 {
		size = 1
	}
	r.pos += size
	return ru, true
}

// Peek reads the next rune without advancing the cursor.
func (r *Reader) Peek() (rune, bool) {
	pos := r.pos
	ru, ok := r.Read()
	r.pos = pos
	return ru, ok
}

// ReadOne advances past the next rune and returns true only if it equals
// candidate; otherwise the cursor is left untouched.
func (r *Reader) ReadOne(candidate rune) bool {
	pos := r.pos
	ru, ok := r.Read()
	if !ok || ru != candidate {
		r.pos = pos
		return false
	}
	return true
}

// ReadAny advances past the next rune and returns it if match(rune) is
// true; otherwise the cursor is left untouched.
func (r *Reader) ReadAny(match func(rune) bool) (rune, bool) {
	pos := r.pos
	ru, ok := r.Read()
	if !ok || !match(ru) {
		r.pos = pos
		return 0, false
	}
	return ru, true
}

// ReadReverse decodes the rune immediately preceding the current position
// and moves the cursor back past it. Continuation bytes are skipped
// backward until a lead byte is found, per the UTF-8 rune-boundary rule.
func (r *Reader) ReadReverse() (rune, bool) {
	if r.pos <= 0 {
		return 0, false
	}
	i := r.pos - 1
	for i > 0 && isContinuation(r.data[i]) {
		i--
	}
	ru, size := utf8.DecodeRune(r.data[i:r.pos])
	if size == 0 {
		size = r.pos - i
		ru = rune(r.data[i])
	}
	r.pos = i
	return ru, true
}

// PeekReverse decodes the preceding rune without moving the cursor.
func (r *Reader) PeekReverse() (rune, bool) {
	pos := r.pos
	ru, ok := r.ReadReverse()
	r.pos = pos
	return ru, ok
}

// ReadOneReverse moves the cursor back past the preceding rune and returns
// true only if it equals candidate; otherwise the cursor is untouched.
func (r *Reader) ReadOneReverse(candidate rune) bool {
	pos := r.pos
	ru, ok := r.ReadReverse()
	if !ok || ru != candidate {
		r.pos = pos
		return false
	}
	return true
}

// ReadAnyReverse moves the cursor back past the preceding rune and returns
// it if match(rune) is true; otherwise the cursor is untouched.
func (r *Reader) ReadAnyReverse(match func(rune) bool) (rune, bool) {
	pos := r.pos
	ru, ok := r.ReadReverse()
	if !ok || !match(ru) {
		r.pos = pos
		return 0, false
	}
	return ru, true
}
