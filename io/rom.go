// Package io provides the host side of the stack16 engine: program images
// that are loaded into memory, and a monitor that mirrors engine state
// from the update callback.
package io

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// MemoryWriter is a bounds-checked memory setter.
type MemoryWriter interface {
	SetMemoryWord(address uint16, value uint16) error
}

// Rom is a program image.
type Rom struct {
	Origin uint16   // Address of the first word.
	Data   []uint16 // Image words.
}

var _ io.ReaderFrom = (*Rom)(nil)

// ReadFrom parses a hex text image, appending to Data.
//
// Every four hex digits form one word, most significant digit first.
// Whitespace is ignored, and ';' starts a comment to the end of the line.
// Words may be split across lines.
func (rom *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	scanner := bufio.NewScanner(r)

	var digits []byte
	var lineno int
	for scanner.Scan() {
		line := scanner.Text()
		lineno++
		n += int64(len(line)) + 1

		text, _, _ := strings.Cut(line, ";")
		for _, ch := range text {
			if unicode.IsSpace(ch) {
				continue
			}
			if !isHexDigit(ch) {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrRomDigit}
				return
			}
			digits = append(digits, byte(ch))
			if len(digits) == 4 {
				word, _ := strconv.ParseUint(string(digits), 16, 16)
				rom.Data = append(rom.Data, uint16(word))
				digits = digits[:0]
			}
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if len(digits) != 0 {
		err = ErrSyntax{LineNo: lineno, Line: string(digits), Err: ErrRomPartial}
		return
	}

	return
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// Load writes the image into memory, starting at Origin.
// Loading stops at the first word the memory rejects.
func (rom *Rom) Load(mem MemoryWriter) (err error) {
	for n, word := range rom.Data {
		address := min(int(rom.Origin)+n, 0xffff)
		err = mem.SetMemoryWord(uint16(address), word)
		if err != nil {
			return
		}
	}

	return
}
