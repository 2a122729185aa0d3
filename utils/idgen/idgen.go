package idgen

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// filler pads the initials when the name yields fewer than two tokens.
const filler = 'X'

// Generate synthesizes a human-readable identifier from a display name and a
// timestamp: two uppercase initials followed by hour, minute, year, day and
// month, all zero-padded. Same inputs always produce the same output; the
// caller owns uniqueness (duplicate-key failure on insert).
//
// Name must contain at least one non-whitespace token; validators upstream
// guarantee that.
func Generate(name string, at time.Time) string {
	tokens := strings.Fields(name)

	initials := [2]rune{filler, filler}
	for i := 0; i < len(tokens) && i < 2; i++ {
		initials[i] = unicode.ToUpper([]rune(tokens[i])[0])
	}

	return fmt.Sprintf("%c%c%02d%02d%04d%02d%02d",
		initials[0], initials[1],
		at.Hour(), at.Minute(), at.Year(), at.Day(), int(at.Month()))
}
