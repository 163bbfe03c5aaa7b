package ldst

import (
	"strings"
)

// COMMENT_MARK starts a comment that runs to the end of the line.
const COMMENT_MARK = ";"

// Tokenize splits a source line into upper-case words, dropping any comment.
func Tokenize(line string) (words []string) {
	line, _, _ = strings.Cut(line, COMMENT_MARK)

	words = strings.Fields(strings.ToUpper(line))
	if len(words) == 0 {
		words = nil
	}

	return
}
