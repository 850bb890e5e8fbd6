package classifier

import (
	"regexp"
	"strings"
)

// Word characters are Unicode letters, digits and underscore.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Normalize lowercases text, turns every character that is neither a word
// character nor whitespace into a space, and collapses whitespace runs.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonWord.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}
