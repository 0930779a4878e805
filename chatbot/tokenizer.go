package chatbot

import (
	"regexp"
	"strings"
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// stopWords are common function words stripped before scoring.
var stopWords = map[string]struct{}{
	"what": {}, "where": {}, "how": {}, "is": {}, "the": {}, "about": {},
	"at": {}, "on": {}, "of": {}, "to": {}, "for": {}, "in": {}, "with": {},
	"me": {}, "tell": {}, "show": {}, "can": {}, "you": {}, "are": {},
}

// Tokenize lowercases text, strips punctuation and splits it into
// content-bearing tokens. Single characters and stop words are dropped;
// order and duplicates are preserved.
func Tokenize(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), "")

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, word := range fields {
		if len(word) <= 1 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
