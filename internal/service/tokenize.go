package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a normalized word with its byte offsets in the source text.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenization policy: a token is a maximal run of letters, digits,
// '+' and '#', plus dots that sit between two such runes. This keeps
// "c++", "c#" and "node.js" intact while "tasks." drops the trailing
// dot, so "c" never matches inside "c++". Tokens are lowercased.
func Tokenize(s string) []Token {
	var tokens []Token
	i, n := 0, len(s)
	for i < n {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isWordRune(r) {
			i += size
			continue
		}
		start := i
		j := i
		for j < n {
			r2, size2 := utf8.DecodeRuneInString(s[j:])
			if isWordRune(r2) {
				j += size2
				continue
			}
			if r2 == '.' && j+size2 < n {
				if r3, _ := utf8.DecodeRuneInString(s[j+size2:]); isWordRune(r3) {
					j += size2
					continue
				}
			}
			break
		}
		tokens = append(tokens, Token{Text: strings.ToLower(s[start:j]), Start: start, End: j})
		i = j
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#'
}

// Terms returns the lowercased tokens of s with stop words removed.
func Terms(s string) []string {
	tokens := Tokenize(s)
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if stopWords[tok.Text] {
			continue
		}
		terms = append(terms, tok.Text)
	}
	return terms
}

// Fixed English stop-word list. The exact set is part of the scoring
// contract and must stay stable across releases.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "can": true,
	"do": true, "for": true, "from": true, "had": true, "has": true,
	"have": true, "he": true, "her": true, "his": true, "i": true,
	"if": true, "in": true, "into": true, "is": true, "it": true,
	"its": true, "my": true, "no": true, "not": true, "of": true,
	"on": true, "or": true, "our": true, "she": true, "so": true,
	"that": true, "the": true, "their": true, "them": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "to": true,
	"was": true, "we": true, "were": true, "will": true, "with": true,
	"you": true, "your": true,
}
