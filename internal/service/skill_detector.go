package service

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fadilmartias/resume-matcher/internal/model"
)

// snippetRadius is the evidence window in bytes on each side of a
// match. Changing it changes report fixtures, so keep it stable.
const snippetRadius = 40

type SkillDetectorInterface interface {
	Detect(text, skill string, aliases []string) model.SkillMatch
	DetectAll(text string, skills map[string][]string) []model.SkillMatch
}

// SkillDetector finds canonical skills in normalized text by matching
// aliases as whole token sequences, never raw substrings.
type SkillDetector struct{}

func NewSkillDetector() *SkillDetector {
	return &SkillDetector{}
}

// Detect reports whether any alias of a skill occurs in the text.
// Alias list order is authoritative: the first alias that matches
// decides, regardless of alias length.
func (d *SkillDetector) Detect(text, skill string, aliases []string) model.SkillMatch {
	return d.detect(text, Tokenize(text), skill, aliases)
}

// DetectAll runs detection for every skill against one tokenization of
// the text. Results are ordered by skill name.
func (d *SkillDetector) DetectAll(text string, skills map[string][]string) []model.SkillMatch {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)

	tokens := Tokenize(text)
	matches := make([]model.SkillMatch, 0, len(names))
	for _, name := range names {
		matches = append(matches, d.detect(text, tokens, name, skills[name]))
	}
	return matches
}

func (d *SkillDetector) detect(text string, tokens []Token, skill string, aliases []string) model.SkillMatch {
	for _, alias := range aliases {
		aliasTokens := Tokenize(alias)
		if len(aliasTokens) == 0 {
			continue
		}
		if start, end, ok := findTokenRun(tokens, aliasTokens); ok {
			return model.SkillMatch{
				Skill:    skill,
				Detected: true,
				Alias:    alias,
				Evidence: snippet(text, start, end),
			}
		}
	}
	return model.SkillMatch{Skill: skill}
}

// findTokenRun looks for the alias token sequence as a contiguous run
// and returns the byte range of the first occurrence.
func findTokenRun(tokens, alias []Token) (start, end int, ok bool) {
	for i := 0; i+len(alias) <= len(tokens); i++ {
		match := true
		for j := range alias {
			if tokens[i+j].Text != alias[j].Text {
				match = false
				break
			}
		}
		if match {
			return tokens[i].Start, tokens[i+len(alias)-1].End, true
		}
	}
	return 0, 0, false
}

// snippet cuts a fixed window around a match, marking truncation with
// ellipses and collapsing internal whitespace to a single line.
func snippet(text string, start, end int) string {
	lo := start - snippetRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + snippetRadius
	if hi > len(text) {
		hi = len(text)
	}
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}

	out := strings.Join(strings.Fields(text[lo:hi]), " ")
	if lo > 0 {
		out = "..." + out
	}
	if hi < len(text) {
		out = out + "..."
	}
	return out
}
