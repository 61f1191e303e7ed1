package skills

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text and splits it into word units. Letters, digits,
// '+' and '#' belong to a word; everything else is a boundary.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
}

// extract collects vocabulary entries found in text. With phrases disabled
// only single tokens are compared, so multi-word entries such as
// "machine learning" are never detected. With phrases enabled every window
// of up to MaxWords consecutive tokens is compared as well.
func extract(vocab *Vocabulary, text string, phrases bool) SkillSet {
	tokens := Tokenize(text)
	found := make(SkillSet)

	window := 1
	if phrases {
		window = vocab.MaxWords()
	}

	for i := range tokens {
		for n := 1; n <= window && i+n <= len(tokens); n++ {
			candidate := tokens[i]
			if n > 1 {
				candidate = strings.Join(tokens[i:i+n], " ")
			}
			if vocab.Contains(candidate) {
				found[candidate] = struct{}{}
			}
		}
	}

	return found
}
