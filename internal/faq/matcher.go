package faq

import (
	"regexp"
	"sort"
	"strings"
)

// Matcher defaults used by the dialogue flow.
const (
	DefaultMinShared  = 1
	DefaultMaxResults = 10
)

// wordRe splits text into word tokens. The corpus is Spanish, so Unicode
// letters (accents, ñ) must count as word characters.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Match is one keyword-overlap candidate for a free-text query.
type Match struct {
	Score    int    // number of shared word tokens
	Category string
	Question string
}

// FindMatches ranks corpus questions by the number of word tokens they share
// with query. Results are sorted by descending score; ties keep corpus order.
// Questions sharing fewer than minShared tokens are skipped, and at most
// maxResults entries are returned. An empty result is valid.
func (c *Corpus) FindMatches(query string, minShared, maxResults int) []Match {
	queryWords := tokenize(query)

	var matches []Match
	for _, cat := range c.categories {
		for _, qa := range cat.Entries {
			shared := 0
			for w := range tokenize(qa.Question) {
				if queryWords[w] {
					shared++
				}
			}
			if shared >= minShared {
				matches = append(matches, Match{Score: shared, Category: cat.Name, Question: qa.Question})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

func tokenize(text string) map[string]bool {
	words := map[string]bool{}
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		words[w] = true
	}
	return words
}
