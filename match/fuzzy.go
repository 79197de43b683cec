// Package match resolves approximate correspondences between variable names.
package match

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"go.ngs.io/climate-tools/domain"
)

// Matcher picks the candidate most similar to a query.
type Matcher interface {
	// BestMatch returns the best candidate for query. It fails with
	// domain.ErrNoCandidates when candidates is empty.
	BestMatch(query string, candidates []string) (string, error)
}

// MatcherFunc adapts a plain function to the Matcher interface.
type MatcherFunc func(query string, candidates []string) (string, error)

// BestMatch calls f.
func (f MatcherFunc) BestMatch(query string, candidates []string) (string, error) {
	return f(query, candidates)
}

// Scorer rates the similarity of two normalized strings from 0 to 100.
type Scorer func(a, b string) float64

// LevenshteinMatcher scores every candidate against the query with an edit
// distance based Scorer. Ties go to the earliest candidate.
type LevenshteinMatcher struct {
	Scorer Scorer
}

// NewLevenshteinMatcher returns a matcher using WeightedRatio.
func NewLevenshteinMatcher() *LevenshteinMatcher {
	return &LevenshteinMatcher{Scorer: WeightedRatio}
}

// BestMatch returns the candidate with the highest score.
func (m *LevenshteinMatcher) BestMatch(query string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: nothing to match %q against", domain.ErrNoCandidates, query)
	}
	score := m.Scorer
	if score == nil {
		score = WeightedRatio
	}

	q := normalize(query)
	best, bestScore := 0, -1.0
	for i, c := range candidates {
		// Strictly greater keeps the first of equally scored candidates.
		if s := score(q, normalize(c)); s > bestScore {
			best, bestScore = i, s
		}
	}
	return candidates[best], nil
}

// Ratio is 100 * (1 - distance/maxLen) over runes.
func Ratio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(dist)/float64(longest))
}

// TokenSortRatio is Ratio over the alphabetically sorted whitespace tokens.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortTokens(a), sortTokens(b))
}

// WeightedRatio is the larger of Ratio and a slightly discounted TokenSortRatio.
func WeightedRatio(a, b string) float64 {
	r := Ratio(a, b)
	if ts := 0.95 * TokenSortRatio(a, b); ts > r {
		return ts
	}
	return r
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// normalize lowercases s and turns anything other than letters and digits
// into single spaces.
func normalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}
