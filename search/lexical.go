package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// lexicalSearch ranks a candidate pool by term-frequency relevance over
// chunk content and returns up to k results in descending score order.
// Chunks with zero overlap are excluded; ties keep pool order.
func lexicalSearch(pool []*core.ChildChunk, query string, k int) []core.ScoredChunk {
	terms := queryTerms(query)
	if len(terms) == 0 || len(pool) == 0 || k < 1 {
		return nil
	}

	var results []core.ScoredChunk
	for _, chunk := range pool {
		score := relevance(chunk.Content, terms)
		if score > 0 {
			results = append(results, core.ScoredChunk{Chunk: chunk, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > k {
		results = results[:k]
	}
	return results
}

// relevance counts how often the query terms occur in the content.
func relevance(content string, terms []string) float64 {
	lowered := strings.ToLower(content)
	total := 0
	for _, term := range terms {
		total += strings.Count(lowered, term)
	}
	return float64(total)
}

// queryTerms extracts deduplicated search terms from a query. Terms are
// whitespace-separated words, lowercased with surrounding punctuation
// trimmed. Han script words longer than two characters are additionally
// broken into overlapping bigrams, since Chinese queries carry no word
// boundaries.
func queryTerms(query string) []string {
	var terms []string
	seen := make(map[string]bool)
	add := func(term string) {
		if term != "" && !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}

	for _, word := range strings.Fields(query) {
		cleaned := strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		}))
		if cleaned == "" {
			continue
		}
		add(cleaned)

		runes := []rune(cleaned)
		if len(runes) > 2 && isHan(runes) {
			for i := 0; i+1 < len(runes); i++ {
				add(string(runes[i : i+2]))
			}
		}
	}
	return terms
}

func isHan(runes []rune) bool {
	for _, r := range runes {
		if !unicode.Is(unicode.Han, r) {
			return false
		}
	}
	return true
}
