// Package rag holds the retrieval side of the pipeline: lexical ranking of
// the knowledge corpus and prompt assembly for the generative model.
package rag

import (
	"sort"
	"strings"

	"finlit-agent/internal/models"
)

// DefaultTopK bounds how many documents ground a chat answer.
const DefaultTopK = 3

// Rank scores corpus documents against a free-text query by counting how many
// query keywords occur anywhere in title + content, case-insensitive. No
// stemming, no stop words; deliberately simple so results are deterministic.
// Documents that match nothing are dropped, ties keep corpus order, and at
// most k documents are returned.
func Rank(query string, corpus []models.KnowledgeDocument, k int) []models.RankedDocument {
	if k <= 0 {
		k = DefaultTopK
	}

	keywords := strings.Fields(strings.ToLower(query))
	if len(keywords) == 0 {
		return nil
	}

	var ranked []models.RankedDocument
	for _, doc := range corpus {
		haystack := strings.ToLower(doc.Title + " " + doc.Content)
		score := 0
		for _, kw := range keywords {
			if strings.Contains(haystack, kw) {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, models.RankedDocument{KnowledgeDocument: doc, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
