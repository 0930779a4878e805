package chatbot

const (
	keywordWeight  = 1.0
	questionWeight = 0.8
)

// Similarity scores a query against one knowledge entry, returning a
// confidence in [0, 1]. Exact keyword hits are the dominant signal; overlap
// with the entry's canonical question text is a softer secondary one.
func Similarity(query string, entry KnowledgeEntry) float64 {
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return 0
	}

	matchCount := 0
	weightedScore := 0.0

	for _, token := range queryTokens {
		for _, keyword := range entry.Keywords {
			if token == keyword {
				matchCount++
				weightedScore += keywordWeight
			}
		}
	}

	questionTokens := Tokenize(entry.Question)
	for _, token := range queryTokens {
		for _, qToken := range questionTokens {
			if token == qToken {
				weightedScore += questionWeight
			}
		}
	}

	// Question-text overlap alone never qualifies
	if matchCount == 0 {
		return 0
	}

	coverage := float64(matchCount) / float64(max(len(entry.Keywords), 1))
	queryMatch := float64(matchCount) / float64(max(len(queryTokens), 1))
	normalizedWeight := weightedScore / float64(max(len(queryTokens)+len(entry.Keywords), 1))

	score := (coverage*0.2 + queryMatch*0.5 + normalizedWeight*0.3) * 1.5

	// Penalize single-word overlap dominating a long query
	if len(queryTokens) > 2 && matchCount < 2 {
		score *= 0.5
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}
