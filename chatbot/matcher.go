package chatbot

// Match is a confident local answer from the knowledge base.
type Match struct {
	Answer     string
	Confidence float64
}

// findBestMatch scores every knowledge entry and returns the best match at or
// above the configured threshold. The scan keeps the strict maximum, so equal
// scores favor the entry declared first.
func (b *Chatbot) findBestMatch(query string) (Match, bool) {
	bestScore := 0.0
	var bestEntry *KnowledgeEntry

	for i := range b.kb {
		score := Similarity(query, b.kb[i])
		if score > bestScore {
			bestScore = score
			bestEntry = &b.kb[i]
		}
	}

	if bestEntry != nil && bestScore >= b.cfg.MatchThreshold {
		return Match{Answer: bestEntry.Answer, Confidence: bestScore}, true
	}

	return Match{}, false
}
