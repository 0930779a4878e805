package chatbot

import (
	"testing"

	"elevate-bot/config"

	"go.uber.org/zap"
)

func newMatcherBot(threshold float64) *Chatbot {
	return &Chatbot{
		cfg:    &config.Config{MatchThreshold: threshold},
		kb:     KnowledgeBase(),
		logger: zap.NewNop(),
	}
}

func TestFindBestMatch(t *testing.T) {
	bot := newMatcherBot(0.6)

	tests := []struct {
		name       string
		query      string
		wantAnswer string
		wantMatch  bool
	}{
		{
			name:       "confident_keyword_match",
			query:      "when is the elevate conclave",
			wantAnswer: knowledgeBase[0].Answer,
			wantMatch:  true,
		},
		{
			name:       "speaker_lookup",
			query:      "tell me about ashish kanaujia",
			wantAnswer: knowledgeBase[11].Answer,
			wantMatch:  true,
		},
		{
			name:      "weak_single_hit_in_long_query",
			query:     "what happens during day two of celebration",
			wantMatch: false,
		},
		{
			name:      "no_overlap_at_all",
			query:     "recommend a good pizza place nearby",
			wantMatch: false,
		},
		{
			name:      "stop_words_only",
			query:     "what is the",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok := bot.findBestMatch(tt.query)
			if ok != tt.wantMatch {
				t.Fatalf("findBestMatch(%q) matched=%v, want %v (confidence %v)", tt.query, ok, tt.wantMatch, match.Confidence)
			}
			if !ok {
				return
			}
			if match.Answer != tt.wantAnswer {
				t.Errorf("findBestMatch(%q) answer = %q, want %q", tt.query, match.Answer, tt.wantAnswer)
			}
			if match.Confidence < 0.6 || match.Confidence > 1 {
				t.Errorf("confidence %v outside accepted range", match.Confidence)
			}
		})
	}
}

func TestFindBestMatchThresholdBoundary(t *testing.T) {
	query := "when is the elevate conclave"
	score := Similarity(query, knowledgeBase[0])

	// A threshold exactly at the best score still accepts
	exact := newMatcherBot(score)
	if _, ok := exact.findBestMatch(query); !ok {
		t.Errorf("score %v at threshold %v should be accepted", score, score)
	}

	// Nudging the threshold above the best score rejects
	above := newMatcherBot(score + 1e-9)
	if _, ok := above.findBestMatch(query); ok {
		t.Errorf("score %v below threshold %v should be rejected", score, score+1e-9)
	}
}

func TestFindBestMatchTiesKeepDeclaredOrder(t *testing.T) {
	bot := newMatcherBot(0.5)
	bot.kb = []KnowledgeEntry{
		{Keywords: []string{"omega"}, Question: "first entry", Answer: "first"},
		{Keywords: []string{"omega"}, Question: "second entry", Answer: "second"},
	}

	match, ok := bot.findBestMatch("omega")
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Answer != "first" {
		t.Errorf("tie should favor the first declared entry, got %q", match.Answer)
	}
}
