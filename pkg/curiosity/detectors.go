package curiosity

import (
	"strings"
	"unicode"
)

// Detector heuristics are deliberately cheap: they run synchronously in
// the ingest fan-out for every captured turn.

var correctionPatterns = []string{
	"no,",
	"nope,",
	"actually",
	"it's actually",
	"that's not right",
	"that's wrong",
	"that is wrong",
	"not quite",
	"incorrect",
	"i meant",
	"you're mistaken",
	"that's not what",
}

var hedgePatterns = []string{
	"i'm not sure",
	"i am not sure",
	"i don't know",
	"i do not know",
	"i'm not certain",
	"i can't recall",
	"i cannot recall",
	"i'm not familiar",
	"i'm unfamiliar",
	"i might be wrong",
	"i may be wrong",
	"hard to say without",
	"i don't have enough information",
}

var emotionLexicon = []string{
	"love", "hate", "amazing", "awesome", "incredible", "terrible",
	"awful", "horrible", "fantastic", "thrilled", "excited", "furious",
	"frustrated", "frustrating", "infuriating", "devastated", "ecstatic",
	"wonderful", "brilliant", "dreadful", "stoked", "livid",
}

// Detect runs every turn detector and returns the signals found.
// Unfamiliar-entity detection is separate (it needs the graph).
func Detect(turn Turn) []Signal {
	var signals []Signal
	if s := detectCorrection(turn); s != nil {
		signals = append(signals, *s)
	}
	if s := detectEmotionalPeak(turn); s != nil {
		signals = append(signals, *s)
	}
	if s := detectKnowledgeGap(turn); s != nil {
		signals = append(signals, *s)
	}
	return signals
}

// detectCorrection fires on a user turn that follows an assistant turn
// and opens with or contains a correction phrase.
func detectCorrection(turn Turn) *Signal {
	if turn.Role != "user" || turn.PrevRole != "assistant" {
		return nil
	}
	lower := strings.ToLower(turn.Text)
	for _, pattern := range correctionPatterns {
		if strings.Contains(lower, pattern) {
			return &Signal{
				Type:     TypeCorrection,
				Topic:    topicFromText(turn.Text),
				Interest: 0.7,
				Evidence: turn.Text,
			}
		}
	}
	return nil
}

// detectEmotionalPeak scores a user turn on lexicon hits, exclamation
// runs, and shouting, and fires at intensity >= 0.7.
func detectEmotionalPeak(turn Turn) *Signal {
	if turn.Role != "user" {
		return nil
	}
	intensity := EmotionalIntensity(turn.Text)
	if intensity < 0.7 {
		return nil
	}
	interest := intensity + 0.1
	if interest > 1.0 {
		interest = 1.0
	}
	return &Signal{
		Type:     TypeEmotionalPeak,
		Topic:    topicFromText(turn.Text),
		Interest: interest,
		Evidence: turn.Text,
	}
}

// EmotionalIntensity scores a turn's emotional charge in [0,1] from
// lexicon hits, exclamation runs, and shouting. The emotion buffer
// reuses it to aggregate stimuli off the queue.
func EmotionalIntensity(text string) float64 {
	lower := strings.ToLower(text)

	var score float64
	hits := 0
	for _, word := range emotionLexicon {
		if strings.Contains(lower, word) {
			hits++
		}
	}
	if hits > 2 {
		hits = 2
	}
	score += 0.35 * float64(hits)

	bangs := strings.Count(text, "!")
	if bangs > 3 {
		bangs = 3
	}
	score += 0.1 * float64(bangs)

	if shoutingRatio(text) >= 0.3 {
		score += 0.2
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// shoutingRatio is the fraction of multi-letter words written in all
// caps.
func shoutingRatio(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	caps := 0
	total := 0
	for _, word := range words {
		letters := 0
		upper := 0
		for _, r := range word {
			if unicode.IsLetter(r) {
				letters++
				if unicode.IsUpper(r) {
					upper++
				}
			}
		}
		if letters < 2 {
			continue
		}
		total++
		if upper == letters {
			caps++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(caps) / float64(total)
}

// detectKnowledgeGap fires on an assistant turn that hedges in response
// to a user question. The topic comes from the user's question, not the
// hedge itself.
func detectKnowledgeGap(turn Turn) *Signal {
	if turn.Role != "assistant" || turn.PrevRole != "user" {
		return nil
	}
	lower := strings.ToLower(turn.Text)
	for _, pattern := range hedgePatterns {
		if strings.Contains(lower, pattern) {
			return &Signal{
				Type:         TypeKnowledgeGap,
				Topic:        topicFromText(turn.PrevText),
				Interest:     0.4,
				KnowledgeGap: 0.8,
				Evidence:     turn.Text,
			}
		}
	}
	return nil
}

// ExtractCandidateEntities finds capitalized word runs that look like
// named entities. Sentence-initial single words are skipped to avoid
// flagging ordinary sentence starts.
func ExtractCandidateEntities(text string) []string {
	var (
		entities []string
		seen     = map[string]bool{}
		run      []string
	)
	sentenceStart := true

	flush := func() {
		if len(run) == 0 {
			return
		}
		// A lone capitalized word at sentence start is noise.
		if !(len(run) == 1 && sentenceStart) {
			name := strings.Join(run, " ")
			key := strings.ToLower(name)
			if !seen[key] && !commonWords[key] {
				seen[key] = true
				entities = append(entities, name)
			}
		}
		run = nil
	}

	for _, word := range strings.Fields(text) {
		trimmed := strings.Trim(word, ".,!?;:()\"'")
		if trimmed == "" {
			continue
		}
		if isCapitalizedWord(trimmed) {
			run = append(run, trimmed)
		} else {
			flush()
			sentenceStart = false
		}
		if strings.ContainsAny(word, ".!?") {
			flush()
			sentenceStart = true
		}
	}
	flush()
	return entities
}

func isCapitalizedWord(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

var commonWords = map[string]bool{
	"i": true, "the": true, "a": true, "an": true, "ok": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
}
