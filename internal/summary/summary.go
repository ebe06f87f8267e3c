// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package summary builds extractive document summaries. Sentences are
// scored by accumulated term and pattern weight, the top scorers are
// selected, and the selection is re-ordered by original document position
// so the output reads in source order.
package summary

import (
	"regexp"
	"sort"
	"strings"

	"lexiscan/internal/extractor"
	"lexiscan/internal/knowledge"
	"lexiscan/internal/preprocess"
)

// Length selects how many sentences the summary carries.
type Length string

const (
	LengthShort    Length = "short"
	LengthMedium   Length = "medium"
	LengthDetailed Length = "detailed"
)

// Sentences per length tier.
const (
	shortSentences    = 4
	mediumSentences   = 7
	detailedSentences = 12
)

// Scoring bounds: only the strongest terms and patterns participate.
const (
	maxScoredTerms    = 20
	maxScoredPatterns = 15

	directTermFactor  = 4.0
	synonymTermFactor = 2.5
	patternFactor     = 5.0
	indicatorBonus    = 2.0
	positionFactor    = 1.5

	longSentenceLength  = 250
	longSentencePenalty = 0.7
)

// indianIndicators earn a flat bonus per sentence: statute names, rupee
// amounts, metro jurisdictions, dispute forums.
var indianIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)indian\s+contract\s+act|companies\s+act|gst\s+act`),
	regexp.MustCompile(`(?i)rupees?|₹|inr`),
	regexp.MustCompile(`(?i)mumbai|delhi|bangalore|chennai|kolkata|hyderabad`),
	regexp.MustCompile(`(?i)arbitration|lok\s+adalat|high\s+court`),
}

func (l Length) maxSentences() int {
	switch l {
	case LengthShort:
		return shortSentences
	case LengthMedium:
		return mediumSentences
	default:
		return detailedSentences
	}
}

// Generate produces the extractive summary for normalized content. It never
// fails: unreadably short content and empty candidate pools both yield fixed
// fallback paragraphs mentioning the classified type.
func Generate(content string, ext extractor.Extraction, docType knowledge.DocumentType, length Length) string {
	if len(content) < 50 {
		return "Document appears to be too short or contains unreadable content. Please upload a complete legal document."
	}

	sentences := preprocess.Sentences(content)
	selected := selectSentences(sentences, ext, length.maxSentences())
	if len(selected) == 0 {
		return fallbackParagraph(docType)
	}

	joined := strings.TrimSpace(strings.Join(selected, ". "))
	if !strings.HasSuffix(joined, ".") {
		joined += "."
	}
	return docType.Description() + " " + joined
}

type scoredSentence struct {
	index int
	text  string
	score float64
}

// selectSentences scores every candidate, keeps the max highest scorers,
// and returns them in original document order. Sentences scoring zero are
// never selected.
func selectSentences(sentences []string, ext extractor.Extraction, max int) []string {
	scored := make([]scoredSentence, 0, len(sentences))
	for i, s := range sentences {
		score := scoreSentence(s, i, len(sentences), ext)
		if score <= 0 {
			continue
		}
		scored = append(scored, scoredSentence{index: i, text: s, score: score})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})
	if len(scored) > max {
		scored = scored[:max]
	}

	sort.Slice(scored, func(a, b int) bool {
		return scored[a].index < scored[b].index
	})

	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.text
	}
	return out
}

func scoreSentence(sentence string, index, total int, ext extractor.Extraction) float64 {
	score := 0.0
	lower := strings.ToLower(sentence)

	terms := ext.Terms
	if len(terms) > maxScoredTerms {
		terms = terms[:maxScoredTerms]
	}
	for _, tm := range terms {
		weight := tm.Term.Weight * tm.Term.Importance.Weight()
		if strings.Contains(lower, strings.ToLower(tm.Term.Term)) {
			score += weight * directTermFactor
		}
		for _, syn := range tm.Term.Synonyms {
			if strings.Contains(lower, strings.ToLower(syn)) {
				score += weight * synonymTermFactor
			}
		}
	}

	patterns := ext.Patterns
	if len(patterns) > maxScoredPatterns {
		patterns = patterns[:maxScoredPatterns]
	}
	for _, pm := range patterns {
		if pm.Rule.Pattern.MatchString(sentence) {
			score += pm.Rule.Importance * patternFactor * pm.Rule.RiskLevel.Multiplier()
		}
	}

	for _, ind := range indianIndicators {
		if ind.MatchString(sentence) {
			score += indicatorBonus
		}
	}

	// Later sentences earn a larger bonus: binding clauses follow recitals.
	if total > 0 {
		score += float64(index) / float64(total) * positionFactor
	}

	if len(sentence) > longSentenceLength {
		score *= longSentencePenalty
	}

	return score
}

func fallbackParagraph(docType knowledge.DocumentType) string {
	name := strings.ReplaceAll(string(docType), "_", " ")
	return "This appears to be a " + name + " containing standard legal provisions under Indian law. " +
		"The document establishes contractual relationships and obligations between the parties with various " +
		"terms and conditions that require careful legal review for Indian compliance."
}
