// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extractor finds legal terms, statutory patterns, and clause
// families in normalized document text.
package extractor

import (
	"regexp"
	"sort"
	"strings"

	"lexiscan/internal/knowledge"
)

const (
	maxPatternMatches = 5
	maxTermPositions  = 10
)

// TermMatch records one dictionary term found in a document.
type TermMatch struct {
	Term      knowledge.LegalTerm `json:"term"`
	Count     int                 `json:"count"`
	Positions []int               `json:"positions"`
}

// PatternMatch records one pattern rule that matched, with up to
// maxPatternMatches matched substrings in document order.
type PatternMatch struct {
	Rule    knowledge.PatternRule `json:"rule"`
	Matches []string              `json:"matches"`
}

// ClauseMatch records presence and quality of one clause family. Quality is
// in [0,1]; absent clauses carry Found=false and Quality=0.
type ClauseMatch struct {
	Template knowledge.ClauseTemplate `json:"template"`
	Found    bool                     `json:"found"`
	Quality  float64                  `json:"quality"`
}

// Extraction bundles all match layers for one document.
type Extraction struct {
	Terms    []TermMatch    `json:"terms"`
	Patterns []PatternMatch `json:"patterns"`
	Clauses  []ClauseMatch  `json:"clauses"`
}

// Extract runs every layer over the normalized content.
func Extract(content string) Extraction {
	return Extraction{
		Terms:    ExtractTerms(content),
		Patterns: DetectPatterns(content),
		Clauses:  AnalyzeClauses(content),
	}
}

// termRegexps caches the compiled word-boundary alternation for each
// dictionary term. Built once at package init; the dictionary is immutable.
var termRegexps = buildTermRegexps()

func buildTermRegexps() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(knowledge.LegalTerms))
	for i, t := range knowledge.LegalTerms {
		alts := make([]string, 0, 1+len(t.Synonyms))
		alts = append(alts, regexp.QuoteMeta(t.Term))
		for _, s := range t.Synonyms {
			alts = append(alts, regexp.QuoteMeta(s))
		}
		res[i] = regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
	}
	return res
}

// ExtractTerms scans for each dictionary term and its synonyms using
// word-boundary matching. Each occurrence of the term or any synonym
// contributes to a single combined count; byte offsets of the first
// maxTermPositions occurrences are retained. Results are sorted by
// count times importance weight, descending, stable on ties.
func ExtractTerms(content string) []TermMatch {
	lower := strings.ToLower(content)
	var found []TermMatch
	for i, t := range knowledge.LegalTerms {
		locs := termRegexps[i].FindAllStringIndex(lower, -1)
		if len(locs) == 0 {
			continue
		}
		positions := make([]int, 0, maxTermPositions)
		for _, loc := range locs {
			if len(positions) == maxTermPositions {
				break
			}
			positions = append(positions, loc[0])
		}
		found = append(found, TermMatch{Term: t, Count: len(locs), Positions: positions})
	}

	sort.SliceStable(found, func(a, b int) bool {
		sa := float64(found[a].Count) * found[a].Term.Importance.Weight()
		sb := float64(found[b].Count) * found[b].Term.Importance.Weight()
		return sa > sb
	})
	return found
}

// DetectPatterns scans every pattern rule and keeps the rules that matched
// at least once, each with up to maxPatternMatches matched substrings.
// Results are sorted by rule importance, descending, stable on ties.
func DetectPatterns(content string) []PatternMatch {
	var detected []PatternMatch
	for _, rule := range knowledge.PatternRules {
		matches := rule.Pattern.FindAllString(content, maxPatternMatches)
		if len(matches) == 0 {
			continue
		}
		detected = append(detected, PatternMatch{Rule: rule, Matches: matches})
	}

	sort.SliceStable(detected, func(a, b int) bool {
		return detected[a].Rule.Importance > detected[b].Rule.Importance
	})
	return detected
}

// AnalyzeClauses evaluates every clause template against the content. A
// clause is Found when any of its patterns occurs; quality accrues per
// occurrence and saturates at 1.0. The result always has one entry per
// template, in template order.
func AnalyzeClauses(content string) []ClauseMatch {
	clauses := make([]ClauseMatch, 0, len(knowledge.ClauseTemplates))
	for _, tmpl := range knowledge.ClauseTemplates {
		found := false
		quality := 0.0
		for _, p := range tmpl.Patterns {
			n := len(p.FindAllString(content, -1))
			if n > 0 {
				found = true
				quality += float64(n) * knowledge.ClauseQualityStep
			}
		}
		if quality > 1.0 {
			quality = 1.0
		}
		clauses = append(clauses, ClauseMatch{Template: tmpl, Found: found, Quality: quality})
	}
	return clauses
}
