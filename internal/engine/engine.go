// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine orchestrates the analysis pipeline: preprocess, classify,
// extract, evaluate rules, run the type-specific analyzer, and summarize.
// One Analyzer instance is safe for concurrent use; every invocation is a
// pure function of its input string.
package engine

import (
	"strings"

	"lexiscan/internal/analyzers"
	"lexiscan/internal/classifier"
	"lexiscan/internal/extractor"
	"lexiscan/internal/knowledge"
	"lexiscan/internal/observability"
	"lexiscan/internal/preprocess"
	"lexiscan/internal/rules"
	"lexiscan/internal/summary"
)

// Confidence score bounds. Every analysis lands inside these regardless of
// input quality.
const (
	MinConfidence = 70
	MaxConfidence = 95
)

// Options tunes one analysis invocation.
type Options struct {
	// SummaryLength selects the summary tier; empty means detailed.
	SummaryLength summary.Length

	// Groups restricts the rule battery to the enabled groups. Nil runs
	// everything.
	Groups map[string]bool
}

// TermSummary is the compact term listing carried on the result.
type TermSummary struct {
	Term      string  `json:"term"`
	Count     int     `json:"count"`
	Relevance float64 `json:"relevance"`
}

// Metadata carries document statistics alongside the analysis.
type Metadata struct {
	WordCount          int    `json:"wordCount"`
	CharacterCount     int    `json:"characterCount"`
	SentenceCount      int    `json:"sentenceCount"`
	DocumentComplexity string `json:"documentComplexity"`
	LegalTermsFound    int    `json:"legalTermsFound"`
	ComplianceScore    int    `json:"complianceScore"`
}

// AnalysisResult is the full output aggregate. Field names are part of the
// wire contract consumed by the web layer and formatters; do not rename.
type AnalysisResult struct {
	DocumentType       string                 `json:"documentType"`
	ConfidenceScore    int                    `json:"confidenceScore"`
	Summary            string                 `json:"summary"`
	KeyPoints          []string               `json:"keyPoints"`
	Risks              []rules.Risk           `json:"risks"`
	Recommendations    []string               `json:"recommendations"`
	LegalTerms         []TermSummary          `json:"legalTerms"`
	ComplianceDetails  rules.ComplianceResult `json:"complianceDetails"`
	Metadata           Metadata               `json:"metadata"`
	RelevantCases      []knowledge.LegalCase  `json:"relevantCases"`
	ApplicableStatutes []knowledge.Statute    `json:"applicableStatutes"`
	SpecificAnalysis   analyzers.Result       `json:"specificAnalysis"`
}

// Analyzer runs the full pipeline. Zero value is not usable; construct with
// New.
type Analyzer struct {
	registry *analyzers.Registry
	observer *observability.StandardObserver
}

// New creates an Analyzer with every built-in document analyzer registered.
func New() *Analyzer {
	return &Analyzer{registry: analyzers.DefaultRegistry()}
}

// SetObserver sets the observability component
func (a *Analyzer) SetObserver(observer *observability.StandardObserver) {
	a.observer = observer
}

// Analyze runs the pipeline over raw text and returns a complete result.
// It is total: empty input, binary garbage, and non-legal text all produce
// a well-formed AnalysisResult via the documented fallbacks.
func (a *Analyzer) Analyze(raw string, opts Options) AnalysisResult {
	var complete func(success bool, metadata map[string]interface{})
	if a.observer != nil {
		complete = a.observer.StartTiming("engine", "analyze", "")
	}

	content := preprocess.Normalize(raw)
	sentences := preprocess.Sentences(content)
	docType := classifier.Classify(content)
	ext := extractor.Extract(content)
	ruleResult := rules.EvaluateGroups(content, docType, opts.Groups)

	specific := analyzers.Result{}
	if analyzer, ok := a.registry.Get(docType); ok {
		specific = analyzer.Analyze(content)
	}

	length := opts.SummaryLength
	if length == "" {
		length = summary.LengthDetailed
	}
	summaryText := summary.Generate(content, ext, docType, length)

	allRisks := append(append([]rules.Risk{}, ruleResult.Risks...), specific.SpecificRisks...)

	recs := newOrderedSet()
	recs.addAll(ruleResult.Compliance.Recommendations)
	recs.addAll(specific.SpecificRecommendations)

	meta := Metadata{
		WordCount:          preprocess.WordCount(content),
		CharacterCount:     len(content),
		SentenceCount:      len(sentences),
		DocumentComplexity: complexity(ext, len(sentences), ruleResult.Compliance.Score),
		LegalTermsFound:    len(ext.Terms),
		ComplianceScore:    ruleResult.Compliance.Score,
	}

	result := AnalysisResult{
		DocumentType:       string(docType),
		ConfidenceScore:    confidence(content, sentences, ext, ruleResult.Compliance.Score),
		Summary:            summaryText,
		KeyPoints:          keyPoints(docType, ext, ruleResult.Compliance),
		Risks:              allRisks,
		Recommendations:    recs.values(),
		LegalTerms:         termSummaries(ext.Terms),
		ComplianceDetails:  ruleResult.Compliance,
		Metadata:           meta,
		RelevantCases:      knowledge.FindRelevantCases(content),
		ApplicableStatutes: knowledge.FindApplicableStatutes(docType),
		SpecificAnalysis:   specific,
	}

	if complete != nil {
		complete(true, map[string]interface{}{
			"document_type":    result.DocumentType,
			"risk_count":       len(result.Risks),
			"compliance_score": meta.ComplianceScore,
		})
	}
	return result
}

// confidence estimates classification certainty from evidence density.
// Always clamped to [MinConfidence, MaxConfidence].
func confidence(content string, sentences []string, ext extractor.Extraction, complianceScore int) int {
	score := 65.0

	score += minF(float64(len(ext.Patterns))*2.5, 20)
	score += minF(float64(len(ext.Terms))*1.2, 12)
	score += float64(complianceScore) / 100 * 15

	if len(sentences) > 20 {
		score += 5
	}
	if len(content) > 2000 {
		score += 5
	}

	statutes := 0
	criticalTerms := 0
	jurisdiction := false
	for _, pm := range ext.Patterns {
		switch pm.Rule.Category {
		case "indian_statute":
			statutes++
		case "jurisdiction":
			jurisdiction = true
		}
	}
	for _, tm := range ext.Terms {
		if tm.Term.Importance == knowledge.ImportanceCritical {
			criticalTerms++
		}
	}
	score += minF(float64(statutes)*3, 10)
	score += minF(float64(criticalTerms)*2, 8)

	if !jurisdiction {
		score -= 5
	}
	if complianceScore < 60 {
		score -= 10
	}
	if strings.Contains(content, "binary") || strings.Contains(content, "PK") {
		score -= 20
	}

	n := int(score)
	if n < MinConfidence {
		return MinConfidence
	}
	if n > MaxConfidence {
		return MaxConfidence
	}
	return n
}

// complexity buckets the document by evidence volume.
func complexity(ext extractor.Extraction, sentenceCount, complianceScore int) string {
	score := float64(len(ext.Terms)) +
		float64(len(ext.Patterns))*2 +
		float64(sentenceCount)/10 +
		float64(complianceScore)/10

	switch {
	case score > 60:
		return "Very High"
	case score > 40:
		return "High"
	case score > 20:
		return "Medium"
	default:
		return "Low"
	}
}

func termSummaries(terms []extractor.TermMatch) []TermSummary {
	out := make([]TermSummary, len(terms))
	for i, tm := range terms {
		out[i] = TermSummary{
			Term:      tm.Term.Term,
			Count:     tm.Count,
			Relevance: tm.Term.Weight * tm.Term.Importance.Weight(),
		}
	}
	return out
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
